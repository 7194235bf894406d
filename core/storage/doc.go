// Package storage reads and writes locale files in an S3-compatible bucket.
//
// Client is the narrow slice of the MinIO API the locale manager depends on, so
// providers, exporters and integrity checks can be tested against
// core/storage/mocks. NewClient builds the real MinIO-backed implementation.
//
// Locale files live at "<prefix>/<lang><ext>". ObjectName and FolderPath build
// those keys; ReadObject, WriteObject and ObjectExists perform the object calls
// shared by every package that touches the bucket.
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, storage.ObjectName("locales", "en", ".json"))
package storage

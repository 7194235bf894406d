// Package source provides the locale source providers consumed by the reconciliation session.
//
// A provider returns the ordered key→string mapping of a locale identifier (for example "es").
// A locale that does not exist is reported with ErrNotFound, distinct from I/O or decode errors,
// so that callers can treat a missing target locale as an empty one.
//
// # Providers
//
//   - StorageProvider: reads "<prefix>/<id>.<ext>" objects from S3/MinIO through core/storage.
//   - DirProvider: reads "<dir>/<id>.<ext>" files from a local directory.
//   - Deduplicated: wraps any provider so concurrent fetches of one identifier share a single call.
//
// # Usage
//
//	provider := source.Dedupe(source.NewStorageProvider(client, "locales", "locales", locale.FormatJSON))
//	m, err := provider.FetchKeyMapping(ctx, "en")
//	if errors.Is(err, source.ErrNotFound) {
//	    m = locale.New()
//	}
package source

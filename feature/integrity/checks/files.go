package checks

import (
	"context"

	"locale-manager/core/locale"
	"locale-manager/core/storage"

	"go.uber.org/zap"
)

// CheckLocaleFiles returns the languages without a locale file in the bucket.
func CheckLocaleFiles(ctx context.Context, client storage.Client, bucket, prefix string, format locale.Format, languages []string) ([]string, error) {
	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	missing := []string{}
	for _, lang := range languages {
		found, err := storage.ObjectExists(ctx, client, bucket, storage.ObjectName(prefix, lang, format.Extension()))
		if err != nil {
			return nil, err
		}
		if !found {
			missing = append(missing, lang)
		}
	}

	return missing, nil
}

// FixLocaleFiles uploads an empty locale document for each missing language.
// The base language is never created since every other locale is compared against it.
func FixLocaleFiles(ctx context.Context, client storage.Client, bucket, prefix string, format locale.Format, base string, missing []string, logger *zap.Logger) ([]string, error) {
	empty, err := locale.Encode(locale.New(), format)
	if err != nil {
		return nil, err
	}

	created := []string{}
	for _, lang := range missing {
		if lang == base {
			logger.Warn("Base locale is missing and will not be created", zap.String("language", lang))
			continue
		}

		objectName := storage.ObjectName(prefix, lang, format.Extension())
		if err := storage.WriteObject(ctx, client, bucket, objectName, empty, format.ContentType()); err != nil {
			logger.Error("Failed to create locale file", zap.String("object", objectName), zap.Error(err))
			return created, err
		}
		logger.Info("Created empty locale file", zap.String("object", objectName))
		created = append(created, lang)
	}
	return created, nil
}

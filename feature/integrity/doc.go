// Package integrity provides health checks of the locale catalogue.
//
// Where the editor works on one language at a time, this package validates the
// catalogue as a whole: storage layout, file presence, translation coverage of every
// configured language and the preferences schema.
//
// # Checks Provided
//
//   - Structure: Checks that the locale folder (locales.prefix) exists in the bucket.
//   - Files: Verifies that every configured language has a locale file.
//   - Coverage: Reconciles each language against the base and reports missing, changed and extra keys.
//   - Database: Validates the preferences table against its GORM model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/files : Runs locale file check (supports ?fix=true).
//   - GET /integrity/coverage : Runs coverage check.
//   - GET /integrity/database : Runs preferences schema check.
package integrity

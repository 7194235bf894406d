// Package prefs stores editor preferences in the application database.
//
// Preferences are plain key/value rows in the "preferences" table, written with an
// upsert so both MySQL and SQLite keep a single row per key. The editor saves the
// last loaded language under LanguageKey and restores it on startup.
//
// # Usage
//
//	store := prefs.NewStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	lang, err := store.Language(ctx)
package prefs

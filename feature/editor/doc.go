// Package editor exposes the locale reconciliation session to users.
//
// A Service owns one reconcile.Session for the process. It restricts loads to the
// configured languages, remembers the last language in the preferences store, builds
// reports and delivers exports. The Handler maps the service onto a Fiber API under
// /editor, and the tui subpackage renders the same session in the terminal.
//
// # Export Targets
//
//   - file: writes <export_dir>/qplay_<lang>.json
//   - clipboard: copies the JSON document to the system clipboard
//   - storage: uploads the locale back to the bucket, in the configured source format
//
// Export failures are returned as *ExportError and never change the session.
//
// # Endpoints
//
//   - GET /editor/languages, POST /editor/load, POST /editor/refresh
//   - GET /editor/session, GET /editor/report
//   - GET /editor/rows, GET|PUT /editor/rows/:key
//   - PUT /editor/filter, PUT|DELETE /editor/focus
//   - GET /editor/export, POST /editor/export/:target
//
// # Usage
//
//	session := reconcile.NewSession(provider, cfg.Locales.Base, reconcile.WithObserver(m))
//	svc := editor.NewService(session, cfg.Locales, logg, editor.WithPreferences(store))
//	if err := svc.Start(ctx, os.Getenv("LANG")); err != nil {
//	    logg.Warn("Initial load failed", zap.Error(err))
//	}
//	mgr.Register(editor.NewFeature(svc))
package editor

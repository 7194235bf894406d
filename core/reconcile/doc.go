// Package reconcile provides the reconciliation engine between a base locale and a target locale,
// and the session that keeps an editable, filtered view of the result.
//
// The engine compares two ordered key→string mappings and derives, per base key, whether the
// target value is missing (blank after trimming) or changed (not byte-identical to the base value).
// Keys that only exist in the target are reported as extra keys and are carried unchanged into
// the exported output.
//
// # Architecture
//
// The package consists of pure components and one stateful orchestrator:
//
// 1. Build: turns (base, target) into an ordered row set and the extra key list.
//
// 2. Row: per-key record. SetTargetValue is the only mutation and recomputes the
//    Missing/Changed flags in one place; everything downstream reads the cached flags.
//
// 3. ComputeVisibility: applies the search query and the missing-only / same-only toggles.
//    The row holding the active edit is exempt from the toggles so it never disappears
//    while being edited.
//
// 4. ComputeStats: total, missing, changed and extra counts.
//
// 5. BuildOutput: copies the target mapping and writes every row value into it.
//
// 6. Session: load → (edit | filter | focus)* → export. Only the most recently started
//    load is honored; a failed load keeps the previous snapshot.
//
// # Usage Example
//
//	session := reconcile.NewSession(provider, "es")
//	if err := session.Load(ctx, "en"); err != nil {
//	    return err
//	}
//	_ = session.Edit("bye", "Goodbye")
//	lang, out, _ := session.Export()
package reconcile

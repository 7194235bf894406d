package reconcile

import "locale-manager/core/locale"

// Build creates one row per base key, in base order, and lists the target-only keys in target order.
// Target values are seeded from the target mapping, or the empty string when absent.
// Nil mappings are treated as empty.
func Build(base, target *locale.Mapping) ([]*Row, []string) {
	rows := make([]*Row, 0, base.Len())
	base.Range(func(key, baseValue string) bool {
		targetValue, _ := target.Get(key)
		rows = append(rows, newRow(key, baseValue, targetValue))
		return true
	})

	extraKeys := []string{}
	target.Range(func(key, _ string) bool {
		if !base.Has(key) {
			extraKeys = append(extraKeys, key)
		}
		return true
	})

	return rows, extraKeys
}

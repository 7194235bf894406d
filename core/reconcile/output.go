package reconcile

import "locale-manager/core/locale"

// BuildOutput merges the row values into a copy of the target mapping.
//
// Keys of the target keep their position (so extra keys survive untouched);
// base keys absent from the target are appended in row order.
func BuildOutput(target *locale.Mapping, rows []*Row) *locale.Mapping {
	output := target.Clone()
	for _, row := range rows {
		output.Set(row.Key, row.TargetValue)
	}
	return output
}

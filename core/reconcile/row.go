package reconcile

import "strings"

func newRow(key, baseValue, targetValue string) *Row {
	r := &Row{
		Key:       key,
		BaseValue: baseValue,
		keyLower:  strings.ToLower(key),
		baseLower: strings.ToLower(baseValue),
	}
	r.SetTargetValue(targetValue)
	return r
}

// SetTargetValue updates the target value and recomputes the derived flags.
// Missing uses the trimmed value; Changed uses exact string equality.
func (r *Row) SetTargetValue(value string) {
	r.TargetValue = value
	r.targetLower = strings.ToLower(value)
	r.Missing = strings.TrimSpace(value) == ""
	r.Changed = value != r.BaseValue
}

func (r *Row) view(activeKey string) RowView {
	return RowView{
		Key:     r.Key,
		Base:    r.BaseValue,
		Target:  r.TargetValue,
		Missing: r.Missing,
		Changed: r.Changed,
		Visible: r.Visible,
		Active:  activeKey != "" && r.Key == activeKey,
	}
}

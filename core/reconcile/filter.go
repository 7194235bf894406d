package reconcile

import "strings"

// ComputeVisibility sets Visible on every row and returns the number of visible rows.
//
// A row is visible when it matches the search query and, unless it is the active edit row,
// both toggles. activeKey is the key of the row being edited; empty means none.
func ComputeVisibility(rows []*Row, f Filter, activeKey string) int {
	query := normalizeQuery(f.Query)
	visible := 0
	for _, row := range rows {
		row.Visible = f.matches(row, query, activeKey != "" && row.Key == activeKey)
		if row.Visible {
			visible++
		}
	}
	return visible
}

// Matches reports whether a single row is visible under f.
func (f Filter) Matches(row *Row, active bool) bool {
	return f.matches(row, normalizeQuery(f.Query), active)
}

func (f Filter) matches(row *Row, query string, active bool) bool {
	matchesSearch := query == "" ||
		strings.Contains(row.keyLower, query) ||
		strings.Contains(row.baseLower, query) ||
		strings.Contains(row.targetLower, query)
	matchesMissing := !f.MissingOnly || row.Missing
	matchesSame := !f.SameOnly || !row.Changed

	return matchesSearch && (matchesMissing || active) && (matchesSame || active)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

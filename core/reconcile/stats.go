package reconcile

// ComputeStats counts rows by their cached flags.
func ComputeStats(rows []*Row, extraKeys []string) Stats {
	s := Stats{
		Total:  len(rows),
		Extras: len(extraKeys),
	}
	for _, row := range rows {
		if row.Missing {
			s.Missing++
		}
		if row.Changed {
			s.Changed++
		}
	}
	return s
}

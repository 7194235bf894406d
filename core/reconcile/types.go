package reconcile

import "fmt"

// Row is the per-key record of a reconciliation.
// TargetValue must only be changed through SetTargetValue so that the derived flags stay consistent.
type Row struct {
	// Key is the translation key.
	Key string

	// BaseValue is the value in the base locale.
	BaseValue string

	// TargetValue is the current value in the target locale.
	TargetValue string

	// Missing is true when TargetValue is blank after trimming whitespace.
	Missing bool

	// Changed is true when TargetValue differs from BaseValue (exact comparison).
	Changed bool

	// Visible is the result of the last ComputeVisibility pass.
	Visible bool

	keyLower    string
	baseLower   string
	targetLower string
}

// RowView is a read-only copy of a row handed to renderers.
type RowView struct {
	Key     string `json:"key"`
	Base    string `json:"base"`
	Target  string `json:"target"`
	Missing bool   `json:"missing"`
	Changed bool   `json:"changed"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
}

// Stats holds the summary counts of a row set.
type Stats struct {
	// Total is the number of rows (base keys).
	Total int `json:"total"`

	// Missing counts rows whose target value is blank.
	Missing int `json:"missing"`

	// Changed counts rows whose target value differs from the base value.
	Changed int `json:"changed"`

	// Extras counts keys present only in the target.
	Extras int `json:"extras"`
}

// String renders the stats line shown by the editors.
func (s Stats) String() string {
	return fmt.Sprintf("Keys: %d · Empty: %d · Different: %d · Extras: %d", s.Total, s.Missing, s.Changed, s.Extras)
}

// Filter holds the inputs of the visibility computation.
type Filter struct {
	// Query is a case-insensitive substring matched against key, base and target values.
	Query string `json:"query"`

	// MissingOnly shows only rows with a blank target value.
	MissingOnly bool `json:"missing_only"`

	// SameOnly shows only rows whose target value equals the base value.
	SameOnly bool `json:"same_only"`
}

// FilterUpdate changes a subset of the filter fields. Nil fields are left untouched.
type FilterUpdate struct {
	Query       *string `json:"query,omitempty"`
	MissingOnly *bool   `json:"missing_only,omitempty"`
	SameOnly    *bool   `json:"same_only,omitempty"`
}

// Apply returns f with the non-nil fields of u applied.
func (u FilterUpdate) Apply(f Filter) Filter {
	if u.Query != nil {
		f.Query = *u.Query
	}
	if u.MissingOnly != nil {
		f.MissingOnly = *u.MissingOnly
	}
	if u.SameOnly != nil {
		f.SameOnly = *u.SameOnly
	}
	return f
}

// State is the lifecycle state of a Session.
type State string

const (
	// StateEmpty means no locale has been loaded yet.
	StateEmpty State = "empty"
	// StateLoading means a load is outstanding.
	StateLoading State = "loading"
	// StateReady means a snapshot is available for editing.
	StateReady State = "ready"
)

// Status describes the session for display purposes.
type Status struct {
	// State is the current lifecycle state.
	State State `json:"state"`

	// Language is the language being edited, or being loaded while State is loading.
	Language string `json:"language"`

	// Message is the human-readable status line.
	Message string `json:"message"`

	// Error is the message of the last failed load, if the last load failed.
	Error string `json:"error,omitempty"`
}

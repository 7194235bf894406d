package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"locale-manager/core/locale"
	"locale-manager/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves mappings from memory. A gate blocks fetches of an identifier until it is closed.
type fakeProvider struct {
	mu       sync.Mutex
	mappings map[string]*locale.Mapping
	errs     map[string]error
	gates    map[string]chan struct{}
	calls    map[string]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		mappings: map[string]*locale.Mapping{},
		errs:     map[string]error{},
		gates:    map[string]chan struct{}{},
		calls:    map[string]int{},
	}
}

func (p *fakeProvider) FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error) {
	p.mu.Lock()
	p.calls[identifier]++
	gate := p.gates[identifier]
	p.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.errs[identifier]; err != nil {
		return nil, err
	}
	m, ok := p.mappings[identifier]
	if !ok {
		return nil, fmt.Errorf("fetch %s: %w", identifier, source.ErrNotFound)
	}
	return m.Clone(), nil
}

type recordingObserver struct {
	mu     sync.Mutex
	loads  []string
	errs   []error
	edits  []string
	export []int
}

func (o *recordingObserver) LoadFinished(language string, _ Stats, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loads = append(o.loads, language)
	o.errs = append(o.errs, err)
}

func (o *recordingObserver) RowEdited(_ string, key string, _ Stats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.edits = append(o.edits, key)
}

func (o *recordingObserver) Exported(_ string, keys int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.export = append(o.export, keys)
}

func scenarioProvider() *fakeProvider {
	p := newFakeProvider()
	p.mappings["es"] = locale.FromPairs("greet", "Hola", "bye", "Adios")
	p.mappings["en"] = locale.FromPairs("greet", "Hello", "extra1", "X")
	return p
}

func TestSession_EndToEnd(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSession(scenarioProvider(), "es", WithObserver(obs))
	assert.Equal(t, StateEmpty, s.State())

	require.NoError(t, s.Load(context.Background(), "en"))
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, "en", s.Language())
	assert.Equal(t, Stats{Total: 2, Missing: 1, Changed: 2, Extras: 1}, s.Stats())
	assert.Equal(t, []string{"extra1"}, s.ExtraKeys())
	assert.Equal(t, "Editing: en", s.Status().Message)

	require.NoError(t, s.Edit("bye", "Au revoir"))
	assert.Equal(t, Stats{Total: 2, Missing: 0, Changed: 2, Extras: 1}, s.Stats())

	lang, out, err := s.Export()
	require.NoError(t, err)
	assert.Equal(t, "en", lang)
	assert.Equal(t, []string{"greet", "extra1", "bye"}, out.Keys())

	data, err := locale.EncodeJSON(out)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"greet\": \"Hello\",\n  \"extra1\": \"X\",\n  \"bye\": \"Au revoir\"\n}\n", string(data))

	assert.Equal(t, []string{"en"}, obs.loads)
	assert.Equal(t, []string{"bye"}, obs.edits)
	assert.Equal(t, []int{3}, obs.export)
}

func TestSession_EditInvariants(t *testing.T) {
	s := NewSession(scenarioProvider(), "es")
	require.NoError(t, s.Load(context.Background(), "en"))

	edits := []struct{ key, value string }{
		{"greet", "Hola"},
		{"bye", "   "},
		{"bye", "Adios"},
		{"greet", ""},
		{"greet", "Hi"},
	}
	for _, e := range edits {
		require.NoError(t, s.Edit(e.key, e.value))

		missing, changed := 0, 0
		for _, r := range s.Rows() {
			assert.Equal(t, r.Target != r.Base, r.Changed)
			if r.Missing {
				missing++
			}
			if r.Changed {
				changed++
			}
		}
		stats := s.Stats()
		assert.Equal(t, missing, stats.Missing)
		assert.Equal(t, changed, stats.Changed)
		assert.Equal(t, stats, s.Stats())
	}
}

func TestSession_EditErrors(t *testing.T) {
	s := NewSession(scenarioProvider(), "es")

	assert.ErrorIs(t, s.Edit("greet", "x"), ErrNotReady)
	assert.ErrorIs(t, s.SetFilter(FilterUpdate{}), ErrNotReady)
	assert.ErrorIs(t, s.Focus("greet"), ErrNotReady)
	_, _, err := s.Export()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, s.Refresh(context.Background()), ErrNotReady)

	require.NoError(t, s.Load(context.Background(), "en"))

	// extra keys are not rows
	assert.ErrorIs(t, s.Edit("extra1", "x"), ErrUnknownKey)
	assert.ErrorIs(t, s.Focus("missing.key"), ErrUnknownKey)
	_, err = s.Row("missing.key")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSession_FilterAndFocus(t *testing.T) {
	s := NewSession(scenarioProvider(), "es")
	require.NoError(t, s.Load(context.Background(), "en"))

	on := true
	require.NoError(t, s.SetFilter(FilterUpdate{MissingOnly: &on}))
	require.Len(t, s.VisibleRows(), 1)
	assert.Equal(t, "bye", s.VisibleRows()[0].Key)
	stats := s.Stats()

	// editing the focused row keeps it visible while it no longer matches
	require.NoError(t, s.Focus("bye"))
	require.NoError(t, s.Edit("bye", "Bye"))
	visible := s.VisibleRows()
	require.Len(t, visible, 1)
	assert.True(t, visible[0].Active)
	assert.False(t, visible[0].Missing)

	// leaving the row hides it
	s.Blur()
	assert.Empty(t, s.VisibleRows())
	assert.Equal(t, 0, s.VisibleCount())
	assert.Equal(t, "", s.ActiveKey())

	// filter changes do not touch stats
	q := "greet"
	off := false
	require.NoError(t, s.SetFilter(FilterUpdate{Query: &q, MissingOnly: &off}))
	assert.Equal(t, Filter{Query: "greet"}, s.Filter())
	assert.Len(t, s.VisibleRows(), 1)
	assert.Equal(t, stats.Total, s.Stats().Total)
}

func TestSession_LanguageSwitchResetsFilter(t *testing.T) {
	p := scenarioProvider()
	p.mappings["de"] = locale.FromPairs("greet", "Hallo")
	s := NewSession(p, "es")
	require.NoError(t, s.Load(context.Background(), "en"))

	q := "greet"
	require.NoError(t, s.SetFilter(FilterUpdate{Query: &q}))
	require.NoError(t, s.Focus("greet"))

	require.NoError(t, s.Load(context.Background(), "de"))
	assert.Equal(t, Filter{}, s.Filter())
	assert.Equal(t, "", s.ActiveKey())
	assert.Len(t, s.VisibleRows(), 2)
	assert.Equal(t, Stats{Total: 2, Missing: 1, Changed: 2, Extras: 0}, s.Stats())
}

func TestSession_TargetNotFound(t *testing.T) {
	s := NewSession(scenarioProvider(), "es")
	require.NoError(t, s.Load(context.Background(), "gl"))

	rows := s.Rows()
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.True(t, r.Missing)
		assert.Equal(t, "", r.Target)
	}
	assert.Equal(t, Stats{Total: 2, Missing: 2, Changed: 2, Extras: 0}, s.Stats())
}

func TestSession_BaseLanguage(t *testing.T) {
	p := scenarioProvider()
	s := NewSession(p, "es")
	require.NoError(t, s.Load(context.Background(), "es"))

	assert.Equal(t, 1, p.calls["es"])
	assert.Equal(t, Stats{Total: 2, Missing: 0, Changed: 0, Extras: 0}, s.Stats())

	// edits must not leak into the base values
	require.NoError(t, s.Edit("greet", "Buenas"))
	row, err := s.Row("greet")
	require.NoError(t, err)
	assert.Equal(t, "Hola", row.Base)
	assert.True(t, row.Changed)
}

func TestSession_LoadFailures(t *testing.T) {
	t.Run("base failure without snapshot", func(t *testing.T) {
		p := scenarioProvider()
		p.errs["es"] = errors.New("connection refused")
		s := NewSession(p, "es")

		err := s.Load(context.Background(), "en")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoad)

		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Equal(t, "es", loadErr.Identifier)
		assert.Equal(t, "en", loadErr.Language)

		assert.Equal(t, StateEmpty, s.State())
		st := s.Status()
		assert.Contains(t, st.Message, "connection refused")
		assert.NotEqual(t, loadingMessage, st.Message)
	})

	t.Run("base not found is an error", func(t *testing.T) {
		p := newFakeProvider()
		s := NewSession(p, "es")
		err := s.Load(context.Background(), "en")
		assert.ErrorIs(t, err, ErrLoad)
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("target failure keeps previous snapshot", func(t *testing.T) {
		p := scenarioProvider()
		p.mappings["de"] = locale.FromPairs("greet", "Hallo")
		s := NewSession(p, "es")
		require.NoError(t, s.Load(context.Background(), "en"))
		require.NoError(t, s.Edit("bye", "Bye"))

		p.errs["de"] = errors.New("decode de.json: invalid document")
		err := s.Load(context.Background(), "de")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoad)

		assert.Equal(t, StateReady, s.State())
		assert.Equal(t, "en", s.Language())
		row, err := s.Row("bye")
		require.NoError(t, err)
		assert.Equal(t, "Bye", row.Target)
		assert.NotEmpty(t, s.Status().Error)

		// a later successful load clears the error
		delete(p.errs, "de")
		require.NoError(t, s.Load(context.Background(), "de"))
		assert.Empty(t, s.Status().Error)
		assert.Equal(t, "Editing: de", s.Status().Message)
	})

	t.Run("invalid language", func(t *testing.T) {
		s := NewSession(scenarioProvider(), "es")
		assert.ErrorIs(t, s.Load(context.Background(), ""), ErrInvalidLanguage)
		assert.ErrorIs(t, s.Load(context.Background(), "../etc"), ErrInvalidLanguage)
		assert.ErrorIs(t, s.Load(context.Background(), "not a language"), ErrInvalidLanguage)
		assert.Equal(t, StateEmpty, s.State())
	})
}

func TestSession_LastLoadWins(t *testing.T) {
	p := scenarioProvider()
	p.mappings["de"] = locale.FromPairs("greet", "Hallo")
	gate := make(chan struct{})
	p.gates["en"] = gate
	s := NewSession(p, "es")

	slow := make(chan error, 1)
	go func() {
		slow <- s.Load(context.Background(), "en")
	}()

	require.Eventually(t, func() bool {
		return s.State() == StateLoading
	}, time.Second, time.Millisecond)

	require.NoError(t, s.Load(context.Background(), "de"))
	assert.Equal(t, "de", s.Language())

	close(gate)
	assert.ErrorIs(t, <-slow, ErrLoadSuperseded)

	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, "de", s.Language())
	row, err := s.Row("greet")
	require.NoError(t, err)
	assert.Equal(t, "Hallo", row.Target)
}

func TestSession_EditWhileLoading(t *testing.T) {
	p := scenarioProvider()
	p.mappings["de"] = locale.FromPairs("greet", "Hallo")
	s := NewSession(p, "es")
	require.NoError(t, s.Load(context.Background(), "en"))

	gate := make(chan struct{})
	p.mu.Lock()
	p.gates["de"] = gate
	p.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- s.Load(context.Background(), "de")
	}()
	require.Eventually(t, func() bool {
		return s.State() == StateLoading
	}, time.Second, time.Millisecond)

	// the previous snapshot stays editable
	require.NoError(t, s.Edit("bye", "Bye"))
	assert.Equal(t, "de", s.Status().Language)
	assert.Equal(t, loadingMessage, s.Status().Message)

	close(gate)
	require.NoError(t, <-done)

	row, err := s.Row("bye")
	require.NoError(t, err)
	assert.Equal(t, "", row.Target)
}

func TestSession_ReadersGetCopies(t *testing.T) {
	s := NewSession(scenarioProvider(), "es")
	require.NoError(t, s.Load(context.Background(), "en"))

	extras := s.ExtraKeys()
	extras[0] = "mutated"
	assert.Equal(t, []string{"extra1"}, s.ExtraKeys())

	rows := s.Rows()
	rows[0].Target = "mutated"
	row, err := s.Row(rows[0].Key)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", row.Target)

	_, out, err := s.Export()
	require.NoError(t, err)
	out.Set("greet", "mutated")
	_, again, err := s.Export()
	require.NoError(t, err)
	v, _ := again.Get("greet")
	assert.Equal(t, "Hello", v)
}

func TestSession_Refresh(t *testing.T) {
	p := scenarioProvider()
	s := NewSession(p, "es")
	require.NoError(t, s.Load(context.Background(), "en"))
	require.NoError(t, s.Edit("bye", "Bye"))

	p.mu.Lock()
	p.mappings["en"] = locale.FromPairs("greet", "Hello", "bye", "Goodbye")
	p.mu.Unlock()

	require.NoError(t, s.Refresh(context.Background()))
	row, err := s.Row("bye")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", row.Target)
	assert.Empty(t, s.ExtraKeys())
}

func TestValidateLanguage(t *testing.T) {
	for _, lang := range []string{"es", "en", "de", "ca", "gl", "eu", "pt-BR", "pt_BR", "zh-Hant"} {
		assert.NoError(t, ValidateLanguage(lang), lang)
	}
	for _, lang := range []string{"", " ", "en/../es", "a b", "toolonglanguagetag"} {
		assert.ErrorIs(t, ValidateLanguage(lang), ErrInvalidLanguage, lang)
	}
}

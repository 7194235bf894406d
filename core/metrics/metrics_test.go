package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"locale-manager/core/reconcile"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observer(t *testing.T) {
	m := New()

	m.LoadFinished("en", reconcile.Stats{Total: 2, Missing: 1, Changed: 2, Extras: 1}, 20*time.Millisecond, nil)
	m.LoadFinished("de", reconcile.Stats{}, time.Millisecond, errors.New("boom"))
	m.RowEdited("en", "bye", reconcile.Stats{Total: 2, Missing: 0, Changed: 2, Extras: 1})
	m.Exported("en", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("en", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("de", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.edits.WithLabelValues("en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("en")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.keys.WithLabelValues("en", "missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.keys.WithLabelValues("en", "extras")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Exported("gl", 10)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `locale_manager_editor_exports_total{language="gl"} 1`)
}

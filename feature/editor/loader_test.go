package editor

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(newTestService(t))

	assert.Equal(t, "editor", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/editor/session", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

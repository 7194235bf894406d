package editor

import (
	"testing"
	"testing/fstest"

	"locale-manager/core/locale"
	"locale-manager/core/reconcile"
	"locale-manager/core/source"

	"go.uber.org/zap"
)

func testConfig() locale.Config {
	return locale.Config{
		Base:         "es",
		Languages:    "es,en,de,gl",
		Source:       locale.SourceDir,
		Format:       "json",
		ExportPrefix: "qplay_",
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"es.json": {Data: []byte(`{"greet":"Hola","bye":"Adios"}`)},
		"en.json": {Data: []byte(`{"greet":"Hello","extra1":"X"}`)},
		"de.json": {Data: []byte(`{"greet":"Hola","bye":"Tschüss"}`)},
	}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	provider := source.NewFSProvider(testFS(), locale.FormatJSON)
	session := reconcile.NewSession(provider, "es")
	opts = append([]Option{WithLister(provider)}, opts...)
	return NewService(session, testConfig(), zap.NewNop(), opts...)
}

package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"locale-manager/core/locale"
	"locale-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectChan(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestStorageProvider_FetchKeyMapping(t *testing.T) {
	mockClient := new(mocks.Client)
	p := NewStorageProvider(mockClient, "locales", "/i18n/", locale.FormatJSON)

	body := io.NopCloser(strings.NewReader(`{"b":"2","a":"1"}`))
	mockClient.On("GetObject", mock.Anything, "locales", "i18n/en.json", mock.Anything).Return(body, nil)

	m, err := p.FetchKeyMapping(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, m.Keys())
	mockClient.AssertExpectations(t)
}

func TestStorageProvider_NotFound(t *testing.T) {
	mockClient := new(mocks.Client)
	p := NewStorageProvider(mockClient, "locales", "", locale.FormatJSON)

	notFound := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."}
	mockClient.On("GetObject", mock.Anything, "locales", "gl.json", mock.Anything).Return(nil, notFound)

	_, err := p.FetchKeyMapping(context.Background(), "gl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorageProvider_Errors(t *testing.T) {
	mockClient := new(mocks.Client)
	p := NewStorageProvider(mockClient, "locales", "", locale.FormatJSON)

	mockClient.On("GetObject", mock.Anything, "locales", "de.json", mock.Anything).Return(nil, errors.New("connection reset"))
	mockClient.On("GetObject", mock.Anything, "locales", "ca.json", mock.Anything).Return(io.NopCloser(strings.NewReader(`[1,2]`)), nil)

	_, err := p.FetchKeyMapping(context.Background(), "de")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")

	_, err = p.FetchKeyMapping(context.Background(), "ca")
	assert.ErrorIs(t, err, locale.ErrInvalidDocument)
}

func TestStorageProvider_ListLanguages(t *testing.T) {
	mockClient := new(mocks.Client)
	p := NewStorageProvider(mockClient, "locales", "i18n", locale.FormatJSON)

	mockClient.On("ListObjects", mock.Anything, "locales", minio.ListObjectsOptions{Prefix: "i18n/"}).
		Return(objectChan("i18n/es.json", "i18n/en.json", "i18n/README.md", "i18n/old/", "i18n/.json", "i18n/de.json"))

	langs, err := p.ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "es"}, langs)
}

func TestStorageProvider_YAML(t *testing.T) {
	mockClient := new(mocks.Client)
	p := NewStorageProvider(mockClient, "locales", "", locale.FormatYAML)
	assert.Equal(t, "es.yaml", p.ObjectName("es"))

	body := io.NopCloser(strings.NewReader("greet: Hola\nbye: Adios\n"))
	mockClient.On("GetObject", mock.Anything, "locales", "es.yaml", mock.Anything).Return(body, nil)

	m, err := p.FetchKeyMapping(context.Background(), "es")
	require.NoError(t, err)
	assert.Equal(t, []string{"greet", "bye"}, m.Keys())
}

func TestDirProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"es.json":        {Data: []byte(`{"greet":"Hola","bye":"Adios"}`)},
		"en.json":        {Data: []byte(`{"greet":"Hello"}`)},
		"broken.json":    {Data: []byte(`{"greet":`)},
		"notes.txt":      {Data: []byte(`ignored`)},
		"nested/de.json": {Data: []byte(`{}`)},
	}
	p := NewFSProvider(fsys, locale.FormatJSON)

	t.Run("fetch", func(t *testing.T) {
		m, err := p.FetchKeyMapping(context.Background(), "es")
		require.NoError(t, err)
		assert.Equal(t, []string{"greet", "bye"}, m.Keys())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := p.FetchKeyMapping(context.Background(), "eu")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := p.FetchKeyMapping(context.Background(), "broken")
		assert.ErrorIs(t, err, locale.ErrInvalidDocument)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		_, err := p.FetchKeyMapping(context.Background(), "../es")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		langs, err := p.ListLanguages(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"broken", "en", "es"}, langs)
	})
}

type countingProvider struct {
	calls   atomic.Int32
	release chan struct{}
}

func (c *countingProvider) FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error) {
	c.calls.Add(1)
	<-c.release
	return locale.FromPairs("greet", "Hola"), nil
}

func TestDeduplicated(t *testing.T) {
	next := &countingProvider{release: make(chan struct{})}
	d := Dedupe(next)

	const callers = 5
	results := make([]*locale.Mapping, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := d.FetchKeyMapping(context.Background(), "es")
			assert.NoError(t, err)
			results[i] = m
		}(i)
	}

	// give every caller time to join the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(next.release)
	wg.Wait()

	assert.LessOrEqual(t, next.calls.Load(), int32(callers))
	assert.GreaterOrEqual(t, next.calls.Load(), int32(1))

	// every caller owns its copy
	results[0].Set("greet", "mutated")
	for _, m := range results[1:] {
		v, _ := m.Get("greet")
		assert.Equal(t, "Hola", v)
	}
}

type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingProvider) FetchKeyMapping(ctx context.Context, identifier string) (*locale.Mapping, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return locale.FromPairs("greet", "Hola"), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestDeduplicated_CancelledCallerDoesNotFailOthers(t *testing.T) {
	next := &blockingProvider{started: make(chan struct{}, 2), release: make(chan struct{})}
	d := Dedupe(next)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := d.FetchKeyMapping(ctx, "es")
		firstErr <- err
	}()
	<-next.started

	type result struct {
		m   *locale.Mapping
		err error
	}
	second := make(chan result, 1)
	go func() {
		m, err := d.FetchKeyMapping(context.Background(), "es")
		second <- result{m, err}
	}()

	// let the second caller join the in-flight fetch before the first gives up
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(next.release)
	res := <-second
	require.NoError(t, res.err)
	v, ok := res.m.Get("greet")
	require.True(t, ok)
	assert.Equal(t, "Hola", v)
}

func TestDeduplicated_ListLanguages(t *testing.T) {
	fsys := fstest.MapFS{"es.json": {Data: []byte(`{}`)}}
	d := Dedupe(NewFSProvider(fsys, locale.FormatJSON))

	langs, err := d.ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"es"}, langs)

	langs, err = Dedupe(&countingProvider{}).ListLanguages(context.Background())
	require.NoError(t, err)
	assert.Nil(t, langs)
}

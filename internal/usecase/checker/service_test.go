package checker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline/internal/adapters/prompt"
	"redline/internal/domain"
	"redline/internal/ports"
)

type fakeGen struct {
	mu           sync.Mutex
	calls        int
	prompts      []string
	temperatures []float64
	reply        string
	err          error
}

func (f *fakeGen) Generate(ctx context.Context, p string, temperature float64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, p)
	f.temperatures = append(f.temperatures, temperature)
	return f.reply, f.err
}

type memCache struct {
	entries map[string]string
	stores  int
}

func newMemCache() *memCache { return &memCache{entries: map[string]string{}} }

func (c *memCache) Lookup(ctx context.Context, hash string) (string, bool, error) {
	payload, ok := c.entries[hash]
	return payload, ok, nil
}

func (c *memCache) Store(ctx context.Context, hash string, kind domain.OperationKind, payload string) error {
	c.entries[hash] = payload
	c.stores++
	return nil
}

func newService(gen ports.Generator, cache ports.ResponseCache) *Service {
	return New(Deps{
		Prompts:  prompt.New(),
		Provider: func() ports.Generator { return gen },
		Cache:    cache,
	})
}

func TestCheckDecodesReply(t *testing.T) {
	gen := &fakeGen{reply: `{"issues":[{"original":"hte","corrected":"the","explanation":"typo","rule":"spelling"}],"corrected_text":"the text"}`}
	svc := newService(gen, nil)

	res, err := svc.Check(context.Background(), "hte text", "English")
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "hte", res.Issues[0].Original)
	assert.Equal(t, "the", res.Issues[0].Corrected)
	assert.Equal(t, "the text", res.CorrectedText)

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasSuffix(gen.prompts[0], "Text to check:\nhte text"))
	assert.Contains(t, gen.prompts[0], "English")
	assert.Equal(t, []float64{0.2}, gen.temperatures)
}

func TestCheckNoIssuesKeepsEmptySlice(t *testing.T) {
	gen := &fakeGen{reply: `{"issues": [], "corrected_text": "Hello world."}`}
	svc := newService(gen, nil)

	res, err := svc.Check(context.Background(), "Hello world.", "English")
	require.NoError(t, err)
	require.NotNil(t, res.Issues)
	assert.Empty(t, res.Issues)
	assert.Equal(t, "Hello world.", res.CorrectedText)
}

func TestCheckIssuesNullBecomesEmptySlice(t *testing.T) {
	gen := &fakeGen{reply: `{"issues": null, "corrected_text": "ok"}`}
	svc := newService(gen, nil)

	res, err := svc.Check(context.Background(), "ok", "English")
	require.NoError(t, err)
	require.NotNil(t, res.Issues)
	assert.Empty(t, res.Issues)
}

func TestCheckStripsFences(t *testing.T) {
	gen := &fakeGen{reply: "```json\n{\"issues\":[],\"corrected_text\":\"fine\"}\n```"}
	svc := newService(gen, nil)

	res, err := svc.Check(context.Background(), "fine", "中文")
	require.NoError(t, err)
	assert.Equal(t, "fine", res.CorrectedText)
}

func TestCheckMalformedReply(t *testing.T) {
	gen := &fakeGen{reply: "I think your text is great!"}
	svc := newService(gen, nil)

	_, err := svc.Check(context.Background(), "some text", "English")
	var decodeErr *ports.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestCheckBlankInput(t *testing.T) {
	gen := &fakeGen{reply: `{}`}
	svc := newService(gen, nil)

	_, err := svc.Check(context.Background(), "   \n\t", "English")
	assert.ErrorIs(t, err, ports.ErrEmptyInput)
	assert.Zero(t, gen.calls)
}

func TestCheckNotConfigured(t *testing.T) {
	svc := New(Deps{Prompts: prompt.New(), Provider: func() ports.Generator { return nil }})

	_, err := svc.Check(context.Background(), "some text", "English")
	assert.ErrorIs(t, err, ports.ErrNotConfigured)
}

func TestCheckUpstreamErrorPassesThrough(t *testing.T) {
	gen := &fakeGen{err: &ports.RemoteError{StatusCode: 429, Body: "quota"}}
	svc := newService(gen, nil)

	_, err := svc.Check(context.Background(), "some text", "English")
	var remoteErr *ports.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 429, remoteErr.StatusCode)
}

func TestCheckCacheRoundTrip(t *testing.T) {
	gen := &fakeGen{reply: `{"issues":[],"corrected_text":"cached"}`}
	cache := newMemCache()
	svc := newService(gen, cache)

	first, err := svc.Check(context.Background(), "same text", "English")
	require.NoError(t, err)
	second, err := svc.Check(context.Background(), "same text", "English")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls, "second call must be served from cache")
	assert.Equal(t, 1, cache.stores)

	// A different language is a different request.
	_, err = svc.Check(context.Background(), "same text", "中文")
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestCheckMalformedReplyNotCached(t *testing.T) {
	gen := &fakeGen{reply: "not json"}
	cache := newMemCache()
	svc := newService(gen, cache)

	_, err := svc.Check(context.Background(), "some text", "English")
	require.Error(t, err)
	assert.Zero(t, cache.stores)

	// Once the model answers properly the same request succeeds.
	gen.reply = `{"issues":[],"corrected_text":"fixed"}`
	res, err := svc.Check(context.Background(), "some text", "English")
	require.NoError(t, err)
	assert.Equal(t, "fixed", res.CorrectedText)
}

func TestCheckNilProviderFunc(t *testing.T) {
	svc := New(Deps{Prompts: prompt.New()})

	_, err := svc.Check(context.Background(), "text", "English")
	assert.True(t, errors.Is(err, ports.ErrNotConfigured))
}

package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/monitoring"
)

const pageHTML = `<html><head><title>திருக்குறள்</title></head><body>
<h1>அறத்துப்பால் (Virtue)</h1>
<p>Kural 1: அகர முதல</p>
<p>English only paragraph</p>
<h1>  Preface  </h1>
<div><span>தமிழ்</span></div>
</body></html>`

type fakeFetcher struct {
	page  *fetch.Page
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) (*fetch.Page, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	page := *f.page
	page.URL = rawURL
	return &page, nil
}

func openHTML(t *testing.T, body string, opts ...Option) *Document {
	t.Helper()
	f := &fakeFetcher{page: &fetch.Page{StatusCode: 200, Body: []byte(body)}}

	doc, err := Open(context.Background(), f, "https://example.org/page", opts...)
	require.NoError(t, err)
	require.Equal(t, 1, f.calls)
	return doc
}

func TestTextRaw(t *testing.T) {
	doc := openHTML(t, pageHTML)

	res, err := doc.Text(Raw)
	require.NoError(t, err)

	assert.Equal(t, Raw, res.Filter)
	assert.Equal(t, []string{
		"திருக்குறள்",
		"அறத்துப்பால் (Virtue)",
		"Kural 1: அகர முதல",
		"தமிழ்",
	}, res.Fragments)
	require.Len(t, res.Runs, 4)
	assert.Equal(t, []string{"Kural 1: அகர முதல"}, res.Runs[2])
}

func TestTextTamilOnly(t *testing.T) {
	doc := openHTML(t, pageHTML)

	res, err := doc.Text(TamilOnly)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"திருக்குறள்"},
		{"அறத்துப்பால்"},
		{"அகர", "முதல"},
		{"தமிழ்"},
	}, res.Runs)
	assert.Equal(t, []string{"திருக்குறள்", "அறத்துப்பால்", "அகர", "முதல", "தமிழ்"}, res.Flat())
}

func TestTextNonTamilOnlySelectsBroaderSet(t *testing.T) {
	doc := openHTML(t, pageHTML)

	tamilRes, err := doc.Text(Raw)
	require.NoError(t, err)
	res, err := doc.Text(NonTamilOnly)
	require.NoError(t, err)

	assert.Greater(t, res.Len(), tamilRes.Len())
	assert.Len(t, res.Runs, res.Len())
	assert.Contains(t, res.Fragments, "English only paragraph")
	assert.Contains(t, res.Fragments, "\n")
	assert.NotContains(t, res.Fragments, "தமிழ்")

	flat := res.Flat()
	assert.Contains(t, flat, " (Virtue)")
	assert.Contains(t, flat, "Kural 1: ")
	for _, run := range flat {
		assert.NotRegexp(t, `[\x{0B82}-\x{0BFA}]`, run)
	}
}

func TestByTagRaw(t *testing.T) {
	doc := openHTML(t, pageHTML)

	res, err := doc.ByTag("h1", Raw)
	require.NoError(t, err)

	// no Tamil pre-filter for tag queries
	assert.Equal(t, []string{"அறத்துப்பால் (Virtue)", "Preface"}, res.Fragments)
	assert.Equal(t, [][]string{{"அறத்துப்பால் (Virtue)"}, {"Preface"}}, res.Runs)
}

func TestByTagFiltered(t *testing.T) {
	doc := openHTML(t, pageHTML)

	res, err := doc.ByTag("p", TamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"அகர", "முதல"}, {}}, res.Runs)

	res, err = doc.ByTag("P", NonTamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Kural 1: ", " "}, {"English only paragraph"}}, res.Runs)
}

func TestByTagFlattensNestedText(t *testing.T) {
	doc := openHTML(t, pageHTML)

	res, err := doc.ByTag("div", Raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"தமிழ்"}, res.Fragments)
}

func TestByTagStripsNestedWhitespace(t *testing.T) {
	doc := openHTML(t, "<p>அ <b>ஆ</b>\n  x</p>")

	res, err := doc.ByTag("p", Raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"அஆx"}, res.Fragments)

	res, err = doc.ByTag("p", TamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"அஆ"}}, res.Runs)

	res, err = doc.ByTag("p", NonTamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x"}}, res.Runs)
}

func TestTextIncludesComments(t *testing.T) {
	doc := openHTML(t, "<body><!-- தமிழ் குறிப்பு --><p>ஆ</p></body>")

	res, err := doc.Text(Raw)
	require.NoError(t, err)
	assert.Equal(t, []string{" தமிழ் குறிப்பு ", "ஆ"}, res.Fragments)

	res, err = doc.Text(TamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"தமிழ்", "குறிப்பு"}, {"ஆ"}}, res.Runs)

	res, err = doc.Text(NonTamilOnly)
	require.NoError(t, err)
	assert.Equal(t, []string{" தமிழ் குறிப்பு "}, res.Fragments)
	assert.Equal(t, [][]string{{" ", " ", " "}}, res.Runs)
}

func TestCombinedFiltersRejected(t *testing.T) {
	doc := openHTML(t, pageHTML)
	both := TamilOnly | NonTamilOnly

	_, err := doc.Text(both)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for _, tag := range []string{"h1", "p", "table", "", "nosuchtag"} {
		_, err := doc.ByTag(tag, both)
		assert.ErrorIs(t, err, ErrInvalidArgument, tag)
	}
}

func TestUnknownFilterRejected(t *testing.T) {
	doc := openHTML(t, pageHTML)

	_, err := doc.Text(Filter(8))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestByTagInvalidName(t *testing.T) {
	doc := openHTML(t, pageHTML)

	_, err := doc.ByTag("h1, p", Raw)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmptyDocument(t *testing.T) {
	for _, body := range []string{"", "<html><body></body></html>", "<p>only english</p>"} {
		doc := openHTML(t, body)

		for _, filter := range []Filter{Raw, TamilOnly} {
			res, err := doc.Text(filter)
			require.NoError(t, err)
			assert.True(t, res.Empty())
			assert.NotNil(t, res.Fragments)

			res, err = doc.ByTag("h1", filter)
			require.NoError(t, err)
			assert.True(t, res.Empty())
		}

		res, err := doc.ByTag("h2", NonTamilOnly)
		require.NoError(t, err)
		assert.True(t, res.Empty())
	}

	doc := openHTML(t, "")
	res, err := doc.Text(NonTamilOnly)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestOpenPropagatesFetchError(t *testing.T) {
	fetchErr := &fetch.Error{URL: "https://example.org", StatusCode: 503, Status: "503 Service Unavailable"}
	f := &fakeFetcher{err: fetchErr}

	doc, err := Open(context.Background(), f, "https://example.org")
	assert.Nil(t, doc)
	assert.Same(t, fetchErr, err)
	assert.ErrorIs(t, err, fetch.ErrFetch)
	assert.Equal(t, 1, f.calls)
}

func TestOpenOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/blocked" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	client := fetch.NewClient(fetch.DefaultConfig(), nil)

	doc, err := Open(context.Background(), client, srv.URL+"/page")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/page", doc.URL())
	assert.True(t, strings.HasPrefix(doc.ID().String(), "doc_"))

	res, err := doc.ByTag("h1", TamilOnly)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"அறத்துப்பால்"}, {}}, res.Runs)

	_, err = Open(context.Background(), client, srv.URL+"/blocked")
	assert.Equal(t, http.StatusForbidden, fetch.StatusCode(err))
}

func TestSanitizeDropsScriptText(t *testing.T) {
	body := `<html><head><script>var s = "அ";</script></head><body><p>ஆ</p></body></html>`

	plain := openHTML(t, body)
	res, err := plain.Text(Raw)
	require.NoError(t, err)
	assert.Equal(t, []string{`var s = "அ";`, "ஆ"}, res.Fragments)

	clean := openHTML(t, body, WithSanitize(true))
	res, err = clean.Text(Raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"ஆ"}, res.Fragments)
}

func TestDiagnosticsAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	doc := openHTML(t, pageHTML, WithLogger(zap.New(core)), WithMetrics(metrics))
	_, err := doc.ByTag("h1", TamilOnly)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("document parsed").Len())
	entries := logs.FilterMessage("fragments selected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "h1", fields["query"])
	assert.Equal(t, int64(2), fields["fragments"])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsParsed))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.FragmentsExtracted.WithLabelValues("tamil_only")))
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "raw", Raw.String())
	assert.Equal(t, "tamil_only", TamilOnly.String())
	assert.Equal(t, "non_tamil_only", NonTamilOnly.String())
	assert.Equal(t, "filter(3)", (TamilOnly | NonTamilOnly).String())
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/TamilScraper/internal/config"
	"github.com/GriffinCanCode/TamilScraper/internal/fetch"
	"github.com/GriffinCanCode/TamilScraper/internal/tables"
)

const pageHTML = `<html><body>
<h1>திருக்குறள் (Thirukkural)</h1>
<table><tr><th>Key</th><th>Value</th></tr><tr><td>lang</td><td>English</td></tr></table>
<table><tr><th>Word</th><th>Meaning</th></tr><tr><td>அறம்</td><td>virtue</td></tr></table>
</body></html>`

func newSite(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(pageHTML))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(url, format string) *config.Config {
	cfg := config.Default()
	cfg.Target.URL = url
	cfg.Output.Format = format
	return cfg
}

func TestRunMarkdown(t *testing.T) {
	srv := newSite(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), testConfig(srv.URL+"/page", config.FormatMarkdown), zap.NewNop(), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "| Word | Meaning |\n| --- | --- |\n| அறம் | virtue |\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunJSONWithMetrics(t *testing.T) {
	srv := newSite(t)
	cfg := testConfig(srv.URL+"/page", config.FormatJSON)
	cfg.Output.MetricsDump = true
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), cfg, zap.NewNop(), &stdout, &stderr)
	require.NoError(t, err)

	var found []tables.Table
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, []string{"Word", "Meaning"}, found[0].Columns)

	assert.Contains(t, stderr.String(), "tamilscraper_tables_selected_total 1")
	assert.Contains(t, stderr.String(), `tamilscraper_fetches_total{outcome="ok"} 2`)
}

func TestRunPropagatesFetchError(t *testing.T) {
	srv := newSite(t)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), testConfig(srv.URL+"/missing", config.FormatMarkdown), zap.NewNop(), &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, fetch.IsNotFound(err))
	assert.Empty(t, stdout.String())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, render(&buf, []tables.Table{}, config.FormatMarkdown))
	assert.Empty(t, buf.String())

	require.NoError(t, render(&buf, []tables.Table{}, config.FormatJSON))
	assert.JSONEq(t, "[]", buf.String())
}

func TestRenderSeparatesTables(t *testing.T) {
	var buf bytes.Buffer
	found := []tables.Table{
		{Columns: []string{"a"}, Rows: [][]string{{"அ"}}},
		{Columns: []string{"b"}, Rows: [][]string{{"ஆ"}}},
	}

	require.NoError(t, render(&buf, found, config.FormatMarkdown))
	assert.Equal(t, "| a |\n| --- |\n| அ |\n\n| b |\n| --- |\n| ஆ |\n", buf.String())
}

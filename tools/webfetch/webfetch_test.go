package webfetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/tools/webfetch"
)

func Test_Tool(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello, page!</body></html>"))
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	ctx := context.Background()

	tool, err := webfetch.New()
	require.NoError(t, err)
	tool.WithHTTPClient(server.Client())

	assert.Equal(t, webfetch.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "web page")
	assert.NotNil(t, tool.Parameters())

	res, err := tool.Run(ctx, &webfetch.FetchRequest{URL: server.URL + "/page"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.ContentType, "text/html")
	assert.Contains(t, res.Content, "Hello, page!")
	assert.False(t, res.Truncated)

	_, err = tool.Run(ctx, &webfetch.FetchRequest{URL: server.URL + "/missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 404")
	assert.Contains(t, err.Error(), "404 page not found")

	_, err = tool.Run(ctx, &webfetch.FetchRequest{})
	assert.EqualError(t, err, "invalid request: empty URL")

	_, err = tool.Run(ctx, &webfetch.FetchRequest{URL: "ftp://example.com/file"})
	assert.EqualError(t, err, "invalid request: unsupported scheme: ftp")

	_, err = tool.Call(ctx, "plain string")
	assert.True(t, errors.Is(err, chatmodel.ErrFailedUnmarshalInput))

	out, err := tool.Call(ctx, `{"URL": "`+server.URL+`/page"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello, page!")
}

func Test_Tool_ErrorBodyTruncated(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("b", 2048)))
	}))
	defer server.Close()

	tool, err := webfetch.New()
	require.NoError(t, err)
	tool.WithHTTPClient(server.Client())

	_, err = tool.Run(context.Background(), &webfetch.FetchRequest{URL: server.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 502")
	assert.Contains(t, err.Error(), strings.Repeat("b", 512))
	assert.NotContains(t, err.Error(), strings.Repeat("b", 513))
}

func Test_Tool_Truncate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer server.Close()

	tool, err := webfetch.New()
	require.NoError(t, err)
	tool.WithHTTPClient(server.Client()).WithMaxContentLength(10)

	res, err := tool.Run(context.Background(), &webfetch.FetchRequest{URL: server.URL})
	require.NoError(t, err)
	assert.Len(t, res.Content, 10)
	assert.True(t, res.Truncated)
}

func Test_Tool_AllowedHosts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	tool, err := webfetch.New()
	require.NoError(t, err)
	tool.WithHTTPClient(server.Client()).WithAllowedHosts("example.com")

	_, err = tool.Run(context.Background(), &webfetch.FetchRequest{URL: server.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host not allowed")

	tool.WithAllowedHosts(u.Hostname())
	res, err := tool.Run(context.Background(), &webfetch.FetchRequest{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Content)
}

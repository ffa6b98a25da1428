// Package webfetch provides a tool that fetches the content of a web page
// over HTTP for the model to read.
package webfetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/schema"
	"github.com/promptops/agentic/tools"
)

const ToolName = "WebFetch"

const (
	defaultTimeout          = 30 * time.Second
	defaultMaxContentLength = 512 * 1024
	maxErrorBodyLength      = 512
)

// FetchRequest represents the tool input.
type FetchRequest struct {
	URL string `json:"URL" yaml:"URL" jsonschema:"title=URL,description=The http(s) URL of the page to fetch."`
}

// FetchResult represents the fetched page.
type FetchResult struct {
	URL         string `json:"url" yaml:"URL" jsonschema:"title=url,description=The URL the content was retrieved from."`
	StatusCode  int    `json:"status_code" yaml:"StatusCode" jsonschema:"title=status_code,description=The HTTP status code of the response."`
	ContentType string `json:"content_type,omitempty" yaml:"ContentType" jsonschema:"title=content_type,description=The content type of the response."`
	Content     string `json:"content" yaml:"Content" jsonschema:"title=content,description=The body of the page."`
	Truncated   bool   `json:"truncated,omitempty" yaml:"Truncated" jsonschema:"title=truncated,description=Whether the content was truncated."`
}

func (r *FetchResult) GetContent() string {
	return llmutils.ToJSON(r)
}

// Tool is a tool that fetches a single page over HTTP.
type Tool struct {
	name        string
	description string
	funcParams  any

	httpClient       *http.Client
	maxContentLength int
	allowedHosts     []string
}

var _ tools.Tool[FetchRequest, FetchResult] = (*Tool)(nil)

func New() (*Tool, error) {
	sc, err := schema.New(reflect.TypeOf(FetchRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}
	return &Tool{
		name:             ToolName,
		description:      "A tool that fetches the content of a web page by URL.",
		funcParams:       sc.Parameters,
		httpClient:       &http.Client{Timeout: defaultTimeout},
		maxContentLength: defaultMaxContentLength,
	}, nil
}

func (t *Tool) WithHTTPClient(client *http.Client) *Tool {
	t.httpClient = client
	return t
}

// WithMaxContentLength limits the body size in bytes. 0 means unlimited.
func (t *Tool) WithMaxContentLength(limit int) *Tool {
	t.maxContentLength = limit
	return t
}

// WithAllowedHosts restricts fetches to the given hosts.
// An empty list allows any host.
func (t *Tool) WithAllowedHosts(hosts ...string) *Tool {
	t.allowedHosts = hosts
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if req.URL == "" {
		return nil, errors.New("invalid request: empty URL")
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request: malformed URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Newf("invalid request: unsupported scheme: %s", u.Scheme)
	}
	if len(t.allowedHosts) > 0 && !t.hostAllowed(u.Hostname()) {
		return nil, errors.Newf("invalid request: host not allowed: %s", u.Hostname())
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := t.httpClient.Do(hreq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch URL")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return nil, errors.Newf("unexpected status: %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	body := resp.Body.(io.Reader)
	if t.maxContentLength > 0 {
		body = io.LimitReader(body, int64(t.maxContentLength)+1)
	}
	bs, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	res := &FetchResult{
		URL:         req.URL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Content:     string(bs),
	}
	if t.maxContentLength > 0 && len(bs) > t.maxContentLength {
		res.Content = res.Content[:t.maxContentLength]
		res.Truncated = true
	}
	return res, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req FetchRequest
	if err := ljson.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", chatmodel.ErrFailedUnmarshalInput
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.GetContent(), nil
}

func (t *Tool) hostAllowed(host string) bool {
	for _, allowed := range t.allowedHosts {
		if strings.EqualFold(host, allowed) {
			return true
		}
	}
	return false
}

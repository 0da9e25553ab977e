package toolset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/beatport-mcp/beatport"
	"github.com/viant/beatport-mcp/credentials"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type recorded struct {
	method string
	path   string
	query  url.Values
	body   string
	auth   string
}

type upstream struct {
	mux      sync.Mutex
	requests []recorded
	server   *httptest.Server
}

func (u *upstream) last() recorded {
	u.mux.Lock()
	defer u.mux.Unlock()
	return u.requests[len(u.requests)-1]
}

func (u *upstream) count() int {
	u.mux.Lock()
	defer u.mux.Unlock()
	return len(u.requests)
}

func newUpstream(t *testing.T) *upstream {
	ret := &upstream{}
	ret.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		ret.mux.Lock()
		ret.requests = append(ret.requests, recorded{method: r.Method, path: r.URL.Path, query: r.URL.Query(), body: string(data), auth: r.Header.Get("Authorization")})
		ret.mux.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/catalog/tracks/404/":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail":"Not found."}`)
		case "/catalog/genres/":
			fmt.Fprint(w, `{"results":[{"id":6,"name":"Techno"}]}`)
		default:
			fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
		}
	}))
	t.Cleanup(ret.server.Close)
	return ret
}

func newRegistry(t *testing.T, baseURL string) *tool.Registry {
	creds := &credentials.Credentials{ClientID: "client", AccessToken: "secret-token", RefreshToken: "refresh"}
	client := beatport.New(creds, beatport.WithBaseURL(baseURL))
	registry := tool.NewRegistry()
	require.NoError(t, New(client).Register(registry))
	return registry
}

func TestService_Register(t *testing.T) {
	registry := newRegistry(t, "http://127.0.0.1:1")
	assert.Equal(t, []string{
		"search", "search_tracks", "get_track", "get_release", "get_release_tracks",
		"get_artist", "get_artist_tracks", "get_label", "get_label_releases",
		"list_genres", "genre_top100", "get_chart", "get_chart_tracks",
		"introspect_token", "api_request",
	}, registry.Names())

	searchTool := registry.Tools()[1]
	require.Equal(t, "search_tracks", searchTool.Name)
	assert.Equal(t, []string{"query"}, searchTool.InputSchema.Required)
	assert.Contains(t, searchTool.InputSchema.Properties, "per_page")
}

func TestService_Calls(t *testing.T) {
	up := newUpstream(t)
	registry := newRegistry(t, up.server.URL)

	var testCases = []struct {
		description string
		name        string
		arguments   map[string]interface{}
		method      string
		path        string
		query       url.Values
		body        string
	}{
		{
			description: "search tracks",
			name:        "search_tracks",
			arguments:   map[string]interface{}{"query": "daft punk"},
			method:      http.MethodGet,
			path:        "/catalog/search/",
			query:       url.Values{"q": {"daft punk"}, "type": {"tracks"}},
		},
		{
			description: "search with paging",
			name:        "search",
			arguments:   map[string]interface{}{"query": "drumcode", "type": "labels", "page": 2, "per_page": 10},
			method:      http.MethodGet,
			path:        "/catalog/search/",
			query:       url.Values{"q": {"drumcode"}, "type": {"labels"}, "page": {"2"}, "per_page": {"10"}},
		},
		{description: "track", name: "get_track", arguments: map[string]interface{}{"id": 123}, method: http.MethodGet, path: "/catalog/tracks/123/"},
		{description: "release", name: "get_release", arguments: map[string]interface{}{"id": 7}, method: http.MethodGet, path: "/catalog/releases/7/"},
		{description: "release tracks", name: "get_release_tracks", arguments: map[string]interface{}{"id": 7}, method: http.MethodGet, path: "/catalog/releases/7/tracks/"},
		{description: "artist", name: "get_artist", arguments: map[string]interface{}{"id": 3}, method: http.MethodGet, path: "/catalog/artists/3/"},
		{description: "artist tracks", name: "get_artist_tracks", arguments: map[string]interface{}{"id": 3, "per_page": 50}, method: http.MethodGet, path: "/catalog/artists/3/tracks/", query: url.Values{"per_page": {"50"}}},
		{description: "label", name: "get_label", arguments: map[string]interface{}{"id": 1}, method: http.MethodGet, path: "/catalog/labels/1/"},
		{description: "label releases", name: "get_label_releases", arguments: map[string]interface{}{"id": 1}, method: http.MethodGet, path: "/catalog/labels/1/releases/"},
		{description: "genres", name: "list_genres", method: http.MethodGet, path: "/catalog/genres/"},
		{description: "top 100", name: "genre_top100", arguments: map[string]interface{}{"id": 6}, method: http.MethodGet, path: "/catalog/genres/6/top/100/"},
		{description: "chart", name: "get_chart", arguments: map[string]interface{}{"id": 9}, method: http.MethodGet, path: "/catalog/charts/9/"},
		{description: "chart tracks", name: "get_chart_tracks", arguments: map[string]interface{}{"id": 9}, method: http.MethodGet, path: "/catalog/charts/9/tracks/"},
		{description: "introspect", name: "introspect_token", method: http.MethodGet, path: "/auth/o/introspect/"},
		{
			description: "generic get",
			name:        "api_request",
			arguments:   map[string]interface{}{"endpoint": "/catalog/tracks/", "params": map[string]interface{}{"genre_id": 6, "bpm": []interface{}{120, 125}}},
			method:      http.MethodGet,
			path:        "/catalog/tracks/",
			query:       url.Values{"genre_id": {"6"}, "bpm": {"120", "125"}},
		},
		{
			description: "generic post",
			name:        "api_request",
			arguments:   map[string]interface{}{"method": "post", "endpoint": "my/playlists/", "body": map[string]interface{}{"name": "Set"}},
			method:      http.MethodPost,
			path:        "/my/playlists/",
			body:        `{"name":"Set"}`,
		},
	}

	for _, testCase := range testCases {
		before := up.count()
		result, rpcErr := registry.Call(context.Background(), &schema.CallToolRequestParams{Name: testCase.name, Arguments: testCase.arguments})
		require.Nil(t, rpcErr, testCase.description)
		assert.False(t, tool.IsError(result), testCase.description)
		assert.Equal(t, before+1, up.count(), "%v: exactly one upstream request", testCase.description)

		last := up.last()
		assert.Equal(t, testCase.method, last.method, testCase.description)
		assert.Equal(t, testCase.path, last.path, testCase.description)
		assert.Equal(t, "Bearer secret-token", last.auth, testCase.description)
		if testCase.query == nil {
			assert.Empty(t, last.query, testCase.description)
		} else {
			assert.Equal(t, testCase.query, last.query, testCase.description)
		}
		if testCase.body != "" {
			assert.JSONEq(t, testCase.body, last.body, testCase.description)
		}
	}
}

func TestService_ResultMirrorsBody(t *testing.T) {
	up := newUpstream(t)
	registry := newRegistry(t, up.server.URL)

	result, rpcErr := registry.Call(context.Background(), &schema.CallToolRequestParams{Name: "list_genres"})
	require.Nil(t, rpcErr)
	assert.JSONEq(t, `{"results":[{"id":6,"name":"Techno"}]}`, tool.Text(result))
	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[{"id":6,"name":"Techno"}]}`, string(data))
}

func TestService_UpstreamError(t *testing.T) {
	up := newUpstream(t)
	registry := newRegistry(t, up.server.URL)

	result, rpcErr := registry.Call(context.Background(), &schema.CallToolRequestParams{Name: "get_track", Arguments: map[string]interface{}{"id": 404}})
	require.Nil(t, rpcErr)
	assert.True(t, tool.IsError(result))
	assert.Contains(t, tool.Text(result), "404")
	assert.Contains(t, tool.Text(result), "Not found.")
	assert.Equal(t, 404, result.StructuredContent["status"])

	result, rpcErr = registry.Call(context.Background(), &schema.CallToolRequestParams{Name: "get_track", Arguments: map[string]interface{}{"id": 1}})
	require.Nil(t, rpcErr)
	assert.False(t, tool.IsError(result))
}

func TestService_InvalidArguments(t *testing.T) {
	up := newUpstream(t)
	registry := newRegistry(t, up.server.URL)

	var testCases = []struct {
		description string
		name        string
		arguments   map[string]interface{}
	}{
		{description: "blank query", name: "search", arguments: map[string]interface{}{"query": "  "}},
		{description: "bad search type", name: "search", arguments: map[string]interface{}{"query": "x", "type": "podcasts"}},
		{description: "zero id", name: "get_track", arguments: map[string]interface{}{"id": 0}},
		{description: "missing id", name: "get_release_tracks", arguments: map[string]interface{}{}},
		{description: "bad top100 id", name: "genre_top100", arguments: map[string]interface{}{"id": -1}},
		{description: "bad method", name: "api_request", arguments: map[string]interface{}{"method": "TRACE", "endpoint": "catalog/"}},
		{description: "blank endpoint", name: "api_request", arguments: map[string]interface{}{"endpoint": " "}},
	}
	for _, testCase := range testCases {
		_, rpcErr := registry.Call(context.Background(), &schema.CallToolRequestParams{Name: testCase.name, Arguments: testCase.arguments})
		require.NotNil(t, rpcErr, testCase.description)
		assert.Equal(t, jsonrpc.InvalidParams, rpcErr.Code, testCase.description)
	}
	assert.Equal(t, 0, up.count(), "invalid arguments never reach upstream")
}

func TestQueryValues(t *testing.T) {
	assert.Nil(t, queryValues(nil))
	values := queryValues(map[string]interface{}{"a": 1.5, "b": float64(3), "c": true, "d": nil, "e": "x"})
	assert.Equal(t, url.Values{"a": {"1.5"}, "b": {"3"}, "c": {"true"}, "e": {"x"}}, values)
}

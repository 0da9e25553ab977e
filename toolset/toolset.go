// Package toolset exposes Beatport API endpoints as MCP tools.
package toolset

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/viant/beatport-mcp/beatport"
	"github.com/viant/beatport-mcp/tool"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Service binds the Beatport client to tool handlers
type Service struct {
	client *beatport.Client
}

type call func(ctx context.Context) (*beatport.Response, error)

// respond turns an upstream outcome into a tool result. Upstream failures are
// reported in-band so the session stays usable.
func respond(ctx context.Context, fn call) (*schema.CallToolResult, *jsonrpc.Error) {
	response, err := fn(ctx)
	if err != nil {
		ret := tool.ErrorResult(err)
		if status := beatport.StatusCode(err); status != 0 {
			ret.StructuredContent = map[string]interface{}{"status": status}
		}
		return ret, nil
	}
	object, _ := response.Object()
	return tool.JSONResult(response.Body, object), nil
}

func (s *Service) search(ctx context.Context, input *SearchInput) (*schema.CallToolResult, *jsonrpc.Error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, jsonrpc.NewInvalidParamsError("query was empty", nil)
	}
	if input.Type != "" && !isSearchType(input.Type) {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("unsupported search type: %v, expected one of %v", input.Type, strings.Join(beatport.SearchTypes, ", ")), nil)
	}
	return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
		return s.client.Search(ctx, input.Query, input.Type, input.page())
	})
}

func (s *Service) searchTracks(ctx context.Context, input *SearchTracksInput) (*schema.CallToolResult, *jsonrpc.Error) {
	return s.search(ctx, &SearchInput{Query: input.Query, Type: beatport.Tracks, Paging: input.Paging})
}

func (s *Service) entity(collection string) tool.Func[EntityInput] {
	return func(ctx context.Context, input *EntityInput) (*schema.CallToolResult, *jsonrpc.Error) {
		if input.ID <= 0 {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid id: %v", input.ID), nil)
		}
		return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
			return s.client.Entity(ctx, collection, input.ID)
		})
	}
}

func (s *Service) related(collection, relation string) tool.Func[RelatedInput] {
	return func(ctx context.Context, input *RelatedInput) (*schema.CallToolResult, *jsonrpc.Error) {
		if input.ID <= 0 {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid id: %v", input.ID), nil)
		}
		return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
			return s.client.Related(ctx, collection, input.ID, relation, input.page())
		})
	}
}

func (s *Service) listGenres(ctx context.Context, input *ListInput) (*schema.CallToolResult, *jsonrpc.Error) {
	return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
		return s.client.Genres(ctx, input.page())
	})
}

func (s *Service) genreTop100(ctx context.Context, input *RelatedInput) (*schema.CallToolResult, *jsonrpc.Error) {
	if input.ID <= 0 {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("invalid genre id: %v", input.ID), nil)
	}
	return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
		return s.client.Top100(ctx, input.ID, input.page())
	})
}

func (s *Service) introspect(ctx context.Context, _ *struct{}) (*schema.CallToolResult, *jsonrpc.Error) {
	return respond(ctx, s.client.Introspect)
}

func (s *Service) apiRequest(ctx context.Context, input *APIRequestInput) (*schema.CallToolResult, *jsonrpc.Error) {
	method := strings.ToUpper(strings.TrimSpace(input.Method))
	switch method {
	case "":
		method = http.MethodGet
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("unsupported method: %v", input.Method), nil)
	}
	if strings.TrimSpace(input.Endpoint) == "" {
		return nil, jsonrpc.NewInvalidParamsError("endpoint was empty", nil)
	}
	request := &beatport.Request{Method: method, Endpoint: input.Endpoint, Query: queryValues(input.Params)}
	if input.Body != nil {
		request.Body = input.Body
	}
	return respond(ctx, func(ctx context.Context) (*beatport.Response, error) {
		return s.client.Do(ctx, request)
	})
}

// queryValues flattens JSON params; arrays become repeated keys.
func queryValues(params map[string]interface{}) url.Values {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	ret := url.Values{}
	for _, key := range keys {
		switch actual := params[key].(type) {
		case nil:
		case []interface{}:
			for _, item := range actual {
				ret.Add(key, scalar(item))
			}
		default:
			ret.Set(key, scalar(actual))
		}
	}
	return ret
}

func scalar(value interface{}) string {
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", value)
}

func isSearchType(candidate string) bool {
	for _, kind := range beatport.SearchTypes {
		if kind == candidate {
			return true
		}
	}
	return false
}

// Register adds every Beatport tool to the registry
func (s *Service) Register(registry *tool.Registry) error {
	steps := []func() error{
		func() error {
			return tool.Register[SearchInput](registry, "search", "Search the Beatport catalog for tracks, releases, artists, labels or charts", s.search)
		},
		func() error {
			return tool.Register[SearchTracksInput](registry, "search_tracks", "Search Beatport tracks", s.searchTracks)
		},
		func() error {
			return tool.Register[EntityInput](registry, "get_track", "Get a Beatport track by id", s.entity(beatport.Tracks))
		},
		func() error {
			return tool.Register[EntityInput](registry, "get_release", "Get a Beatport release by id", s.entity(beatport.Releases))
		},
		func() error {
			return tool.Register[RelatedInput](registry, "get_release_tracks", "List the tracks of a Beatport release", s.related(beatport.Releases, beatport.Tracks))
		},
		func() error {
			return tool.Register[EntityInput](registry, "get_artist", "Get a Beatport artist by id", s.entity(beatport.Artists))
		},
		func() error {
			return tool.Register[RelatedInput](registry, "get_artist_tracks", "List the tracks of a Beatport artist", s.related(beatport.Artists, beatport.Tracks))
		},
		func() error {
			return tool.Register[EntityInput](registry, "get_label", "Get a Beatport label by id", s.entity(beatport.Labels))
		},
		func() error {
			return tool.Register[RelatedInput](registry, "get_label_releases", "List the releases of a Beatport label", s.related(beatport.Labels, beatport.Releases))
		},
		func() error {
			return tool.Register[ListInput](registry, "list_genres", "List Beatport genres", s.listGenres)
		},
		func() error {
			return tool.Register[RelatedInput](registry, "genre_top100", "Get the Beatport top 100 tracks of a genre", s.genreTop100)
		},
		func() error {
			return tool.Register[EntityInput](registry, "get_chart", "Get a Beatport chart by id", s.entity(beatport.Charts))
		},
		func() error {
			return tool.Register[RelatedInput](registry, "get_chart_tracks", "List the tracks of a Beatport chart", s.related(beatport.Charts, beatport.Tracks))
		},
		func() error {
			return tool.Register[struct{}](registry, "introspect_token", "Describe the access token the bridge runs with", s.introspect)
		},
		func() error {
			return tool.Register[APIRequestInput](registry, "api_request", "Call any Beatport v4 API endpoint", s.apiRequest)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// New creates a toolset service
func New(client *beatport.Client) *Service {
	return &Service{client: client}
}

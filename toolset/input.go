package toolset

import "github.com/viant/beatport-mcp/beatport"

type (
	// Paging is embedded by list tools
	Paging struct {
		Page    *int `json:"page" description:"1-based result page"`
		PerPage *int `json:"per_page" description:"results per page"`
	}

	SearchInput struct {
		Query string `json:"query" description:"search phrase, e.g. artist or track name"`
		Type  string `json:"type,omitempty" description:"restrict results to one catalog type" choice:"tracks|releases|artists|labels|charts"`
		Paging
	}

	SearchTracksInput struct {
		Query string `json:"query" description:"search phrase, e.g. artist or track name"`
		Paging
	}

	EntityInput struct {
		ID int `json:"id" description:"Beatport catalog id"`
	}

	RelatedInput struct {
		ID int `json:"id" description:"Beatport catalog id"`
		Paging
	}

	ListInput struct {
		Paging
	}

	APIRequestInput struct {
		Method   string                 `json:"method,omitempty" description:"HTTP method, defaults to GET" choice:"GET|POST|PUT|PATCH|DELETE"`
		Endpoint string                 `json:"endpoint" description:"path relative to the v4 API root, e.g. catalog/tracks/123/"`
		Params   map[string]interface{} `json:"params,omitempty" description:"query string parameters"`
		Body     map[string]interface{} `json:"body,omitempty" description:"JSON body for POST, PUT and PATCH"`
	}
)

func (p *Paging) page() *beatport.Page {
	ret := &beatport.Page{}
	if p.Page != nil {
		ret.Page = *p.Page
	}
	if p.PerPage != nil {
		ret.PerPage = *p.PerPage
	}
	return ret
}

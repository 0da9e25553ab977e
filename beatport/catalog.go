package beatport

import (
	"context"
	"fmt"
	"net/url"
)

// Catalog resource collections addressable by id
const (
	Tracks   = "tracks"
	Releases = "releases"
	Artists  = "artists"
	Labels   = "labels"
	Genres   = "genres"
	Charts   = "charts"
)

// SearchTypes lists values accepted by the search "type" parameter
var SearchTypes = []string{Tracks, Releases, Artists, Labels, Charts}

// Page controls pagination of list endpoints
type Page struct {
	Page    int
	PerPage int
}

func (p *Page) apply(query Query) Query {
	if p == nil {
		return query
	}
	return query.Int("page", p.Page).Int("per_page", p.PerPage)
}

// Search queries catalog/search; kind narrows results to one of SearchTypes.
func (c *Client) Search(ctx context.Context, term, kind string, page *Page) (*Response, error) {
	query := Query{}.String("q", term).String("type", kind)
	return c.Get(ctx, "catalog/search/", page.apply(query).Values())
}

// Entity fetches catalog/{collection}/{id}/
func (c *Client) Entity(ctx context.Context, collection string, id int) (*Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid %v id: %v", collection, id)
	}
	return c.Get(ctx, fmt.Sprintf("catalog/%v/%d/", collection, id), nil)
}

// Related fetches catalog/{collection}/{id}/{relation}/
func (c *Client) Related(ctx context.Context, collection string, id int, relation string, page *Page) (*Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid %v id: %v", collection, id)
	}
	return c.Get(ctx, fmt.Sprintf("catalog/%v/%d/%v/", collection, id, relation), page.apply(Query{}).Values())
}

// Genres lists catalog genres
func (c *Client) Genres(ctx context.Context, page *Page) (*Response, error) {
	return c.Get(ctx, "catalog/genres/", page.apply(Query{}).Values())
}

// Top100 fetches the top 100 tracks of a genre
func (c *Client) Top100(ctx context.Context, genreID int, page *Page) (*Response, error) {
	if genreID <= 0 {
		return nil, fmt.Errorf("invalid genre id: %v", genreID)
	}
	return c.Get(ctx, fmt.Sprintf("catalog/genres/%d/top/100/", genreID), page.apply(Query{}).Values())
}

// Introspect describes the access token the client runs with
func (c *Client) Introspect(ctx context.Context) (*Response, error) {
	return c.Get(ctx, "auth/o/introspect/", url.Values{})
}

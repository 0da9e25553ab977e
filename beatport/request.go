package beatport

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request describes one Beatport API call
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     interface{}
}

// Response holds a successful Beatport response
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// JSON decodes the body into a generic value.
func (r *Response) JSON() (interface{}, error) {
	var ret interface{}
	if len(r.Body) == 0 {
		return nil, nil
	}
	err := json.Unmarshal(r.Body, &ret)
	return ret, err
}

// Object returns the body as a JSON object, or false if it is not one.
func (r *Response) Object() (map[string]interface{}, bool) {
	value, err := r.JSON()
	if err != nil {
		return nil, false
	}
	ret, ok := value.(map[string]interface{})
	return ret, ok
}

func (r *Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(r.Method)
}

func (r *Request) hasBody() bool {
	if r.Body == nil {
		return false
	}
	switch r.method() {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// Query builds url.Values skipping empty values
type Query url.Values

func (q Query) String(key, value string) Query {
	if value != "" {
		url.Values(q).Set(key, value)
	}
	return q
}

func (q Query) Int(key string, value int) Query {
	if value > 0 {
		url.Values(q).Set(key, strconv.Itoa(value))
	}
	return q
}

func (q Query) Values() url.Values {
	return url.Values(q)
}

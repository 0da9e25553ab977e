// Package beatport implements a thin client for the Beatport v4 REST API.
//
// Every call is a single HTTP request authenticated with the startup access
// token as a bearer credential. Non-2xx responses come back as *APIError so
// callers can report them without tearing anything down.
package beatport

package transport

import "net/http"

// Method is one of the HTTP verbs the API is called with.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodHead   Method = http.MethodHead
	MethodDelete Method = http.MethodDelete
)

// ParseMethod reports whether name is one of the five recognized
// method names. Matching is case sensitive, so "get" is a path segment.
func ParseMethod(name string) (Method, bool) {
	switch m := Method(name); m {
	case MethodGet, MethodPost, MethodPut, MethodHead, MethodDelete:
		return m, true
	}
	return "", false
}

// Valid reports whether m is a recognized method.
func (m Method) Valid() bool {
	_, ok := ParseMethod(string(m))
	return ok
}

// sendsJSON reports whether a call without an explicit content type
// encodes its parameters as a JSON body.
func (m Method) sendsJSON() bool {
	return m == MethodPost || m == MethodPut
}

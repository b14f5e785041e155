package transport

import (
	"fmt"
	"io"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Reserved parameter keys. They steer how a call is built and are never
// sent as parameters themselves.
const (
	// KeyURL replaces the accumulated path. A leading "/" is optional.
	KeyURL = "url"
	// KeyType sets the request content type and selects how KeyBody is encoded.
	KeyType = "type"
	// KeyBody is the request body used together with KeyType.
	KeyBody = "body"
	// KeyHandler holds a [Handler] replacing the default JSON decoding.
	KeyHandler = "handler"
	// KeyQuery holds query parameters for calls that otherwise send them
	// in the body.
	KeyQuery = "GET"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeForm      = "application/x-www-form-urlencoded"
	ContentTypeMultipart = "multipart/form-data"
)

// Params are the named arguments of a single call.
type Params map[string]any

func isReserved(key string) bool {
	switch key {
	case KeyURL, KeyType, KeyBody, KeyHandler, KeyQuery:
		return true
	}
	return false
}

// payload returns the parameters that belong in a JSON body.
func (p Params) payload() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		if k == KeyURL || k == KeyHandler || k == KeyQuery {
			continue
		}
		out[k] = v
	}
	return out
}

// File is a file part of a multipart body.
type File struct {
	Name    string
	Content io.Reader
}

// queryValues collects the query parameters of a call. POST and PUT
// calls only take the nested KeyQuery map; every other method also
// takes all non-reserved parameters.
func queryValues(m Method, p Params) (url.Values, error) {
	values := url.Values{}

	if !m.sendsJSON() {
		for k, v := range p {
			if isReserved(k) {
				continue
			}
			addValue(values, k, v)
		}
	}

	nested, ok := p[KeyQuery]
	if !ok || nested == nil {
		return values, nil
	}

	switch q := nested.(type) {
	case url.Values:
		for k, vs := range q {
			values[k] = append(values[k], vs...)
		}
	case map[string]string:
		for k, v := range q {
			values.Add(k, v)
		}
	case map[string]any:
		for k, v := range q {
			addValue(values, k, v)
		}
	case Params:
		for k, v := range q {
			addValue(values, k, v)
		}
	default:
		return nil, fmt.Errorf("%w: %q must be a map, got %T", ErrInvalidParam, KeyQuery, nested)
	}

	return values, nil
}

func addValue(values url.Values, key string, v any) {
	switch val := v.(type) {
	case []string:
		for _, s := range val {
			values.Add(key, s)
		}
	case []any:
		for _, e := range val {
			values.Add(key, formatValue(e))
		}
	case []int:
		for _, e := range val {
			values.Add(key, strconv.Itoa(e))
		}
	default:
		values.Add(key, formatValue(v))
	}
}

// formatValue renders a query value. Booleans are always lower case.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// appendQuery adds the encoded values to target, if there are any.
func appendQuery(target string, values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return target
	}

	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + encoded
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

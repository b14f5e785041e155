package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

// body is an encoded request body and the headers it requires.
type body struct {
	data    []byte
	headers map[string]string
}

// resolveBody encodes the body of a call:
//   - POST and PUT without KeyType send the parameters as JSON.
//   - KeyType multipart/form-data encodes KeyBody as a multipart form.
//   - Any other KeyType sends KeyBody as is with that content type.
//   - Everything else has no body.
func resolveBody(m Method, p Params) (*body, error) {
	typ, hasType := p[KeyType]

	switch {
	case !hasType && m.sendsJSON():
		data, err := json.Marshal(p.payload())
		if err != nil {
			return nil, fmt.Errorf("encoding json body: %w", err)
		}
		return &body{data: data, headers: map[string]string{"content-type": ContentTypeJSON}}, nil

	case hasType:
		contentType, ok := typ.(string)
		if !ok || contentType == "" {
			return nil, fmt.Errorf("%w: %q must be a non-empty string, got %T", ErrInvalidParam, KeyType, typ)
		}

		if contentType == ContentTypeMultipart {
			return encodeMultipart(p[KeyBody])
		}

		data, err := verbatim(p[KeyBody])
		if err != nil {
			return nil, err
		}
		return &body{data: data, headers: map[string]string{"content-type": contentType}}, nil
	}

	return &body{}, nil
}

// verbatim returns the raw bytes of a body. Values that are not
// already text or bytes are encoded as JSON.
func verbatim(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}
		return data, nil
	}
}

// encodeMultipart writes fields in key order. [File] and [io.Reader]
// values become file parts, everything else a form field.
func encodeMultipart(v any) (*body, error) {
	var fields map[string]any
	switch f := v.(type) {
	case map[string]any:
		fields = f
	case Params:
		fields = f
	case map[string]string:
		fields = make(map[string]any, len(f))
		for k, s := range f {
			fields[k] = s
		}
	default:
		return nil, fmt.Errorf("%w: multipart %q must be a map, got %T", ErrInvalidParam, KeyBody, v)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, name := range sortedKeys(fields) {
		if err := writePart(mw, name, fields[name]); err != nil {
			return nil, fmt.Errorf("multipart field %q: %w", name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return &body{
		data:    buf.Bytes(),
		headers: map[string]string{"content-type": mw.FormDataContentType()},
	}, nil
}

func writePart(mw *multipart.Writer, name string, v any) error {
	var (
		filename string
		content  io.Reader
	)

	switch f := v.(type) {
	case File:
		filename, content = f.Name, f.Content
	case *File:
		filename, content = f.Name, f.Content
	case io.Reader:
		filename, content = name, f
	case []byte:
		return mw.WriteField(name, string(f))
	default:
		return mw.WriteField(name, formatValue(v))
	}

	if content == nil {
		return fmt.Errorf("%w: file part has no content", ErrInvalidParam)
	}

	part, err := mw.CreateFormFile(name, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, content)
	return err
}

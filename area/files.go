package area

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/adamwoolhether/podio/transport"
	"github.com/adamwoolhether/podio/transport/download"
)

// Files covers uploaded files.
type Files struct{ base }

func NewFiles(t *transport.Transport) *Files { return &Files{base{t}} }

func (f *Files) Find(ctx context.Context, fileID int) (any, error) {
	return f.call(ctx, transport.MethodGet, nil, "file", fileID)
}

// FindRaw returns the content of a file.
func (f *Files) FindRaw(ctx context.Context, fileID int) ([]byte, error) {
	out, err := f.call(ctx, transport.MethodGet, transport.Params{transport.KeyHandler: transport.Raw()}, "file", fileID, "raw")
	if err != nil {
		return nil, err
	}

	data, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected raw file result %T", out)
	}
	return data, nil
}

// Download looks the file up, then streams its content to destPath.
// The reported size is checked against the bytes received; when
// destPath is a directory the file is stored under its reported name.
func (f *Files) Download(ctx context.Context, fileID int, destPath string, logger *slog.Logger, opts ...download.Option) (download.Result, error) {
	meta, err := f.Meta(ctx, fileID)
	if err != nil {
		return download.Result{}, err
	}

	out, err := f.call(ctx, transport.MethodGet, transport.Params{
		transport.KeyHandler: transport.ToFile(destPath, logger, append([]download.Option{download.WithMeta(meta)}, opts...)...),
	}, "file", fileID, "raw")
	if err != nil {
		return download.Result{}, err
	}

	res, ok := out.(download.Result)
	if !ok {
		return download.Result{}, fmt.Errorf("unexpected download result %T", out)
	}
	return res, nil
}

// Meta returns the name, size and mime type the API holds for a file.
func (f *Files) Meta(ctx context.Context, fileID int) (download.Meta, error) {
	out, err := f.Find(ctx, fileID)
	if err != nil {
		return download.Meta{}, err
	}

	var meta download.Meta
	if err := Decode(out, &meta); err != nil {
		return download.Meta{}, err
	}
	if meta.FileID == 0 {
		meta.FileID = fileID
	}
	return meta, nil
}

// Attach links a file to the object refType/refID.
func (f *Files) Attach(ctx context.Context, fileID int, refType string, refID int) (any, error) {
	return f.call(ctx, transport.MethodPost, jsonBody(map[string]any{"ref_type": refType, "ref_id": refID}, Options{}), "file", fileID, "attach")
}

// Create uploads content under filename.
func (f *Files) Create(ctx context.Context, filename string, content io.Reader) (any, error) {
	if content == nil {
		return nil, errors.New("file content must not be nil")
	}

	return f.call(ctx, transport.MethodPost, transport.Params{
		transport.KeyType: transport.ContentTypeMultipart,
		transport.KeyBody: map[string]any{
			"filename": filename,
			"source":   transport.File{Name: filename, Content: content},
		},
	}, "file", "v2", "")
}

// Copy duplicates a file under a new id.
func (f *Files) Copy(ctx context.Context, fileID int) (any, error) {
	return f.call(ctx, transport.MethodPost, nil, "file", fileID, "copy")
}

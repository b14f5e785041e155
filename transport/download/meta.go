package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Meta is what the API reports about a stored file.
type Meta struct {
	FileID   int    `json:"file_id"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

// Result describes a finished download.
type Result struct {
	Path  string
	Bytes int64
}

// resolveTarget returns the path a download lands at. A destination
// that is an existing directory receives the file under its reported
// name.
func resolveTarget(destPath string, meta *Meta) (string, error) {
	if destPath == "" {
		return "", ErrEmptyDestination
	}

	info, err := os.Stat(destPath)
	if err != nil || !info.IsDir() {
		return destPath, nil
	}

	name := ""
	if meta != nil {
		name = safeName(meta.Name)
	}
	if name == "" {
		return "", &Error{Err: ErrEmptyDestination, Detail: fmt.Sprintf("%s is a directory and the file has no usable name", destPath)}
	}

	return filepath.Join(destPath, name), nil
}

// safeName drops any directory parts of a name sent by the server.
func safeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

// checkSize compares the written byte count with the announced content
// length and the size the API reports for the file. Negative or zero
// expectations are unknown and skipped.
func checkSize(written, contentLength int64, meta *Meta) error {
	if contentLength >= 0 && written != contentLength {
		return &Error{Err: ErrSizeMismatch, Detail: fmt.Sprintf("content length %d, got %d bytes", contentLength, written)}
	}
	if meta != nil && meta.Size > 0 && written != meta.Size {
		return &Error{Err: ErrSizeMismatch, Detail: fmt.Sprintf("file %d is %d bytes, got %d", meta.FileID, meta.Size, written)}
	}
	return nil
}

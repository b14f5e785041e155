package download

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"
)

// progressWriter logs how far a file transfer has come.
type progressWriter struct {
	w       io.Writer
	logger  *slog.Logger
	attrs   []any
	written int64
	total   int64
	started time.Time
	logged  time.Time
}

// newProgressWriter labels the logs with the file's id and reported
// name when known. The total is the announced content length, falling
// back to the reported size.
func newProgressWriter(w io.Writer, logger *slog.Logger, target string, contentLength int64, meta *Meta) *progressWriter {
	pw := &progressWriter{
		w:       w,
		logger:  logger,
		attrs:   []any{"file", filepath.Base(target)},
		total:   contentLength,
		started: time.Now(),
	}
	if meta != nil {
		pw.attrs = append(pw.attrs, "file_id", meta.FileID)
		if meta.MimeType != "" {
			pw.attrs = append(pw.attrs, "mimetype", meta.MimeType)
		}
		if pw.total < 0 && meta.Size > 0 {
			pw.total = meta.Size
		}
	}
	return pw
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	pw.written += int64(n)

	switch {
	case pw.total >= 0 && pw.written == pw.total:
		pw.log("file download complete")
	case time.Since(pw.logged) >= time.Second:
		pw.logged = time.Now()
		pw.log("file downloading")
	}

	return n, err
}

func (pw *progressWriter) log(msg string) {
	attrs := append(pw.attrs[:len(pw.attrs):len(pw.attrs)],
		"written", pw.written,
		"elapsed", time.Since(pw.started).Round(time.Millisecond),
	)
	if pw.total > 0 {
		attrs = append(attrs, "total", pw.total, "progress", fmt.Sprintf("%.1f%%", float64(pw.written)/float64(pw.total)*100))
	}

	pw.logger.Info(msg, attrs...)
}

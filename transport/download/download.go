package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ToFile streams body into destPath. contentLength is the value the
// server announced, or -1 when unknown. On any failure the partial file
// is removed and the destination is left as it was.
func ToFile(ctx context.Context, body io.Reader, contentLength int64, destPath string, logger *slog.Logger, optFns ...Option) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return Result{}, fmt.Errorf("applying download option: %w", err)
		}
	}

	target, err := resolveTarget(destPath, opts.meta)
	if err != nil {
		return Result{}, err
	}

	if opts.skipExisting {
		if info, err := os.Stat(target); err == nil {
			logger.Info("file already present, skipping download", "path", target)
			return Result{Path: target, Bytes: info.Size()}, nil
		}
	}

	s, err := newSink(target, logger)
	if err != nil {
		return Result{}, err
	}
	defer s.abort()

	var w io.Writer = s.f
	if opts.digest != nil {
		w = io.MultiWriter(w, opts.digest)
	}
	if opts.progress {
		w = newProgressWriter(w, logger, target, contentLength, opts.meta)
	}

	n, err := io.Copy(w, &ctxReader{ctx: ctx, r: body})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{Path: target, Bytes: n}, fmt.Errorf("%w: %w", ErrDownloadCancelled, err)
		}
		return Result{Path: target, Bytes: n}, fmt.Errorf("writing file body: %w", err)
	}

	if err := checkSize(n, contentLength, opts.meta); err != nil {
		return Result{Path: target, Bytes: n}, err
	}
	if err := opts.digest.verify(); err != nil {
		return Result{Path: target, Bytes: n}, err
	}

	if err := s.commit(); err != nil {
		return Result{Path: target, Bytes: n}, err
	}

	return Result{Path: target, Bytes: n}, nil
}

// sink is a hidden temp file next to target that only becomes target
// on commit.
type sink struct {
	f         *os.File
	target    string
	logger    *slog.Logger
	committed bool
}

func newSink(target string, logger *slog.Logger) (*sink, error) {
	f, err := os.CreateTemp(filepath.Dir(target), ".podio-file-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	return &sink{f: f, target: target, logger: logger}, nil
}

func (s *sink) commit() error {
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(s.f.Name(), s.target); err != nil {
		return fmt.Errorf("moving file into place: %w", err)
	}
	s.committed = true
	return nil
}

func (s *sink) abort() {
	if s.committed {
		return
	}
	if err := s.f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		s.logger.Error("closing temp file", "error", err)
	}
	if err := os.Remove(s.f.Name()); err != nil {
		s.logger.Error("removing temp file", "error", err)
	}
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}

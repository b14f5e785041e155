package download_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamwoolhether/podio/transport/download"
	"github.com/google/go-cmp/cmp"
)

func sum(b []byte) string {
	s := sha256.Sum256(b)
	return hex.EncodeToString(s[:])
}

func TestToFile(t *testing.T) {
	content := []byte("attachment bytes")

	testCases := []struct {
		name    string
		length  int64
		opts    []download.Option
		expErr  error
		expFile bool
	}{
		{name: "known length", length: int64(len(content)), expFile: true},
		{name: "unknown length", length: -1, expFile: true},
		{name: "checksum ok", length: -1, opts: []download.Option{download.WithChecksum(sha256.New(), sum(content))}, expFile: true},
		{name: "checksum mismatch", length: -1, opts: []download.Option{download.WithChecksum(sha256.New(), sum([]byte("other")))}, expErr: download.ErrChecksumMismatch},
		{name: "short body", length: int64(len(content) + 1), expErr: download.ErrSizeMismatch},
		{name: "progress", length: int64(len(content)), opts: []download.Option{download.WithProgress()}, expFile: true},
		{name: "reported size ok", length: -1, opts: []download.Option{download.WithMeta(download.Meta{FileID: 1, Size: int64(len(content))})}, expFile: true},
		{name: "reported size differs", length: -1, opts: []download.Option{download.WithMeta(download.Meta{FileID: 1, Size: 3})}, expErr: download.ErrSizeMismatch},
		{name: "progress with meta", length: -1, opts: []download.Option{download.WithMeta(download.Meta{FileID: 1, Name: "a.bin", Size: int64(len(content)), MimeType: "application/octet-stream"}), download.WithProgress()}, expFile: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			dest := filepath.Join(dir, "file.bin")

			res, err := download.ToFile(t.Context(), bytes.NewReader(content), tc.length, dest, nil, tc.opts...)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v, got %v", tc.expErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			got, readErr := os.ReadFile(dest)
			if !tc.expFile {
				if !errors.Is(readErr, os.ErrNotExist) {
					t.Errorf("destination should not exist, got err %v", readErr)
				}
			} else {
				if readErr != nil {
					t.Fatalf("reading destination: %v", readErr)
				}
				if diff := cmp.Diff(content, got); diff != "" {
					t.Errorf("content mismatch (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(download.Result{Path: dest, Bytes: int64(len(content))}, res); diff != "" {
					t.Errorf("result mismatch (-want +got):\n%s", diff)
				}
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range entries {
				if strings.HasPrefix(e.Name(), ".podio-file-") {
					t.Errorf("temp file left behind: %s", e.Name())
				}
			}
		})
	}
}

func TestToFile_SkipExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(dest, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := download.ToFile(t.Context(), strings.NewReader("new"), 3, dest, nil, download.WithSkipExisting()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "old" {
		t.Errorf("existing file was overwritten: %q", got)
	}
}

func TestToFile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	dest := filepath.Join(t.TempDir(), "never.bin")
	_, err := download.ToFile(ctx, strings.NewReader("data"), -1, dest, nil)
	if !errors.Is(err, download.ErrDownloadCancelled) {
		t.Fatalf("exp ErrDownloadCancelled, got %v", err)
	}
}

func TestToFile_EmptyDestination(t *testing.T) {
	_, err := download.ToFile(t.Context(), strings.NewReader("x"), -1, "", nil)
	if !errors.Is(err, download.ErrEmptyDestination) {
		t.Fatalf("exp ErrEmptyDestination, got %v", err)
	}
}

func TestWithChecksum_Validation(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "x")
	if _, err := download.ToFile(t.Context(), strings.NewReader("x"), -1, dest, nil, download.WithChecksum(nil, "abc")); err == nil {
		t.Error("expected error for nil hash")
	}
	if _, err := download.ToFile(t.Context(), strings.NewReader("x"), -1, dest, nil, download.WithChecksum(sha256.New(), "")); err == nil {
		t.Error("expected error for empty checksum")
	}
}

func TestToFile_DirectoryUsesReportedName(t *testing.T) {
	testCases := []struct {
		name    string
		meta    download.Meta
		expName string
		expErr  error
	}{
		{name: "plain name", meta: download.Meta{FileID: 7, Name: "report.pdf"}, expName: "report.pdf"},
		{name: "path parts dropped", meta: download.Meta{FileID: 7, Name: "../../etc/passwd"}, expName: "passwd"},
		{name: "windows path parts dropped", meta: download.Meta{FileID: 7, Name: `..\x\y.txt`}, expName: "y.txt"},
		{name: "no name", meta: download.Meta{FileID: 7}, expErr: download.ErrEmptyDestination},
		{name: "dot dot", meta: download.Meta{FileID: 7, Name: ".."}, expErr: download.ErrEmptyDestination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			res, err := download.ToFile(t.Context(), strings.NewReader("pdf"), 3, dir, nil, download.WithMeta(tc.meta))
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v, got %v", tc.expErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			exp := filepath.Join(dir, tc.expName)
			if res.Path != exp {
				t.Errorf("exp path %s, got %s", exp, res.Path)
			}
			got, err := os.ReadFile(exp)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "pdf" {
				t.Errorf("content mismatch: %q", got)
			}
		})
	}
}

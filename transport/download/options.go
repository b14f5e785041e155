package download

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
)

// Option configures a single file download.
type Option func(*options) error

type options struct {
	meta         *Meta
	digest       *digest
	progress     bool
	skipExisting bool
}

// WithMeta supplies what the API reports about the file. Its size is
// checked against the written bytes, its name names the file when the
// destination is a directory and labels progress logs.
func WithMeta(m Meta) Option {
	return func(opts *options) error {
		opts.meta = &m
		return nil
	}
}

// WithChecksum verifies the written bytes against the hex encoded sum
// produced by h.
func WithChecksum(h hash.Hash, expected string) Option {
	return func(opts *options) error {
		if h == nil {
			return errors.New("hash must not be nil")
		}
		if expected == "" {
			return errors.New("expected checksum must not be empty")
		}

		opts.digest = &digest{hash: h, expected: expected}
		return nil
	}
}

// WithProgress logs transfer progress at most once a second.
func WithProgress() Option {
	return func(opts *options) error {
		opts.progress = true
		return nil
	}
}

// WithSkipExisting leaves an existing destination untouched.
func WithSkipExisting() Option {
	return func(opts *options) error {
		opts.skipExisting = true
		return nil
	}
}

type digest struct {
	hash     hash.Hash
	expected string
}

func (d *digest) Write(p []byte) (int, error) {
	return d.hash.Write(p)
}

func (d *digest) verify() error {
	if d == nil {
		return nil
	}

	if got := hex.EncodeToString(d.hash.Sum(nil)); got != d.expected {
		return &Error{Err: ErrChecksumMismatch, Detail: fmt.Sprintf("expected %s, got %s", d.expected, got)}
	}

	return nil
}

package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// LocalStore keeps files on the local filesystem below dir and serves them
// from baseURL.
type LocalStore struct {
	dir     string
	baseURL string
	maxSize int64
	kind    Kind
}

// NewLocalStore creates dir if needed and returns a store for uploads of the
// given kind no larger than maxSize bytes.
func NewLocalStore(dir, baseURL string, maxSize int64, kind Kind) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSize: maxSize,
		kind:    kind,
	}, nil
}

// WithKind returns a copy of s accepting uploads of kind k. Both copies share
// the same directory.
func (s *LocalStore) WithKind(k Kind) *LocalStore {
	c := *s
	c.kind = k
	return &c
}

func (s *LocalStore) Put(ctx context.Context, prefix string, r io.Reader) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	ct, body, err := sniff(r)
	if err != nil {
		return Object{}, fmt.Errorf("read upload: %w", err)
	}
	if !s.kind.Allowed(ct) {
		return Object{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}

	key := path.Join(prefix, ulid.Make().String()+extensions[ct])
	full, err := s.path(key)
	if err != nil {
		return Object{}, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return Object{}, fmt.Errorf("create dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return Object{}, fmt.Errorf("create file: %w", err)
	}

	// One extra byte tells an exact-size file from an oversized one.
	n, err := io.Copy(f, io.LimitReader(body, s.maxSize+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(full)
		return Object{}, fmt.Errorf("write file: %w", err)
	case n > s.maxSize:
		_ = os.Remove(full)
		return Object{}, ErrTooLarge
	case closeErr != nil:
		_ = os.Remove(full)
		return Object{}, fmt.Errorf("close file: %w", closeErr)
	}

	return Object{Key: key, URL: s.baseURL + "/" + key, ContentType: ct, Size: n}, nil
}

func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	full, err := s.path(key)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("open file: %w", err)
	}

	ct := "application/octet-stream"
	ext := filepath.Ext(key)
	for t, e := range extensions {
		if e == ext {
			ct = t
			break
		}
	}
	return f, ct, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	full, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// KeyFromURL strips the public base URL from u. It returns false for URLs
// not served by this store.
func (s *LocalStore) KeyFromURL(u string) (string, bool) {
	key, ok := strings.CutPrefix(u, s.baseURL+"/")
	return key, ok && key != ""
}

// path resolves key inside dir, rejecting keys that escape it.
func (s *LocalStore) path(key string) (string, error) {
	if !fs.ValidPath(key) {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, filepath.FromSlash(key)), nil
}

// Ping reports whether the upload directory is still reachable.
func (s *LocalStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat upload dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("upload dir %s is not a directory", s.dir)
	}
	return nil
}

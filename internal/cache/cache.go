// Package cache stores per-document analysis reports on disk, keyed by the
// content digest of the source text. A cache hit skips the whole
// lex/parse/validate/analyze pipeline for unchanged documents.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Increment when the Payload format changes.
const schemaVersion uint16 = 1

// Digest identifies document content.
type Digest [sha256.Size]byte

// Hash digests raw document bytes.
func Hash(data []byte) Digest {
	return sha256.Sum256(data)
}

// IsZero reports whether the digest was never set.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// DiagRecord is the serializable form of one diagnostic.
type DiagRecord struct {
	Code     uint16
	Severity uint8
	Message  string
	Line     uint32
	Col      uint32
}

// MetricRecord carries one operation's measured values.
type MetricRecord struct {
	Operation  string
	Depth      int
	Complexity int
	Aliases    int
}

// Payload is the cached analysis outcome for one document.
type Payload struct {
	Schema uint16
	Path   string
	Digest Digest

	Diagnostics []DiagRecord
	Metrics     []MetricRecord
	FieldUsage  map[string]int
}

// Store is a thread-safe on-disk cache of payloads.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a store at dir, or at the XDG cache location for app
// when dir is empty.
func Open(app, dir string) (*Store, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(s.dir, "reports", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically.
func (s *Store) Put(key Digest, payload *Payload) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	payload.Schema = schemaVersion
	payload.Digest = key

	p := s.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or a schema mismatch is a miss, not
// an error.
func (s *Store) Get(key Digest, out *Payload) (bool, error) {
	if s == nil {
		return false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != schemaVersion || out.Digest != key {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (s *Store) DropAll() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(s.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

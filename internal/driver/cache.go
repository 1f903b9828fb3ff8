package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"fsdc/internal/diag"
	"fsdc/internal/source"
)

// Current schema version - increment when CachePayload format changes
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// ContentKey derives the cache key of a file from its display name and
// content. The name is part of the key because it appears in every message.
func ContentKey(name string, content []byte) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], cacheSchemaVersion)
	_, _ = h.Write(schema[:])
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// DiskCache stores check results keyed by ContentKey.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedError is a DefinitionError without its cause.
type CachedError struct {
	Code    uint16
	Message string
	Line    int
	Column  int
}

// CachePayload is what the cache keeps per file.
type CachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema  uint16
	Name    string
	Service string
	Errors  []CachedError
}

// OpenDiskCache opens a cache in dir, or in $XDG_CACHE_HOME/<app> when dir
// is empty.
func OpenDiskCache(dir, app string) (*DiskCache, error) {
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
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "defs", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = cacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or one written by another schema
// version is a miss.
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
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
	return out.Schema == cacheSchemaVersion, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим целиком
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func toPayload(res *FileResult) *CachePayload {
	payload := &CachePayload{
		Name:   res.Name,
		Errors: make([]CachedError, len(res.Errors)),
	}
	if res.Service != nil {
		payload.Service = res.Service.Name()
	}
	for i, e := range res.Errors {
		payload.Errors[i] = CachedError{
			Code:    uint16(e.Code),
			Message: e.Message,
			Line:    e.Position.Line,
			Column:  e.Position.Column,
		}
	}
	return payload
}

func fromPayload(payload *CachePayload) []*diag.DefinitionError {
	if len(payload.Errors) == 0 {
		return nil
	}
	errs := make([]*diag.DefinitionError, len(payload.Errors))
	for i, e := range payload.Errors {
		var pos source.Position
		if e.Line > 0 {
			pos = source.NewPosition(payload.Name, e.Line, e.Column)
		}
		errs[i] = diag.New(diag.Code(e.Code), pos, e.Message)
	}
	return errs
}

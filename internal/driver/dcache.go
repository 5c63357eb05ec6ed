package driver

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v5"

	"fire/internal/token"
)

// diskCacheSchemaVersion меняется вместе с DiskPayload или token.Token.
const diskCacheSchemaVersion uint16 = 2

// DiskCache keeps lexed token streams on disk, keyed by content digest.
// Entries are msgpack inside a snappy stream, one file per digest under
// tokens/<first two hex digits>/. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type DiskPayload struct {
	Schema uint16
	Path   string
	Tokens []token.Token
}

// OpenDiskCache opens $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) tokensDir() string { return filepath.Join(c.dir, "tokens") }

func (c *DiskCache) pathFor(key Digest) string {
	hex := key.String()
	return filepath.Join(c.tokensDir(), hex[:2], hex[2:]+".mp")
}

// Put stamps payload with the current schema and replaces the entry atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = diskCacheSchemaVersion
	return writeAtomic(c.pathFor(key), func(w io.Writer) error {
		zw := snappy.NewBufferedWriter(w)
		if err := msgpack.NewEncoder(zw).Encode(payload); err != nil {
			return err
		}
		return zw.Close()
	})
}

// Get fills out on a hit. Entries from another schema are misses, not errors.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(snappy.NewReader(f)).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		*out = DiskPayload{}
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry; the cache stays usable.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.tokensDir())
}

// writeAtomic пишет во временный файл рядом с path и переименовывает его.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

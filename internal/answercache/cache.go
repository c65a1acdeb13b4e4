// Package answercache keeps computed answers on disk, keyed by the input
// digest, the day and the part.
package answercache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion must change whenever Entry changes shape.
const schemaVersion uint16 = 1

// Key identifies one answer.
type Key [32]byte

// KeyFor derives the key for (input digest, day, part).
func KeyFor(input [32]byte, day int, part uint8) Key {
	h := sha256.New()
	_, _ = h.Write(input[:])
	var buf [9]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(day))
	buf[8] = part
	_, _ = h.Write(buf[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// Entry is what gets stored.
type Entry struct {
	Schema   uint16
	Day      int
	Part     uint8
	Answer   int64
	Solved   time.Time
	Duration time.Duration
}

// Cache is a directory of msgpack files. A nil *Cache is valid and
// behaves as an always-empty cache. Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// DefaultDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed and returns a cache rooted there.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Key) string {
	return filepath.Join(c.dir, "answers", key.String()+".mp")
}

// Put stores e under key, replacing any previous entry atomically.
func (c *Cache) Put(key Key, e Entry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	e.Schema = schemaVersion
	if err := msgpack.NewEncoder(f).Encode(&e); err != nil {
		f.Close()
		return fmt.Errorf("encode answer %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get loads the entry for key. A missing entry or one written with an
// older schema reports ok=false without error.
func (c *Cache) Get(key Key) (Entry, bool, error) {
	if c == nil {
		return Entry{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	defer f.Close()

	var e Entry
	if err := msgpack.NewDecoder(f).Decode(&e); err != nil {
		return Entry{}, false, fmt.Errorf("decode answer %s: %w", key, err)
	}
	if e.Schema != schemaVersion {
		return Entry{}, false, nil
	}
	return e, true, nil
}

// DropAll removes every cached answer.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельный процесс не увидел полупустой каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
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

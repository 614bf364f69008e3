package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"rlc/internal/source"
	"rlc/internal/token"
)

// Current schema version - increment when the payload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит потоки токенов по sha256 содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskToken is a token without its file: FileIDs differ between runs.
type diskToken struct {
	Kind  token.Kind `msgpack:"k"`
	Start uint32     `msgpack:"s"`
	End   uint32     `msgpack:"e"`
	Text  string     `msgpack:"t,omitempty"`
}

// DiskPayload is the on-disk record of one tokenised file.
type DiskPayload struct {
	Schema uint16      `msgpack:"schema"`
	Tokens []diskToken `msgpack:"tokens"`
}

// OpenDiskCache initializes a cache under $XDG_CACHE_HOME/app, falling back
// to the user cache directory.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		base = dir
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// PutTokens writes the token stream of a file with content hash key.
func (c *DiskCache) PutTokens(key [32]byte, toks []token.Token) error {
	if c == nil {
		return nil
	}
	payload := DiskPayload{Schema: diskCacheSchemaVersion, Tokens: make([]diskToken, len(toks))}
	for i, tok := range toks {
		payload.Tokens[i] = diskToken{Kind: tok.Kind, Start: tok.Span.Start, End: tok.Span.End, Text: tok.Text}
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
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// GetTokens reads the token stream stored for key and binds it to file.
// A payload of another schema is a miss.
func (c *DiskCache) GetTokens(key [32]byte, file source.FileID) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close() //nolint:errcheck

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion || len(payload.Tokens) == 0 {
		return nil, false, nil
	}
	toks := make([]token.Token, len(payload.Tokens))
	for i, dt := range payload.Tokens {
		toks[i] = token.Token{Kind: dt.Kind, Span: source.Span{File: file, Start: dt.Start, End: dt.End}, Text: dt.Text}
	}
	if toks[len(toks)-1].Kind != token.EOF {
		return nil, false, nil
	}
	return toks, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
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

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

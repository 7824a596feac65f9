package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/bcpeinhardt/hcl/internal/source"
	"github.com/bcpeinhardt/hcl/internal/token"
)

// Current schema version - increment when tokenPayload format changes
const tokenCacheSchemaVersion uint16 = 1

// TokenCache хранит готовые потоки токенов по SHA-256 содержимого файла.
// Snapshot-тулинг и pretty-принтеры пересканируют одни и те же файлы;
// неизменённый файл читается из кэша.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

type tokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Path   string
	Hash   [32]byte
	Tokens []cachedToken
}

// OpenTokenCache initializes a cache at the standard user location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// NewTokenCache returns a cache rooted at an explicit directory.
func NewTokenCache(dir string) *TokenCache {
	return &TokenCache{dir: dir}
}

func (c *TokenCache) pathFor(hash [32]byte) string {
	hexKey := hex.EncodeToString(hash[:])
	// подкаталог "toks" — для удобства очистки
	return filepath.Join(c.dir, "toks", hexKey+".mp")
}

// Put serializes the token stream for a file and writes it atomically.
func (c *TokenCache) Put(file *source.File, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   file.Path,
		Hash:   file.Hash,
		Tokens: make([]cachedToken, len(tokens)),
	}
	for i, t := range tokens {
		payload.Tokens[i] = cachedToken{
			Kind:  uint8(t.Kind),
			Start: t.Span.Start,
			End:   t.Span.End,
			Text:  t.Text,
		}
	}

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a cached token stream for a file. Spans are rebound to the
// current FileID: кэш не хранит идентификаторы FileSet.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(file.Hash)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != tokenCacheSchemaVersion || payload.Hash != file.Hash {
		return nil, false, nil
	}

	tokens := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text: ct.Text,
		}
	}
	return tokens, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "toks"))
}

// Package driver orchestrates scanning: file loading, diagnostics
// collection, caching, and the all-or-nothing result policy.
package driver

import (
	"fmt"

	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/scanner"
	"github.com/bcpeinhardt/hcl/internal/source"
	"github.com/bcpeinhardt/hcl/internal/token"
)

const defaultMaxDiagnostics = 100

// ScanOptions configures a scan run.
type ScanOptions struct {
	// MaxDiagnostics bounds the diagnostic bag; <= 0 means the default.
	MaxDiagnostics int
	// Interner, when set, collects identifier lexemes. Не потокобезопасен:
	// для параллельного прогона ScanFiles не используется.
	Interner *source.Interner
	// Cache, when set, serves and stores token streams by content hash.
	Cache *TokenCache
}

// ScanResult holds everything a caller needs to render tokens and
// diagnostics. Tokens is nil when the scan failed.
type ScanResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token
	Bag      *diag.Bag
	CacheHit bool
}

// ScanError is the single fatal failure of a scan call: an unterminated
// block comment or an unrecognized character.
type ScanError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// ScanFile loads a file from disk and scans it.
func ScanFile(path string, opts ScanOptions) (*ScanResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scanInto(fs, fileID, opts)
}

// ScanSource scans in-memory source under a virtual file name. Это и есть
// операция scan: все токены в порядке появления либо одна фатальная ошибка
// и ноль токенов.
func ScanSource(name string, src []byte, opts ScanOptions) (*ScanResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return scanInto(fs, fileID, opts)
}

func scanInto(fs *source.FileSet, fileID source.FileID, opts ScanOptions) (*ScanResult, error) {
	file := fs.Get(fileID)
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiag)
	res := &ScanResult{FileSet: fs, File: file, Bag: bag}

	if opts.Cache != nil {
		if toks, ok, err := opts.Cache.Get(file); err == nil && ok {
			res.Tokens = toks
			res.CacheHit = true
			return res, nil
		}
	}

	sc := scanner.New(file, scanner.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Interner: opts.Interner,
	})

	var tokens []token.Token
	for {
		tok := sc.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Invalid {
			// Любая фатальная ошибка отменяет весь прогон:
			// частичных результатов нет.
			return res, scanErrorFrom(bag, tok)
		}
		tokens = append(tokens, tok)
	}

	res.Tokens = tokens
	if opts.Cache != nil {
		// best effort: промах записи кэша не ломает скан
		_ = opts.Cache.Put(file, tokens)
	}
	return res, nil
}

func scanErrorFrom(bag *diag.Bag, tok token.Token) *ScanError {
	if d, ok := bag.FirstError(); ok {
		return &ScanError{Code: d.Code, Span: d.Primary, Msg: d.Message}
	}
	return &ScanError{Code: diag.UnknownCode, Span: tok.Span, Msg: "scan failed"}
}

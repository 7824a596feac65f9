package scanner

import (
	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/source"
)

// Options configures a Scanner.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil — errors are then
	// dropped, but the scanner still emits Invalid tokens.
	Reporter diag.Reporter
	// Interner, when set, interns every identifier lexeme.
	Interner *source.Interner
}

func (sc *Scanner) errLex(code diag.Code, sp source.Span, msg string) {
	if sc.opts.Reporter != nil {
		sc.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

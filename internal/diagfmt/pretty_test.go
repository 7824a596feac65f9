package diagfmt

import (
	"strings"
	"testing"

	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/source"
)

func TestPretty_HeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hcl", []byte("foo @ bar"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar,
		source.Span{File: id, Start: 4, End: 5}, "unrecognized character"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	out := sb.String()
	if !strings.Contains(out, "test.hcl:1:5: ERROR LEX1001: unrecognized character") {
		t.Errorf("header missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "foo @ bar") {
		t.Errorf("context line missing:\n%s", out)
	}
	// каретка указывает на колонку 5
	if !strings.Contains(out, "|     ^") {
		t.Errorf("caret missing or misplaced:\n%s", out)
	}
}

func TestPretty_MultiByteSpanUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hcl", []byte("/* oops"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedBlockComment,
		source.Span{File: id, Start: 0, End: 7}, "unterminated block comment"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	if !strings.Contains(sb.String(), "^~~~~~~") {
		t.Errorf("underline must cover the whole span:\n%s", sb.String())
	}
}

func TestPretty_ShowNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.hcl", []byte("a\nb"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar,
		source.Span{File: id, Start: 0, End: 1}, "primary").
		WithNote(source.Span{File: id, Start: 2, End: 3}, "related"))

	var with, without strings.Builder
	Pretty(&with, bag, fs, PrettyOpts{ShowNotes: true})
	Pretty(&without, bag, fs, PrettyOpts{})

	if !strings.Contains(with.String(), "NOTE") || !strings.Contains(with.String(), "related") {
		t.Errorf("notes missing with ShowNotes:\n%s", with.String())
	}
	if strings.Contains(without.String(), "related") {
		t.Errorf("notes printed without ShowNotes:\n%s", without.String())
	}
}

func TestPathMode_FormatMode(t *testing.T) {
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAuto, "auto"},
		{PathModeAbsolute, "absolute"},
		{PathModeRelative, "relative"},
		{PathModeBasename, "basename"},
	}
	for _, tt := range tests {
		if got := tt.mode.formatMode(); got != tt.want {
			t.Errorf("formatMode(%d) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

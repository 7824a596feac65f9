package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_AddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hcl", []byte("a = b"))

	f := fs.Get(id)
	if f.Path != "test.hcl" {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual flag not set")
	}
	if string(f.Content) != "a = b" {
		t.Errorf("Content = %q", f.Content)
	}
	if fs.Len() != 1 {
		t.Errorf("Len = %d", fs.Len())
	}
}

func TestFileSet_AddAssignsDistinctIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.hcl", []byte("a"))
	b := fs.AddVirtual("b.hcl", []byte("b"))
	if a == b {
		t.Fatalf("distinct files got the same ID")
	}
	// повторная регистрация того же пути даёт новый ID, индекс указывает на последний
	a2 := fs.AddVirtual("a.hcl", []byte("a v2"))
	if a2 == a {
		t.Fatalf("re-adding a path must mint a new ID")
	}
	got, ok := fs.GetByPath("a.hcl")
	if !ok || string(got.Content) != "a v2" {
		t.Fatalf("GetByPath must resolve to the latest version")
	}
}

func TestFileSet_HashDiffersPerContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.hcl", []byte("foo")))
	b := fs.Get(fs.AddVirtual("b.hcl", []byte("bar")))
	if a.Hash == b.Hash {
		t.Fatalf("different contents must hash differently")
	}
}

func TestFileSet_LoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.hcl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFkey"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "key" {
		t.Errorf("BOM not stripped: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("FileHadBOM flag not set")
	}
}

func TestFileSet_LoadKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.hcl")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// офсеты токенов индексируют исходные байты, поэтому '\r' сохраняется
	if got := string(fs.Get(id).Content); got != "a\r\nb" {
		t.Errorf("line endings must be kept verbatim, got %q", got)
	}
}

func TestFileSet_LoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.hcl")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.hcl", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(off=%d) = %d:%d, want %d:%d",
				tt.off, start.Line, start.Col, tt.want.Line, tt.want.Col)
		}
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("g.hcl", []byte("first\nsecond\nthird")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFile_FormatPath(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("sub/dir/test.hcl", []byte("")))

	if got := f.FormatPath("basename", ""); got != "test.hcl" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "sub/dir/test.hcl" {
		t.Errorf("auto = %q", got)
	}
	if got := f.FormatPath("", ""); got != "sub/dir/test.hcl" {
		t.Errorf("default = %q", got)
	}
}

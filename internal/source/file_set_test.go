package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("api.fsd", []byte("service A{}"), 0)
	id2 := fs.Add("api.fsd", []byte("service B{}"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("api.fsd")
	if !ok || latest != id2 {
		t.Errorf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "service A{}" {
		t.Errorf("unexpected first content %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.fsd", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\nc\r"))
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\nc\r" {
		t.Errorf("unexpected normalized content %q", string(normalized))
	}

	same, changed := normalizeCRLF([]byte("a\nb"))
	if changed || string(same) != "a\nb" {
		t.Errorf("expected untouched content, got %q (changed=%v)", string(same), changed)
	}
}

func TestBOMRemoval(t *testing.T) {
	withoutBOM, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !hadBOM {
		t.Error("expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("unexpected content %q", string(withoutBOM))
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fsd", []byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}}, // сам перевод строки принадлежит первой строке
		{3, LineCol{Line: 2, Col: 1}},
		{5, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: expected %+v, got %+v", tt.off, tt.want, start)
		}
	}
}

func TestFilePositionCountsRunes(t *testing.T) {
	f := NewTextFile(NewNamedText("TestApi.fsd", " \n\tα x"))

	tests := []struct {
		off  uint32
		want Position
	}{
		{0, NewPosition("TestApi.fsd", 1, 1)},
		{2, NewPosition("TestApi.fsd", 2, 1)},
		{3, NewPosition("TestApi.fsd", 2, 2)},
		{6, NewPosition("TestApi.fsd", 2, 4)}, // α занимает 2 байта, но одну колонку
		{7, NewPosition("TestApi.fsd", 2, 5)},
		{100, NewPosition("TestApi.fsd", 2, 5)},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("offset %d: expected %v, got %v", tt.off, tt.want, got)
		}
	}
}

func TestNewTextFileKeepsName(t *testing.T) {
	f := NewTextFile(NewNamedText("", "x"))
	if got := f.Position(0).SourceName; got != "" {
		t.Errorf("expected empty source name, got %q", got)
	}
}

func TestGetLine(t *testing.T) {
	f := NewFile("x.fsd", []byte("first\nsecond\nthird"))
	if got := f.GetLine(2); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
	if got := f.GetLine(3); got != "third" {
		t.Errorf("expected 'third', got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("expected empty line, got %q", got)
	}
}

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.fsd")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("expected normalized content, got %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", file.Flags)
	}
}

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	inside := filepath.Join(base, "nested", "api.fsd")
	outside := filepath.Join(tmp, "other", "api.fsd")

	got, err := RelativePath(inside, base)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if got != "nested/api.fsd" {
		t.Errorf("expected relative path, got %q", got)
	}

	got, err = RelativePath(outside, base)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if got != normalizePath(outside) {
		t.Errorf("expected absolute fallback %q, got %q", normalizePath(outside), got)
	}
}

package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/augtree/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err.Error())
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "augtree")
	defer teardown()
	//
	text := strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n", 200)
	cord, err := Load(cords.NewStore(), writeFile(t, text), 0)
	if err != nil {
		t.Fatal(err.Error())
	}
	if cord.IsVoid() {
		t.Fatalf("cord is void, should not be")
	}
	if cord.String() != text || cord.LineCount() != 200 {
		t.Errorf("loaded cord differs from file content")
	}
	if err := cord.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadKeepsRunes(t *testing.T) {
	text := strings.Repeat("äöü日本", 100)
	for _, size := range []int64{4, 5, 7, 64} {
		cord, err := Load(cords.NewStore(), writeFile(t, text), size)
		if err != nil {
			t.Fatalf("fragment size %d: %v", size, err)
		}
		if cord.String() != text {
			t.Errorf("fragment size %d: text differs", size)
		}
	}
}

func TestLoadEmptyAndMissing(t *testing.T) {
	cord, err := Load(cords.NewStore(), writeFile(t, ""), 0)
	if err != nil || !cord.IsVoid() {
		t.Errorf("expected empty file to load as void cord, got %q, %v", cord, err)
	}
	if _, err = Load(cords.NewStore(), filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err = Load(cords.NewStore(), t.TempDir(), 0); err == nil {
		t.Errorf("expected error for directory")
	}
	if _, err = Load(cords.NewStore(), writeFile(t, "ok\xffno"), 0); err == nil {
		t.Errorf("expected error for invalid UTF-8")
	}
}

func TestCompleteRunes(t *testing.T) {
	b := []byte("aä")
	if n := completeRunes(b); n != 3 {
		t.Errorf("expected complete text, have %d", n)
	}
	if n := completeRunes(b[:2]); n != 1 {
		t.Errorf("expected cut before incomplete 'ä', have %d", n)
	}
}

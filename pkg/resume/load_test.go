package resume

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFile_Seed(t *testing.T) {
	got, err := LoadFile(filepath.Join("testdata", "seed.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Personal.Name != "Ada Lovelace" || got.Personal.Location != "London" {
		t.Fatalf("unexpected personal info %#v", got.Personal)
	}
	if !strings.Contains(got.Personal.Summary, "<strong>Analytical Engine</strong>") {
		t.Fatalf("expected rich summary, got %q", got.Personal.Summary)
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("personal:\n  salary: 10\n"))
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(Resume{}, got); diff != "" {
		t.Fatalf("expected zero resume (-want +got):\n%s", diff)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := Resume{Personal: PersonalInfo{Name: "Grace", Summary: "<p>COBOL</p>"}}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

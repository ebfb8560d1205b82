package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-resumegen/pkg/model"
	pkgopenapi "github.com/goliatone/go-resumegen/pkg/openapi"
	pkgresume "github.com/goliatone/go-resumegen/pkg/resume"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.LoadFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// SampleResume returns the resume used across renderer and component tests.
func SampleResume() pkgresume.Resume {
	return pkgresume.Resume{
		Personal: pkgresume.PersonalInfo{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 20 0000 0000",
			Location: "London, UK",
			Link:     "https://example.com/ada",
			Summary:  "<p>Analyst of the <strong>Analytical Engine</strong></p><ul><li>Notes &amp; programs</li></ul>",
		},
	}
}

// NewStore returns a memory store seeded with r.
func NewStore(t *testing.T, r pkgresume.Resume, options ...pkgresume.StoreOption) *pkgresume.MemoryStore {
	t.Helper()
	return pkgresume.NewMemoryStore(append([]pkgresume.StoreOption{pkgresume.WithInitial(r)}, options...)...)
}

// MustLoadResume decodes a YAML resume fixture.
func MustLoadResume(t *testing.T, path string) pkgresume.Resume {
	t.Helper()

	r, err := pkgresume.LoadFile(path)
	if err != nil {
		t.Fatalf("load resume: %v", err)
	}
	return r
}

// MustLoadFormModel loads a JSON golden file into a FormModel structure.
func MustLoadFormModel(t *testing.T, path string) pkgmodel.FormModel {
	t.Helper()

	form, err := LoadFormModel(path)
	if err != nil {
		t.Fatalf("load form model: %v", err)
	}
	return form
}

// LoadFormModel reads a JSON fixture into a FormModel, returning an error for
// callers managing setup outside of *testing.T.
func LoadFormModel(path string) (pkgmodel.FormModel, error) {
	if path == "" {
		return pkgmodel.FormModel{}, errors.New("testsupport: form model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.FormModel{}, fmt.Errorf("testsupport: read form model: %w", err)
	}
	var out pkgmodel.FormModel
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.FormModel{}, fmt.Errorf("testsupport: unmarshal form model: %w", err)
	}
	return out, nil
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, append(payload, '\n'))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

// CompareJSONGolden decodes both payloads and diffs the resulting values so
// formatting differences do not matter.
func CompareJSONGolden(t *testing.T, path string, got []byte) {
	t.Helper()

	if WriteMaybeGolden(t, path, got) {
		return
	}
	var want, have any
	if err := json.Unmarshal(MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(got, &have); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

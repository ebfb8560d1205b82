package openapi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceKind tells how a document was loaded.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindFS       SourceKind = "fs"
	SourceKindEmbedded SourceKind = "embedded"
)

// Source names the origin of a document for error messages.
type Source struct {
	Kind SourceKind
	Name string
}

func (s Source) String() string {
	if s.Kind == SourceKindEmbedded {
		return "embedded:" + s.Name
	}
	return s.Name
}

// SourceFromFile returns the Source for a path on disk.
func SourceFromFile(path string) Source {
	return Source{Kind: SourceKindFile, Name: filepath.Clean(path)}
}

// Document is a raw OpenAPI payload plus its origin. The builder parses it
// with kin-openapi on demand.
type Document struct {
	source Source
	raw    []byte
}

func NewDocument(src Source, raw []byte) (Document, error) {
	if src.Name == "" {
		return Document{}, errors.New("openapi: document source needs a name")
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("openapi: %s is empty", src)
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument is NewDocument for fixtures known to be valid.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source { return d.source }

// Raw returns a copy of the payload.
func (d Document) Raw() []byte { return append([]byte(nil), d.raw...) }

func (d Document) Location() string { return d.source.String() }

// LoadFile reads a document from disk.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return NewDocument(SourceFromFile(path), raw)
}

// LoadFS reads name from files and tags the document with kind.
func LoadFS(files fs.FS, name string, kind SourceKind) (Document, error) {
	if files == nil {
		return Document{}, errors.New("openapi: nil file system")
	}
	raw, err := fs.ReadFile(files, name)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return NewDocument(Source{Kind: kind, Name: name}, raw)
}

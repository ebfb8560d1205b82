package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-resumegen/pkg/openapi"
)

func main() {
	var (
		schemaPath = flag.String("schema", "", "OpenAPI document path (embedded personal info document when empty)")
		schemaName = flag.String("name", openapi.PersonalInfoSchema, "component schema to snapshot")
		outputPath = flag.String("output", "pkg/openapi/testdata/personal_info_form.golden.json", "output path for the serialized form model")
	)
	flag.Parse()

	if err := run(context.Background(), *schemaPath, *schemaName, *outputPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Form model snapshot written to %s\n", *outputPath)
}

func run(ctx context.Context, schemaPath, schemaName, outputPath string) error {
	doc := openapi.PersonalInfoDocument()
	if schemaPath != "" {
		loaded, err := openapi.LoadFile(schemaPath)
		if err != nil {
			return err
		}
		doc = loaded
	}

	form, err := openapi.NewBuilder().Build(ctx, doc, schemaName)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal form model: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(outputPath, append(payload, '\n'), 0o644)
}

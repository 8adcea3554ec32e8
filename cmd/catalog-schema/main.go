// Command catalog-schema emits the JSON schema that editors use to
// validate config/catalog.json overlays.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"starbelt/server/internal/catalog"
)

func main() {
	outPath := flag.String("out", "", "path to write the JSON schema")
	title := flag.String("title", "Starbelt Catalog Overlay", "schema title")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	reflector := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := reflector.Reflect(new(catalog.FileDocument))
	schema.Title = *title
	schema.Description = "Validates designer-authored ore and equipment entries in config/catalog.json"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode schema: %v\n", err)
		os.Exit(1)
	}

	if err := writeAtomic(*outPath, append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

// writeAtomic lands the file via a temp sibling so a crash mid-write
// never leaves a truncated schema behind.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

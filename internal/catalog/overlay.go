package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileDocument models the designer-authored catalog overlay file. Entries
// replace or extend the built-in catalogs at startup; the schema generator
// reflects over this struct to produce a machine-readable document for
// validation and editor tooling.
type FileDocument struct {
	Ores      []OreKindParams             `json:"ores,omitempty" jsonschema:"title=Ore kinds,description=Ore kinds added to or replacing the built-in table"`
	Equipment []MiningEquipmentKindParams `json:"equipment,omitempty" jsonschema:"title=Equipment kinds,description=Equipment kinds added to or replacing the built-in table"`
}

// LoadOverlay merges a designer catalog file into the built-in tables.
// A missing file is not an error; a malformed one is.
func LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read catalog overlay: %w", err)
	}

	var doc FileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog overlay %s: %w", path, err)
	}

	for _, params := range doc.Ores {
		kind, err := NewOreKind(params)
		if err != nil {
			return fmt.Errorf("catalog overlay %s: %w", path, err)
		}
		oreCatalog[kind.ID] = kind
	}
	for _, params := range doc.Equipment {
		kind, err := NewMiningEquipmentKind(params)
		if err != nil {
			return fmt.Errorf("catalog overlay %s: %w", path, err)
		}
		equipmentCatalog[kind.ID] = kind
	}
	return nil
}

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

//go:embed menu.yaml
var defaultMenu []byte

// menuFile is the document layout of a menu file.
type menuFile struct {
	Items []MenuItem `json:"items" yaml:"items"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in menu.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultMenu)
	})
	return defaultCatalog, defaultErr
}

// Load reads and validates a YAML menu file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML menu and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc menuFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse menu YAML: %w", err)
	}
	return New(doc.Items)
}

// New validates items and builds a Catalog. Names, ids and category keys
// are trimmed and NFC-normalized first.
func New(items []MenuItem) (*Catalog, error) {
	normalized := make([]MenuItem, len(items))
	for i, m := range items {
		normalized[i] = MenuItem{
			ID:         normalize(m.ID),
			Name:       normalize(m.Name),
			Price:      m.Price,
			Image:      normalize(m.Image),
			Categories: make([]string, 0, len(m.Categories)),
		}
		for _, cat := range m.Categories {
			normalized[i].Categories = append(normalized[i].Categories, normalize(cat))
		}
	}

	if err := validate(normalized); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(normalized))
	for i, m := range normalized {
		if prev, dup := byID[m.ID]; dup {
			return nil, fmt.Errorf("invalid menu: items %d and %d share id %q", prev, i, m.ID)
		}
		byID[m.ID] = i
	}

	return &Catalog{items: normalized, byID: byID}, nil
}

// validate unifies the items with the CUE schema and requires a concrete,
// error-free result.
func validate(items []MenuItem) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile menu schema: %w", err)
	}

	data := ctx.Encode(menuFile{Items: items})
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}

	v := schema.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid menu: %s", cueerrors.Details(err, nil))
	}
	return nil
}

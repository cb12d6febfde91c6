package frames

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/families.yaml
var familiesYAML []byte

// Family is a Series-7 device family. Its value is the prjxray database
// directory name.
type Family string

// Supported families
const (
	Artix7   Family = "artix7"
	Kintex7  Family = "kintex7"
	Spartan7 Family = "spartan7"
	Zynq7    Family = "zynq7"
)

var knownFamilies = map[Family]bool{
	Artix7:   true,
	Kintex7:  true,
	Spartan7: true,
	Zynq7:    true,
}

// FamilyEntry maps a part name prefix to a family.
type FamilyEntry struct {
	Prefix      string `yaml:"prefix"`
	Family      Family `yaml:"family"`
	Description string `yaml:"description"`
}

// Catalog is the ordered family lookup table.
type Catalog struct {
	Entries []FamilyEntry `yaml:"families"`
}

var (
	globalCatalog     *Catalog
	globalCatalogOnce sync.Once
	globalCatalogErr  error
)

// LoadCatalog returns the embedded family catalog. The catalog is parsed
// once.
func LoadCatalog() (*Catalog, error) {
	globalCatalogOnce.Do(func() {
		globalCatalog, globalCatalogErr = ParseCatalog(familiesYAML)
	})
	return globalCatalog, globalCatalogErr
}

// ParseCatalog parses and validates a family catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse family catalog: %w", err)
	}
	if len(c.Entries) == 0 {
		return nil, fmt.Errorf("family catalog is empty")
	}
	for i, e := range c.Entries {
		if e.Prefix == "" {
			return nil, fmt.Errorf("family catalog entry %d: empty prefix", i)
		}
		if !knownFamilies[e.Family] {
			return nil, fmt.Errorf("family catalog entry %d: unknown family %q", i, e.Family)
		}
	}
	return &c, nil
}

// Lookup returns the family whose prefix occurs in part.
func (c *Catalog) Lookup(part string) (Family, error) {
	lower := strings.ToLower(part)
	for _, e := range c.Entries {
		if strings.Contains(lower, e.Prefix) {
			return e.Family, nil
		}
	}
	return "", &UnsupportedDeviceError{Part: part, Prefixes: c.Prefixes()}
}

// Prefixes returns the family prefixes in catalog order.
func (c *Catalog) Prefixes() []string {
	prefixes := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		prefixes = append(prefixes, e.Prefix)
	}
	return prefixes
}

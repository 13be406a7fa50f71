package item

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMissingName marks a catalog entry without a name.
var ErrMissingName = errors.New("item: catalog entry missing name")

// catalog is the YAML document shape DecodeCatalog accepts:
//
//	items:
//	  - name: Iron Sword
//	    rarity: common
type catalog struct {
	Items []Item `yaml:"items"`
}

// DecodeCatalog reads a YAML item catalog. Every entry must carry a name,
// and any rarity given must name a known tier; an entry without a rarity
// key defaults to common. Entry order is preserved. An empty document
// decodes to no items.
func DecodeCatalog(r io.Reader) ([]Item, error) {
	var c catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("item: decoding catalog: %w", err)
	}

	for i, it := range c.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("item: catalog entry %d: %w", i, ErrMissingName)
		}
	}

	return c.Items, nil
}

// MarshalYAML encodes the tier as its lowercase name.
func (r Rarity) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML decodes a tier from its name, ignoring case.
func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseRarity(s)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

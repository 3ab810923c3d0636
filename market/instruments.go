// market/instruments.go
package market

import (
	"fmt"
	"math"
	"sort"
)

// InstrumentSpec is the static reference data needed to size a position.
type InstrumentSpec struct {
	Name                   string  `json:"name" yaml:"name"`
	PipValuePerStandardLot float64 `json:"pip_value_per_standard_lot" yaml:"pip_value_per_standard_lot"`

	// Names holds translated display names keyed by language code ("fr").
	Names map[string]string `json:"names,omitempty" yaml:"names,omitempty"`
}

// DisplayName returns the name for lang, or Name when there is no translation.
func (s InstrumentSpec) DisplayName(lang string) string {
	if n := s.Names[lang]; n != "" {
		return n
	}
	return s.Name
}

// Catalog maps instrument keys ("XAUUSD") to their spec. Treat a
// Catalog as read-only once it has been handed to a caller.
type Catalog map[string]InstrumentSpec

// DefaultCatalog returns the built-in instruments. Each call returns a
// fresh map so callers can't mutate the defaults.
func DefaultCatalog() Catalog {
	return Catalog{
		"XAUUSD": {
			Name:                   "Gold",
			PipValuePerStandardLot: 10,
			Names:                  map[string]string{"fr": "Or"},
		},
		"BTCUSD": {
			Name:                   "Bitcoin",
			PipValuePerStandardLot: 1,
		},
	}
}

// Lookup returns the spec for key.
func (c Catalog) Lookup(key string) (InstrumentSpec, bool) {
	spec, ok := c[key]
	return spec, ok
}

// Keys returns the instrument keys in lexical order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate reports the first instrument with a missing name or an
// unusable pip value.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("instrument catalog is empty")
	}
	for _, k := range c.Keys() {
		spec := c[k]
		if k == "" {
			return fmt.Errorf("instrument key must not be empty")
		}
		if spec.Name == "" {
			return fmt.Errorf("instrument %s: name is required", k)
		}
		pv := spec.PipValuePerStandardLot
		if math.IsNaN(pv) || math.IsInf(pv, 0) || pv <= 0 {
			return fmt.Errorf("instrument %s: pip_value_per_standard_lot must be positive", k)
		}
	}
	return nil
}

// Clone returns a copy that can be modified independently.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		if v.Names != nil {
			names := make(map[string]string, len(v.Names))
			for lang, n := range v.Names {
				names[lang] = n
			}
			v.Names = names
		}
		out[k] = v
	}
	return out
}

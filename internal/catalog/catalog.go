// Package catalog holds the static parameter-range tables the validation
// engine reads. Tables are built once at construction and never mutated, so
// a single Catalog is safe for concurrent use.
package catalog

import (
	"soilsense/domain/soil"
)

// fallbackRange is returned for parameter names the catalog does not know.
// The engine never fails a lookup.
var fallbackRange = soil.ParameterRange{
	Absolute: soil.Band{Min: 0, Max: 1000},
	Typical:  soil.Band{Min: 0, Max: 100},
	Optimal:  soil.Band{Min: 10, Max: 50},
}

// Catalog resolves parameter ranges, consulting regional overrides before
// the global defaults.
type Catalog struct {
	global map[string]soil.ParameterRange
	// regional maps state -> parameter name -> override range. Seeded empty;
	// the lookup path is live so state-specific calibrations can be added
	// without touching the validators.
	regional map[string]map[string]soil.ParameterRange
}

// New builds the catalog with the built-in agronomic ranges.
func New() *Catalog {
	return &Catalog{
		global: map[string]soil.ParameterRange{
			soil.ParamPH: {
				Absolute: soil.Band{Min: 3, Max: 11},
				Typical:  soil.Band{Min: 4.5, Max: 8.5},
				Optimal:  soil.Band{Min: 6.0, Max: 7.5},
			},
			soil.ParamNitrogen: { // kg/ha
				Absolute: soil.Band{Min: 0, Max: 1000},
				Typical:  soil.Band{Min: 50, Max: 500},
				Optimal:  soil.Band{Min: 200, Max: 300},
			},
			soil.ParamPhosphorus: { // kg/ha
				Absolute: soil.Band{Min: 0, Max: 200},
				Typical:  soil.Band{Min: 5, Max: 100},
				Optimal:  soil.Band{Min: 20, Max: 40},
			},
			soil.ParamPotassium: { // kg/ha
				Absolute: soil.Band{Min: 0, Max: 800},
				Typical:  soil.Band{Min: 50, Max: 400},
				Optimal:  soil.Band{Min: 120, Max: 200},
			},
			soil.ParamOrganicCarbon: { // %
				Absolute: soil.Band{Min: 0, Max: 5.0},
				Typical:  soil.Band{Min: 0.2, Max: 2.0},
				Optimal:  soil.Band{Min: 0.5, Max: 1.5},
			},
			soil.ParamElectricalConductivity: { // dS/m
				Absolute: soil.Band{Min: 0, Max: 10.0},
				Typical:  soil.Band{Min: 0.1, Max: 4.0},
				Optimal:  soil.Band{Min: 0.2, Max: 0.8},
			},
			soil.ParamZinc: { // ppm
				Absolute: soil.Band{Min: 0, Max: 20},
				Typical:  soil.Band{Min: 0.2, Max: 10},
				Optimal:  soil.Band{Min: 1.0, Max: 3.0},
			},
			soil.ParamIron: { // ppm
				Absolute: soil.Band{Min: 0, Max: 100},
				Typical:  soil.Band{Min: 2, Max: 50},
				Optimal:  soil.Band{Min: 10, Max: 25},
			},
			soil.ParamManganese: { // ppm
				Absolute: soil.Band{Min: 0, Max: 50},
				Typical:  soil.Band{Min: 1, Max: 30},
				Optimal:  soil.Band{Min: 5, Max: 15},
			},
			soil.ParamCopper: { // ppm
				Absolute: soil.Band{Min: 0, Max: 10},
				Typical:  soil.Band{Min: 0.1, Max: 5},
				Optimal:  soil.Band{Min: 0.5, Max: 2.0},
			},
			soil.ParamBoron: { // ppm
				Absolute: soil.Band{Min: 0, Max: 5},
				Typical:  soil.Band{Min: 0.1, Max: 2},
				Optimal:  soil.Band{Min: 0.5, Max: 1.0},
			},
			soil.ParamSulfur: { // ppm
				Absolute: soil.Band{Min: 0, Max: 100},
				Typical:  soil.Band{Min: 2, Max: 50},
				Optimal:  soil.Band{Min: 10, Max: 20},
			},
		},
		regional: map[string]map[string]soil.ParameterRange{},
	}
}

// Ranges returns the range for a parameter display name, preferring a
// regional override when the options carry a registered state. Unknown
// names get the permissive fallback range.
func (c *Catalog) Ranges(name string, opts *soil.ValidationOptions) soil.ParameterRange {
	if opts != nil && opts.Location != nil {
		if byParam, ok := c.regional[opts.Location.State]; ok {
			if r, ok := byParam[name]; ok {
				return r
			}
		}
	}
	if r, ok := c.global[name]; ok {
		return r
	}
	return fallbackRange
}

// Known reports whether the catalog has a built-in range for the name.
func (c *Catalog) Known(name string) bool {
	_, ok := c.global[name]
	return ok
}

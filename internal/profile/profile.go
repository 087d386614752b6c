// Copyright Martin Halsall, 2026. All rights reserved.

// Package profile manages the registry of vendor profiles: the built-in
// supplier definitions plus any user-defined profiles loaded from a YAML file.
package profile

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

// builtins are the supplier profiles shipped with the tool. Item patterns
// match the supplier's item code shape at the start of a line; the excludes
// drop footer lines (phone numbers, carriage item codes) that would
// otherwise match.
var builtins = []types.VendorProfile{
	{
		Name:           "Screwfix",
		DateFormat:     "DD/MM/YYYY",
		ItemPattern:    `^\d{3}.{2} `,
		Excludes:       []string{"03330 112 999"},
		NameOffset:     -8,
		UnitsOffset:    -8,
		UnitCostOffset: -7,
	},
	{
		Name:           "Toolstation",
		DateFormat:     "YYYY-MM-DD",
		ItemPattern:    `^\d{5} `,
		Excludes:       []string{"00006", "00037"},
		NameOffset:     -1,
		UnitsOffset:    -1,
		UnitCostOffset: 0,
	},
}

// Registry maps upper-cased profile names to vendor profiles.
type Registry map[string]types.VendorProfile

// Builtin returns a registry containing only the built-in profiles.
func Builtin() Registry {
	r := make(Registry, len(builtins))
	for _, p := range builtins {
		r[strings.ToUpper(p.Name)] = p
	}
	return r
}

// Load returns the built-in registry merged with profiles from the given
// YAML file. A missing or empty path is not an error; user-defined profiles
// override built-ins with the same name.
func Load(path string) (Registry, error) {
	r := Builtin()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("reading vendors file %s: %w", path, err)
	}

	var profiles []types.VendorProfile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing vendors file %s: %w", path, err)
	}

	for _, p := range profiles {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("vendors file %s: profile %q: %w", path, p.Name, err)
		}
		r[strings.ToUpper(p.Name)] = p
	}

	return r, nil
}

// Lookup finds a profile by name, case-insensitively.
func (r Registry) Lookup(name string) (types.VendorProfile, error) {
	p, ok := r[strings.ToUpper(name)]
	if !ok {
		return types.VendorProfile{}, fmt.Errorf("unknown vendor %q: choose one of %s", name, strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Names returns the registered profile names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dateFormatDelims are the delimiter characters accepted in a date format.
const dateFormatDelims = "/-."

// Validate checks that a profile is usable: a name, a compilable item
// pattern, a date format with a recognised delimiter and D/M/Y parts, and
// offsets that can land inside a line.
func Validate(p types.VendorProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if p.ItemPattern == "" {
		return fmt.Errorf("item_pattern must not be empty")
	}
	if _, err := regexp.Compile(p.ItemPattern); err != nil {
		return fmt.Errorf("invalid item_pattern: %w", err)
	}
	if !strings.ContainsAny(p.DateFormat, dateFormatDelims) {
		return fmt.Errorf("date_format %q has no '/', '-', or '.' delimiter", p.DateFormat)
	}
	for _, part := range []string{"D", "M", "Y"} {
		if !strings.Contains(p.DateFormat, part) {
			return fmt.Errorf("date_format %q is missing a %s part", p.DateFormat, part)
		}
	}
	for _, off := range []int{p.NameOffset, p.UnitsOffset, p.UnitCostOffset} {
		if off > 0 {
			return fmt.Errorf("offsets are relative to the last word and must be <= 0, got %d", off)
		}
	}
	return nil
}

// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mhalsall/tradeinvoice/pkg/types"
)

// extractItems scans the invoice lines for item rows. A line qualifies when
// it matches the profile's item pattern and contains none of the profile's
// exclude substrings. Item fields are then read backwards from the end of
// the line using the profile's word offsets.
func extractItems(p types.VendorProfile, lines []string) ([]types.Item, error) {
	re, err := regexp.Compile(p.ItemPattern)
	if err != nil {
		return nil, err
	}

	var items []types.Item
	for _, line := range lines {
		if !re.MatchString(line) || excluded(p.Excludes, line) {
			continue
		}

		words := strings.Split(line, " ")
		offsetStart := len(words) - 1

		if !offsetsInRange(p, offsetStart) {
			continue
		}

		item, ok := buildItem(p, words, offsetStart)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func excluded(excludes []string, line string) bool {
	for _, e := range excludes {
		if strings.Contains(line, e) {
			return true
		}
	}
	return false
}

// offsetsInRange is a good-faith validity check: since an item line has a
// known word count supplier by supplier, a matched line whose offsets fall
// outside the line is a false positive, not a real item.
func offsetsInRange(p types.VendorProfile, offsetStart int) bool {
	for _, off := range []int{p.NameOffset, p.UnitsOffset, p.UnitCostOffset} {
		idx := offsetStart + off
		if idx < 0 || idx > offsetStart {
			return false
		}
	}
	return true
}

// buildItem assembles an item from the words of a matched line. Lines whose
// units or unit cost fields do not parse, or whose cost carries no decimal
// point, are rejected.
func buildItem(p types.VendorProfile, words []string, offsetStart int) (types.Item, bool) {
	// The first word is the item code; the name runs from there to the
	// name offset.
	nameEnd := offsetStart + p.NameOffset
	if nameEnd < 1 {
		nameEnd = 1
	}
	name := strings.Join(words[1:nameEnd], " ")

	units, err := strconv.Atoi(words[offsetStart+p.UnitsOffset])
	if err != nil {
		return types.Item{}, false
	}

	cost, ok := normalizeCost(words[offsetStart+p.UnitCostOffset])
	if !ok {
		return types.Item{}, false
	}

	return types.Item{
		Name:     name,
		Units:    units,
		UnitCost: cost,
		Total:    float64(units) * cost,
	}, true
}

// normalizeCost enforces a strict *.00 cost shape: the fractional part is
// truncated to two digits and a value without a decimal point is rejected.
func normalizeCost(word string) (float64, bool) {
	parts := strings.SplitN(word, ".", 2)
	if len(parts) < 2 {
		return 0, false
	}

	frac := parts[1]
	if len(frac) > 2 {
		frac = frac[:2]
	}

	cost, err := strconv.ParseFloat(parts[0]+"."+frac, 64)
	if err != nil {
		return 0, false
	}
	return cost, true
}

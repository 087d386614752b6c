// Copyright Martin Halsall, 2026. All rights reserved.

package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// extractDate finds every date in the invoice text that matches the vendor's
// date format and returns the latest one. Invoices carry several dates
// (order, dispatch, due); the order date is consistently the most recent.
//
// Any format with D or DD, M or MM, and YY or YYYY parts is supported in any
// order, delimited by '/', '-', or '.'. Two-digit years are expanded with
// the current century.
func extractDate(format string, lines []string) (time.Time, error) {
	delimIdx := strings.IndexAny(format, dateDelims)
	if delimIdx < 0 {
		return time.Time{}, fmt.Errorf("date format %q has no '/', '-', or '.' delimiter", format)
	}
	delim := rune(format[delimIdx])

	// Transform the format string into a regex of digits and the escaped
	// delimiter. The match has the same length as the format, so the
	// format's part positions index directly into each match.
	var pattern strings.Builder
	for _, c := range format {
		if c == delim {
			pattern.WriteByte('\\')
			pattern.WriteRune(c)
		} else {
			pattern.WriteString(`\d`)
		}
	}
	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return time.Time{}, fmt.Errorf("compiling date pattern for format %q: %w", format, err)
	}

	iD := strings.Index(format, "D")
	iM := strings.Index(format, "M")
	iY := strings.Index(format, "Y")
	numD := strings.Count(format, "D")
	numM := strings.Count(format, "M")
	numY := strings.Count(format, "Y")

	// A YY-only year gets the start of the current year added back.
	yearPrefix := ""
	if numY == 2 {
		yearPrefix = strconv.Itoa(time.Now().Year())[0:2]
	}

	var latest time.Time
	found := false
	for _, line := range lines {
		for _, match := range re.FindAllString(line, -1) {
			d, ok := parseMatch(match, yearPrefix, iD, iM, iY, numD, numM, numY)
			if !ok {
				continue
			}
			if !found || d.After(latest) {
				latest = d
				found = true
			}
		}
	}

	if !found {
		return time.Time{}, fmt.Errorf("no date matching format %q found", format)
	}
	return latest, nil
}

const dateDelims = "/-."

// parseMatch slices the day, month, and year parts out of a matched date
// string by their positions in the format. Matches that do not form a real
// calendar date are rejected.
func parseMatch(match, yearPrefix string, iD, iM, iY, numD, numM, numY int) (time.Time, bool) {
	if iD < 0 || iM < 0 || iY < 0 {
		return time.Time{}, false
	}
	if iD+numD > len(match) || iM+numM > len(match) || iY+numY > len(match) {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(match[iD : iD+numD])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(match[iM : iM+numM])
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearPrefix + match[iY:iY+numY])
	if err != nil {
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. 31 Feb); reject those.
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

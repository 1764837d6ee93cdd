package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// tolerates a leading minus on any component and ':' before the fraction
	timeRangeLenient = regexp.MustCompile(
		`^-?\d+:-?\d+:-?\d+[:,]-?\d+\s*-->\s*-?\d+:-?\d+:-?\d+[:,]-?\d+$`,
	)
	timeRangeStrict = regexp.MustCompile(
		`^\d+:\d+:\d+,\d+\s*-->\s*\d+:\d+:\d+,\d+$`,
	)
)

func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// reports whether s is a base-10 integer with optional sign and nothing else
func IsInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func IsTimeRangeLine(line string) bool {
	return timeRangeLenient.MatchString(line) ||
		timeRangeStrict.MatchString(line)
}

// reports whether line looks like subtitle text rather than a block
// boundary, index or time range
func IsText(line string) bool {
	return !(IsBlank(line) ||
		IsInteger(line) ||
		timeRangeLenient.MatchString(line))
}

// parses "H:M:S,F --> H:M:S,F" into start and end
func ParseTimeRange(line string) (TimeCode, TimeCode, bool) {
	if !IsTimeRangeLine(line) {
		return TimeCode{}, TimeCode{}, false
	}

	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	compact = strings.Replace(compact, "-->", ":", 1)

	parts := strings.FieldsFunc(compact, func(r rune) bool {
		return r == ':' || r == ','
	})
	if len(parts) != 8 {
		return TimeCode{}, TimeCode{}, false
	}

	var v [8]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeCode{}, TimeCode{}, false
		}
		v[i] = n
	}

	return NewTimeCode(v[0], v[1], v[2], v[3]),
		NewTimeCode(v[4], v[5], v[6], v[7]),
		true
}

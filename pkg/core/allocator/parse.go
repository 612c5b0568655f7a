package allocator

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	progressPairRe   = regexp.MustCompile(`^(\d+)[^0-9]+(\d+)`)
	progressSingleRe = regexp.MustCompile(`^(\d+)`)

	// unicode hyphen variants that show up in hand-typed progress strings
	hyphenNormalizer = strings.NewReplacer("‐", "-", "−", "-", "ー", "-")
)

// ParseProgress extracts a (major, minor) stage pair from free-text
// progress like "45-2" or "50". Malformed input degrades to (0, 0) and
// never errors; a missing minor stage parses as zero.
func ParseProgress(text string) Progress {
	normalized := hyphenNormalizer.Replace(strings.TrimSpace(text))

	if m := progressPairRe.FindStringSubmatch(normalized); m != nil {
		major, _ := strconv.Atoi(m[1])
		minor, _ := strconv.Atoi(m[2])
		return Progress{Major: major, Minor: minor}
	}

	if m := progressSingleRe.FindStringSubmatch(normalized); m != nil {
		major, _ := strconv.Atoi(m[1])
		return Progress{Major: major}
	}

	return Progress{}
}

// ParsePower parses free-text combat power like "1.2M", "500k" or
// "1,234,567". A trailing K multiplies by a thousand, M by a million;
// thousands separators and quote characters are stripped. Unparseable
// input degrades to 0 and never errors.
func ParsePower(text string) float64 {
	s := strings.ToUpper(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, `"`, "")
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "M"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "K")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return value * multiplier
}

package storage

import (
	"regexp"
	"strings"
)

// Roman numeral suffixes mapped to digits at load time. Longer numerals are
// replaced first so "III" is not consumed as "II"+"I".
var romanReplacements = []struct {
	re    *regexp.Regexp
	digit string
}{
	{regexp.MustCompile(`\bIII\b`), "3"},
	{regexp.MustCompile(`\bII\b`), "2"},
	{regexp.MustCompile(`\bIV\b`), "4"},
	{regexp.MustCompile(`\bV\b`), "5"},
	{regexp.MustCompile(`\bI\b`), "1"},
}

var doubleSpaceRe = regexp.MustCompile(`\s{2,}`)

// NormalizeSubject applies the load-time cleanup every stored subject goes
// through: roman numerals become digits, commas are dropped, whitespace is
// collapsed and the result is upper-cased. Lookups compare against this
// form, so it must not change between loads.
func NormalizeSubject(subject string) string {
	s := subject
	for _, r := range romanReplacements {
		s = r.re.ReplaceAllString(s, r.digit)
	}
	s = strings.ReplaceAll(s, ",", "")
	s = doubleSpaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.ToUpper(s)
}

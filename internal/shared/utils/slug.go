package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe identifier from a title-like string.
// "Golden Hour at Čachtice" -> "golden-hour-at-cachtice"
func GenerateSlug(input string) string {
	ascii := foldToASCII(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// foldToASCII maps accented latin letters to their base character and drops
// combining marks. Characters outside latin are kept and later stripped by
// the slug regex.
func foldToASCII(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if base, ok := latinFold[r]; ok {
			b.WriteRune(base)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var latinFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'ď': 'd', 'đ': 'd',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i',
	'ľ': 'l', 'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'ő': 'o',
	'ŕ': 'r', 'ř': 'r',
	'ś': 's', 'š': 's', 'ş': 's',
	'ť': 't', 'ţ': 't',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ű': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ż': 'z', 'ž': 'z',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Ā': 'A', 'Ă': 'A', 'Ą': 'A',
	'Ç': 'C', 'Ć': 'C', 'Č': 'C',
	'Ď': 'D', 'Đ': 'D',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E', 'Ē': 'E', 'Ė': 'E', 'Ę': 'E', 'Ě': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I', 'Ī': 'I', 'Į': 'I',
	'Ľ': 'L', 'Ł': 'L',
	'Ñ': 'N', 'Ń': 'N', 'Ň': 'N',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O', 'Ō': 'O', 'Ő': 'O',
	'Ŕ': 'R', 'Ř': 'R',
	'Ś': 'S', 'Š': 'S', 'Ş': 'S',
	'Ť': 'T', 'Ţ': 'T',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U', 'Ū': 'U', 'Ů': 'U', 'Ű': 'U', 'Ų': 'U',
	'Ý': 'Y',
	'Ź': 'Z', 'Ż': 'Z', 'Ž': 'Z',
}

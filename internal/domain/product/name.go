package product

import (
	"strings"
	"unicode"
)

// NormalizeName trims and collapses whitespace. It is the canonical product
// name used for deduplication.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Key is the lookup form of a name or query.
func Key(s string) string {
	return strings.ToLower(NormalizeName(s))
}

var knownBrands = []string{
	"Apple", "Samsung", "Sony", "OnePlus", "Xiaomi", "Redmi", "Realme", "Oppo", "Vivo",
	"Google", "Nike", "Adidas", "Puma", "HP", "Dell", "Lenovo", "Asus", "Acer", "LG", "Boat",
}

// GuessBrand returns a known brand when the name starts with it, otherwise the
// first word.
func GuessBrand(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	for _, b := range knownBrands {
		if strings.EqualFold(words[0], b) {
			return b
		}
	}
	if strings.EqualFold(words[0], "iphone") || strings.EqualFold(words[0], "macbook") {
		return "Apple"
	}
	return words[0]
}

// BuildKeywords lowercases the name and splits it into unique search terms.
func BuildKeywords(name string) []string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func mergeKeywords(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, k := range list {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

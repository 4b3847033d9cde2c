package generator

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// templateFuncs returns the functions available to expansion templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// String manipulation
		"camelCase":  camelCase,
		"pascalCase": pascalCase,
		"snakeCase":  snakeCase,
		"kebabCase":  kebabCase,
		"lower":      strings.ToLower,
		"upper":      strings.ToUpper,
		"trim":       strings.TrimSpace,
		"replace":    strings.ReplaceAll,
		"hasPrefix":  strings.HasPrefix,
		"hasSuffix":  strings.HasSuffix,

		// C# helpers
		"identifier": identifier,
		"quote":      quote,

		// List helpers
		"join":     strings.Join,
		"contains": containsStr,

		// Conditional helpers
		"default": defaultValue,
		"ternary": ternary,

		// Misc
		"notLast": func(i, length int) bool { return i < length-1 },
	}
}

// identifier turns an arbitrary label such as a tag name ("Main Camera",
// "enemy-boss", "2D") into a valid C# identifier.
func identifier(s string) string {
	var cleaned strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune(' ')
		}
	}

	words := strings.Fields(cleaned.String())
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	id := strings.Join(words, "")

	if id == "" {
		return "_"
	}
	// words are capitalized, so no result collides with a C# keyword
	if unicode.IsDigit([]rune(id)[0]) {
		id = "_" + id
	}
	return id
}

// quote renders s as a C# regular string literal. Non-printable runes and
// invalid bytes use fixed-width \u or \U escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&sb, `\u%04X`, s[i])
			i++
			continue
		}
		i += size

		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			switch {
			case unicode.IsPrint(r):
				sb.WriteRune(r)
			case r > 0xFFFF:
				fmt.Fprintf(&sb, `\U%08X`, r)
			default:
				fmt.Fprintf(&sb, `\u%04X`, r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// camelCase converts to camelCase.
func camelCase(s string) string {
	if s == "" {
		return s
	}
	pascal := pascalCase(s)
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// pascalCase converts to PascalCase.
func pascalCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		if len(word) > 0 {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			for j := 1; j < len(runes); j++ {
				runes[j] = unicode.ToLower(runes[j])
			}
			words[i] = string(runes)
		}
	}
	return strings.Join(words, "")
}

// snakeCase converts to snake_case.
func snakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// kebabCase converts to kebab-case.
func kebabCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, etc.).
func splitWords(s string) []string {
	var words []string
	var current []rune

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			if len(current) > 0 {
				words = append(words, string(current))
				current = nil
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			// Check if this is the start of a new word
			prev := runes[i-1]
			if unicode.IsLower(prev) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				if len(current) > 0 {
					words = append(words, string(current))
					current = nil
				}
			}
		}

		current = append(current, r)
	}

	if len(current) > 0 {
		words = append(words, string(current))
	}

	return words
}

// containsStr checks if a slice contains a string.
func containsStr(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// defaultValue returns the first non-empty value.
func defaultValue(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

// ternary returns a if condition is true, else b.
func ternary(condition bool, a, b string) string {
	if condition {
		return a
	}
	return b
}

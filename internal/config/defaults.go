// Package config provides configuration handling for csgen.
package config

// DefaultTypeMappings returns default Go to C# type mappings.
func DefaultTypeMappings() map[string]string {
	return map[string]string{
		// Basic types
		"string":     "string",
		"bool":       "bool",
		"int":        "int",
		"int8":       "sbyte",
		"int16":      "short",
		"int32":      "int",
		"int64":      "long",
		"uint":       "uint",
		"uint8":      "byte",
		"uint16":     "ushort",
		"uint32":     "uint",
		"uint64":     "ulong",
		"float32":    "float",
		"float64":    "double",
		"complex64":  "System.Numerics.Complex",
		"complex128": "System.Numerics.Complex",
		"byte":       "byte",
		"rune":       "char",
		"uintptr":    "nuint",

		// Special types
		"[]byte":        "byte[]",
		"time.Time":     "System.DateTime",
		"time.Duration": "System.TimeSpan",
		"interface{}":   "object",
		"any":           "object",
		"error":         "System.Exception",

		// UUID types (common libraries)
		"uuid.UUID":                   "System.Guid",
		"github.com/google/uuid.UUID": "System.Guid",
		"github.com/gofrs/uuid.UUID":  "System.Guid",

		// Decimal types
		"decimal.Decimal":                       "decimal",
		"github.com/shopspring/decimal.Decimal": "decimal",

		// JSON types
		"json.RawMessage": "string",
	}
}

// valueTypes are C# types that need a "?" to become nullable.
var valueTypes = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "char": true,
	"short": true, "ushort": true, "int": true, "uint": true,
	"long": true, "ulong": true, "float": true, "double": true,
	"decimal": true, "nint": true, "nuint": true,
	"System.DateTime": true, "System.TimeSpan": true, "System.Guid": true,
	"System.Numerics.Complex": true,
}

// IsValueType reports whether csType is a known C# value type.
func IsValueType(csType string) bool {
	return valueTypes[csType]
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	exported := true
	return Options{
		Access:       "internal",
		ClassKind:    "normal",
		FieldAccess:  "public",
		Naming:       "counter",
		ExportedOnly: &exported,
	}
}

package csharp

import "strings"

// AccessModifier is a C# accessibility level.
type AccessModifier string

const (
	Public            AccessModifier = "public"
	Internal          AccessModifier = "internal"
	Private           AccessModifier = "private"
	Protected         AccessModifier = "protected"
	ProtectedInternal AccessModifier = "protected internal"
	PrivateProtected  AccessModifier = "private protected"
)

// Keyword returns the modifier as it appears in source.
func (a AccessModifier) Keyword() string {
	return keyword(string(a))
}

// topLevel returns the modifier legal on a non-nested type. Anything other
// than public collapses to internal.
func (a AccessModifier) topLevel() AccessModifier {
	if AccessModifier(a.Keyword()) == Public {
		return Public
	}
	return Internal
}

// ClassKind qualifies a class declaration.
type ClassKind string

const (
	Normal          ClassKind = "normal"
	Static          ClassKind = "static"
	Sealed          ClassKind = "sealed"
	Abstract        ClassKind = "abstract"
	Partial         ClassKind = "partial"
	StaticPartial   ClassKind = "static partial"
	SealedPartial   ClassKind = "sealed partial"
	AbstractPartial ClassKind = "abstract partial"
)

// Keyword returns the qualifier keyword, empty for Normal.
func (k ClassKind) Keyword() string {
	kw := keyword(string(k))
	if kw == string(Normal) {
		return ""
	}
	return kw
}

// MethodKind selects between instance and static members.
type MethodKind string

const (
	Instance     MethodKind = "instance"
	StaticMethod MethodKind = "static"
)

// Keyword returns "static" for static members and "" otherwise.
func (k MethodKind) Keyword() string {
	if keyword(string(k)) == string(StaticMethod) {
		return "static"
	}
	return ""
}

// keyword lowercases s and turns underscores into spaces so that config
// spellings like "protected_internal" map onto the keyword form.
func keyword(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(s), "_", " "))
}

var (
	accessModifiers = []AccessModifier{Public, Internal, Private, Protected, ProtectedInternal, PrivateProtected}
	classKinds      = []ClassKind{Normal, Static, Sealed, Abstract, Partial, StaticPartial, SealedPartial, AbstractPartial}
)

// ParseAccessModifier resolves a user-supplied spelling. The boolean is false
// when s names no known modifier.
func ParseAccessModifier(s string) (AccessModifier, bool) {
	kw := keyword(s)
	for _, a := range accessModifiers {
		if string(a) == kw {
			return a, true
		}
	}
	return "", false
}

// ParseClassKind resolves a user-supplied spelling. Empty means Normal.
func ParseClassKind(s string) (ClassKind, bool) {
	kw := keyword(s)
	if kw == "" {
		return Normal, true
	}
	for _, k := range classKinds {
		if string(k) == kw {
			return k, true
		}
	}
	return "", false
}

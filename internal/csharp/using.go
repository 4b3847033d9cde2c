package csharp

// Using is a namespace import directive.
type Using struct {
	Namespace string
}

// Render returns the directive, e.g. "using System;".
func (u Using) Render() string {
	return "using " + u.Namespace + ";"
}

// TypeRef names a type together with the namespace that declares it.
type TypeRef struct {
	Namespace string
	Name      string
}

// Qualified returns Namespace.Name, or just Name without a namespace.
func (t TypeRef) Qualified() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

package csharp

import "strings"

// Parameter is one entry of a method parameter list. A non-empty Default
// makes it optional; optional parameters must follow required ones, which
// is left to the caller.
type Parameter struct {
	Type    string
	Name    string
	Default string
}

// Optional reports whether the parameter carries a default value.
func (p Parameter) Optional() bool {
	return p.Default != ""
}

// Render returns "<type> <name>" or "<type> <name> = <default>".
func (p Parameter) Render() string {
	if p.Optional() {
		return p.Type + " " + p.Name + " = " + p.Default
	}
	return p.Type + " " + p.Name
}

func renderParameters(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Render()
	}
	return strings.Join(parts, ", ")
}

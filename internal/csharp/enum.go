package csharp

import "strings"

// EnumBuilder renders a standalone enumeration wrapped in its namespace.
// Members are not de-duplicated.
type EnumBuilder struct {
	name      string
	namespace string
	access    AccessModifier
	members   []string
}

// NewEnumBuilder creates a public enum in namespace. An empty namespace
// renders the enum at file scope.
func NewEnumBuilder(name, namespace string) *EnumBuilder {
	return &EnumBuilder{
		name:      name,
		namespace: namespace,
		access:    Public,
	}
}

// SetAccess sets the enum accessibility. Like classes, anything but public
// renders as internal.
func (e *EnumBuilder) SetAccess(a AccessModifier) *EnumBuilder {
	e.access = a
	return e
}

func (e *EnumBuilder) AddMember(name string) *EnumBuilder {
	e.members = append(e.members, name)
	return e
}

func (e *EnumBuilder) AddMembers(names ...string) *EnumBuilder {
	e.members = append(e.members, names...)
	return e
}

func (e *EnumBuilder) Name() string { return e.name }

// Members returns a copy of the members in insertion order.
func (e *EnumBuilder) Members() []string {
	return append([]string(nil), e.members...)
}

// Render returns the namespace-wrapped enum declaration.
func (e *EnumBuilder) Render() string {
	w := &writer{}
	if e.namespace != "" {
		w.Line("namespace " + e.namespace)
		w.Open()
	}

	w.Line(e.access.topLevel().Keyword() + " enum " + strings.Join(strings.Fields(e.name), ""))
	w.Open()
	if len(e.members) > 0 {
		w.Line(strings.Join(e.members, ", "))
	}
	w.Close()

	if e.namespace != "" {
		w.Close()
	}
	return w.String()
}

func (e *EnumBuilder) String() string { return e.Render() }

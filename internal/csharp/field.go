package csharp

import "strings"

// FieldBuilder renders a single field declaration.
type FieldBuilder struct {
	name       string
	typ        string
	access     AccessModifier
	def        string
	static     bool
	readOnly   bool
	attributes []string
}

// NewFieldBuilder creates a public field of the given type.
func NewFieldBuilder(name, typ string) *FieldBuilder {
	return &FieldBuilder{
		name:   name,
		typ:    typ,
		access: Public,
	}
}

func (f *FieldBuilder) SetAccess(a AccessModifier) *FieldBuilder {
	f.access = a
	return f
}

// SetDefault sets the initializer expression; empty means none.
func (f *FieldBuilder) SetDefault(value string) *FieldBuilder {
	f.def = value
	return f
}

func (f *FieldBuilder) Static() *FieldBuilder {
	f.static = true
	return f
}

func (f *FieldBuilder) ReadOnly() *FieldBuilder {
	f.readOnly = true
	return f
}

// AddAttribute adds a verbatim attribute line such as "[SerializeField]".
func (f *FieldBuilder) AddAttribute(line string) *FieldBuilder {
	f.attributes = append(f.attributes, line)
	return f
}

func (f *FieldBuilder) Name() string { return f.name }

// Render returns the attribute lines followed by the declaration.
func (f *FieldBuilder) Render() string {
	var sb strings.Builder
	for _, attr := range f.attributes {
		sb.WriteString(attr)
		sb.WriteByte('\n')
	}

	sb.WriteString(f.access.Keyword())
	sb.WriteByte(' ')
	if f.static {
		sb.WriteString("static ")
	}
	if f.readOnly {
		sb.WriteString("readonly ")
	}
	sb.WriteString(f.typ)
	sb.WriteByte(' ')
	sb.WriteString(f.name)
	if f.def != "" {
		sb.WriteString(" = ")
		sb.WriteString(f.def)
	}
	sb.WriteByte(';')
	return sb.String()
}

// Package csharp builds C# source text from declarative descriptions.
//
// Builders are populated through chained Add/Set calls and rendered with
// Render, which is a pure function of the builder state and may be called
// any number of times. Builders are not safe for concurrent use.
package csharp

import "strings"

// GeneratorComment seeds the comment list of every new ClassBuilder.
const GeneratorComment = "This class was generated by csgen"

// ClassBuilder composes a complete compilation unit holding one class.
type ClassBuilder struct {
	name       string
	namespace  string
	access     AccessModifier
	kind       ClassKind
	base       string
	interfaces InterfaceList
	usings     []Using
	fields     []*FieldBuilder
	methods    []*MethodBuilder
	attributes []string
	comments   []string
	appended   []string
	conditions []string
}

// NewClassBuilder creates an internal, non-qualified class.
func NewClassBuilder(name string) *ClassBuilder {
	return &ClassBuilder{
		name:     name,
		access:   Internal,
		kind:     Normal,
		comments: []string{GeneratorComment},
	}
}

// SetNamespace sets the enclosing namespace; empty means none.
func (b *ClassBuilder) SetNamespace(ns string) *ClassBuilder {
	b.namespace = ns
	return b
}

// SetAccess sets the class accessibility. Modifiers other than public and
// internal are rendered as internal.
func (b *ClassBuilder) SetAccess(a AccessModifier) *ClassBuilder {
	b.access = a
	return b
}

func (b *ClassBuilder) SetKind(k ClassKind) *ClassBuilder {
	b.kind = k
	return b
}

// SetBase sets the base class name as written.
func (b *ClassBuilder) SetBase(name string) *ClassBuilder {
	b.base = name
	return b
}

// SetBaseRef sets the base class from ref and imports its namespace.
func (b *ClassBuilder) SetBaseRef(ref TypeRef) *ClassBuilder {
	b.AddUsing(ref.Namespace)
	return b.SetBase(ref.Name)
}

// AddUsing imports ns. Re-adding a namespace or adding an empty one is a no-op.
func (b *ClassBuilder) AddUsing(ns string) *ClassBuilder {
	if ns == "" {
		return b
	}
	for _, u := range b.usings {
		if u.Namespace == ns {
			return b
		}
	}
	b.usings = append(b.usings, Using{Namespace: ns})
	return b
}

func (b *ClassBuilder) AddInterface(name string) *ClassBuilder {
	b.interfaces.Add(name)
	return b
}

// AddInterfaceRef adds ref to the base list and imports its namespace.
func (b *ClassBuilder) AddInterfaceRef(ref TypeRef) *ClassBuilder {
	return b.AddUsing(b.interfaces.AddRef(ref))
}

// AddAttribute adds a class attribute line verbatim, e.g. "[Serializable]".
func (b *ClassBuilder) AddAttribute(line string) *ClassBuilder {
	b.attributes = append(b.attributes, line)
	return b
}

// AddComment appends a documentation comment line above the class.
func (b *ClassBuilder) AddComment(comment string) *ClassBuilder {
	b.comments = append(b.comments, comment)
	return b
}

// ClearComments drops every comment, including the generator line.
func (b *ClassBuilder) ClearComments() *ClassBuilder {
	b.comments = nil
	return b
}

// AddCondition adds a preprocessor symbol. Conditions are OR-combined into a
// single #if around the whole unit.
func (b *ClassBuilder) AddCondition(condition string) *ClassBuilder {
	b.conditions = append(b.conditions, condition)
	return b
}

// AppendRaw appends text emitted verbatim after the class body.
func (b *ClassBuilder) AppendRaw(text string) *ClassBuilder {
	b.appended = append(b.appended, text)
	return b
}

func (b *ClassBuilder) AddField(f *FieldBuilder) *ClassBuilder {
	b.fields = append(b.fields, f)
	return b
}

func (b *ClassBuilder) AddMethod(m *MethodBuilder) *ClassBuilder {
	b.methods = append(b.methods, m)
	return b
}

func (b *ClassBuilder) Name() string { return b.name }

// Usings returns the imported namespaces in insertion order.
func (b *ClassBuilder) Usings() []string {
	out := make([]string, len(b.usings))
	for i, u := range b.usings {
		out[i] = u.Namespace
	}
	return out
}

func (b *ClassBuilder) FieldCount() int  { return len(b.fields) }
func (b *ClassBuilder) MethodCount() int { return len(b.methods) }

// Header returns the class declaration line.
func (b *ClassBuilder) Header() string {
	var sb strings.Builder
	sb.WriteString(b.access.topLevel().Keyword())
	sb.WriteByte(' ')
	if kw := b.kind.Keyword(); kw != "" {
		sb.WriteString(kw)
		sb.WriteByte(' ')
	}
	sb.WriteString("class ")
	sb.WriteString(strings.Join(strings.Fields(b.name), ""))

	switch {
	case b.base != "" && b.interfaces.Count() > 0:
		sb.WriteString(" : " + b.base + " , " + b.interfaces.Render())
	case b.base != "":
		sb.WriteString(" : " + b.base)
	case b.interfaces.Count() > 0:
		sb.WriteString(" : " + b.interfaces.Render())
	}
	return sb.String()
}

// Render returns the complete unit.
func (b *ClassBuilder) Render() string {
	w := &writer{}

	if len(b.conditions) > 0 {
		w.Line("#if " + strings.Join(b.conditions, " || "))
	}

	if len(b.usings) > 0 {
		w.Block(RenderMany(b.usings, false))
		w.Line("")
	}

	if b.namespace != "" {
		w.Line("namespace " + b.namespace)
		w.Open()
	}

	for _, c := range b.comments {
		w.Line("/// " + c)
	}
	for _, attr := range b.attributes {
		w.Line(attr)
	}

	w.Line(b.Header())
	w.Open()
	if len(b.fields) > 0 {
		w.Block(RenderMany(b.fields, false))
	}
	for i, m := range b.methods {
		if i > 0 || len(b.fields) > 0 {
			w.Line("")
		}
		w.Block(m.Render())
	}
	w.Close()

	for _, raw := range b.appended {
		w.Raw(raw)
	}

	if b.namespace != "" {
		w.Close()
	}

	if len(b.conditions) > 0 {
		w.Line("#endif")
	}
	return w.String()
}

func (b *ClassBuilder) String() string { return b.Render() }

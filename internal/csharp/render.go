package csharp

import "strings"

const indentUnit = "    "

// Renderer is implemented by every element that can be emitted as source.
type Renderer interface {
	Render() string
}

// Render renders a single element.
func Render(r Renderer) string {
	return r.Render()
}

// RenderMany renders items joined by newlines. With leadingBlank set, a
// non-empty result starts with an empty line.
func RenderMany[T Renderer](items []T, leadingBlank bool) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Render())
	}
	out := strings.Join(parts, "\n")
	if leadingBlank {
		out = "\n" + out
	}
	return out
}

// writer accumulates indented source lines.
type writer struct {
	sb     strings.Builder
	indent int
}

// Line writes s at the current indentation followed by a newline. Empty
// lines carry no indentation.
func (w *writer) Line(s string) {
	if s != "" {
		w.sb.WriteString(strings.Repeat(indentUnit, w.indent))
		w.sb.WriteString(s)
	}
	w.sb.WriteByte('\n')
}

// Block writes every line of a multi-line string at the current indentation.
func (w *writer) Block(s string) {
	if s == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		w.Line(line)
	}
}

// Raw writes s unindented, terminating it with a newline if it lacks one.
func (w *writer) Raw(s string) {
	if s == "" {
		return
	}
	w.sb.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		w.sb.WriteByte('\n')
	}
}

// Open writes an opening brace and indents.
func (w *writer) Open() {
	w.Line("{")
	w.indent++
}

// Close dedents and writes a closing brace.
func (w *writer) Close() {
	w.indent--
	w.Line("}")
}

func (w *writer) String() string { return w.sb.String() }

package csharp

import "strings"

// InterfaceList holds the interfaces named in a class's base list.
// Duplicates are kept; avoiding them is up to the caller.
type InterfaceList struct {
	names []string
}

func (l *InterfaceList) Add(name string) *InterfaceList {
	l.names = append(l.names, name)
	return l
}

// AddRef appends ref by its simple name and returns the namespace that must
// be imported for the name to resolve.
func (l *InterfaceList) AddRef(ref TypeRef) string {
	l.Add(ref.Name)
	return ref.Namespace
}

func (l *InterfaceList) Count() int { return len(l.names) }

// Names returns a copy of the stored names in insertion order.
func (l *InterfaceList) Names() []string {
	return append([]string(nil), l.names...)
}

// Render joins the names with ", ".
func (l *InterfaceList) Render() string {
	return strings.Join(l.names, ", ")
}

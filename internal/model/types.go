// Package model defines the declarative descriptions that drive generation.
package model

import "strings"

// Format identifies the encoding of a request file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Request is one generation pass: every class and enum it lists is rendered
// into its own unit.
type Request struct {
	Classes []Class `yaml:"classes" json:"classes" toml:"classes"`
	Enums   []Enum  `yaml:"enums" json:"enums" toml:"enums"`
}

// Class describes a single generated class.
type Class struct {
	Name          string      `yaml:"name" json:"name" toml:"name"`
	File          string      `yaml:"file,omitempty" json:"file,omitempty" toml:"file,omitempty"` // Output file name (default: <Name>.cs)
	Namespace     string      `yaml:"namespace,omitempty" json:"namespace,omitempty" toml:"namespace,omitempty"`
	Access        string      `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`
	Kind          string      `yaml:"kind,omitempty" json:"kind,omitempty" toml:"kind,omitempty"`
	Base          string      `yaml:"base,omitempty" json:"base,omitempty" toml:"base,omitempty"`
	BaseRef       *TypeRef    `yaml:"baseRef,omitempty" json:"baseRef,omitempty" toml:"baseRef,omitempty"`
	Interfaces    []string    `yaml:"interfaces,omitempty" json:"interfaces,omitempty" toml:"interfaces,omitempty"`
	InterfaceRefs []TypeRef   `yaml:"interfaceRefs,omitempty" json:"interfaceRefs,omitempty" toml:"interfaceRefs,omitempty"`
	Usings        []string    `yaml:"usings,omitempty" json:"usings,omitempty" toml:"usings,omitempty"`
	Comments      []string    `yaml:"comments,omitempty" json:"comments,omitempty" toml:"comments,omitempty"`
	NoHeader      bool        `yaml:"noHeader,omitempty" json:"noHeader,omitempty" toml:"noHeader,omitempty"` // Drop the generator comment
	Attributes    []string    `yaml:"attributes,omitempty" json:"attributes,omitempty" toml:"attributes,omitempty"`
	Conditions    []string    `yaml:"conditions,omitempty" json:"conditions,omitempty" toml:"conditions,omitempty"`
	Fields        []Field     `yaml:"fields,omitempty" json:"fields,omitempty" toml:"fields,omitempty"`
	Methods       []Method    `yaml:"methods,omitempty" json:"methods,omitempty" toml:"methods,omitempty"`
	Repeat        []Expansion `yaml:"repeat,omitempty" json:"repeat,omitempty" toml:"repeat,omitempty"`
	Append        []string    `yaml:"append,omitempty" json:"append,omitempty" toml:"append,omitempty"` // Raw text after the class body
}

// TypeRef is a type name together with its declaring namespace.
type TypeRef struct {
	Name      string `yaml:"name" json:"name" toml:"name"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty" toml:"namespace,omitempty"`
}

// Field describes a field declaration.
type Field struct {
	Name       string   `yaml:"name" json:"name" toml:"name"`
	Type       string   `yaml:"type" json:"type" toml:"type"`
	Access     string   `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`
	Default    string   `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
	Static     bool     `yaml:"static,omitempty" json:"static,omitempty" toml:"static,omitempty"`
	ReadOnly   bool     `yaml:"readonly,omitempty" json:"readonly,omitempty" toml:"readonly,omitempty"`
	Attributes []string `yaml:"attributes,omitempty" json:"attributes,omitempty" toml:"attributes,omitempty"`
}

// Method describes a member function. Body is passed through untouched.
type Method struct {
	Name           string      `yaml:"name" json:"name" toml:"name"`
	Access         string      `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`
	Static         bool        `yaml:"static,omitempty" json:"static,omitempty" toml:"static,omitempty"`
	Returns        string      `yaml:"returns,omitempty" json:"returns,omitempty" toml:"returns,omitempty"` // Return type (default: void)
	Params         []Param     `yaml:"params,omitempty" json:"params,omitempty" toml:"params,omitempty"`
	Attributes     []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty" toml:"attributes,omitempty"`
	AttributeLines []string    `yaml:"attributeLines,omitempty" json:"attributeLines,omitempty" toml:"attributeLines,omitempty"`
	Body           string      `yaml:"body,omitempty" json:"body,omitempty" toml:"body,omitempty"`
	Expression     bool        `yaml:"expression,omitempty" json:"expression,omitempty" toml:"expression,omitempty"` // Render as "=> body;"
}

// Param is a method parameter; a non-empty Default makes it optional.
type Param struct {
	Type    string `yaml:"type" json:"type" toml:"type"`
	Name    string `yaml:"name" json:"name" toml:"name"`
	Default string `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
}

// Attribute renders as [Name(Args)].
type Attribute struct {
	Name string `yaml:"name" json:"name" toml:"name"`
	Args string `yaml:"args,omitempty" json:"args,omitempty" toml:"args,omitempty"`
}

// Expansion produces one method per item. Method's Name, Body, attribute
// arguments and attribute lines are text/templates evaluated against
// ExpansionData.
type Expansion struct {
	Items  []any  `yaml:"items" json:"items" toml:"items"`
	Method Method `yaml:"method" json:"method" toml:"method"`
	Unique bool   `yaml:"unique,omitempty" json:"unique,omitempty" toml:"unique,omitempty"` // Pass the name through the name supplier
}

// ExpansionData is the template context of an Expansion.
type ExpansionData struct {
	Index int    // Position of the item
	Item  any    // The item itself
	Class string // Name of the enclosing class
}

// Enum describes a standalone enumeration.
type Enum struct {
	Name      string   `yaml:"name" json:"name" toml:"name"`
	File      string   `yaml:"file,omitempty" json:"file,omitempty" toml:"file,omitempty"`
	Namespace string   `yaml:"namespace,omitempty" json:"namespace,omitempty" toml:"namespace,omitempty"`
	Access    string   `yaml:"access,omitempty" json:"access,omitempty" toml:"access,omitempty"`
	Members   []string `yaml:"members" json:"members" toml:"members"`
	Sanitize  bool     `yaml:"sanitize,omitempty" json:"sanitize,omitempty" toml:"sanitize,omitempty"` // Turn arbitrary strings into identifiers
}

// FileName returns the output file name of the class.
func (c *Class) FileName() string {
	if c.File != "" {
		return c.File
	}
	return fileBase(c.Name) + ".cs"
}

// FileName returns the output file name of the enum.
func (e *Enum) FileName() string {
	if e.File != "" {
		return e.File
	}
	return fileBase(e.Name) + ".cs"
}

// fileBase drops whitespace the same way class headers do.
func fileBase(name string) string {
	return strings.Join(strings.Fields(name), "")
}

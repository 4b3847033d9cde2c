// Package parser turns input files into generation requests: declarative
// request files, and Go source whose types are mirrored as C# classes and
// enums.
package parser

import (
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"csgen/internal/config"
	"csgen/internal/model"
)

const (
	genericCollections = "System.Collections.Generic"
	jsonSerialization  = "System.Text.Json.Serialization"
)

// Parser reads Go source files and mirrors their types as a model.Request.
type Parser struct {
	fset   *token.FileSet
	config *config.Config
}

// New creates a new Parser. Type mappings and filters come from cfg.
func New(cfg *config.Config) *Parser {
	return &Parser{
		fset:   token.NewFileSet(),
		config: cfg,
	}
}

// ParseFile parses a single Go source file.
func (p *Parser) ParseFile(path string) (*model.Request, error) {
	return p.ParseSource(path, nil)
}

// ParseSource parses Go source from src, or from filename when src is nil.
func (p *Parser) ParseSource(filename string, src []byte) (*model.Request, error) {
	var input any
	if src != nil {
		input = src
	}
	file, err := parser.ParseFile(p.fset, filename, input, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}

	structs := make(map[string]*ast.StructType)
	var order []*ast.TypeSpec
	docs := make(map[string]string)
	named := make(map[string]bool)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			docs[typeSpec.Name.Name] = commentText(doc)
			switch t := typeSpec.Type.(type) {
			case *ast.StructType:
				structs[typeSpec.Name.Name] = t
			case *ast.Ident:
				if !typeSpec.Assign.IsValid() {
					named[typeSpec.Name.Name] = true
				}
			}
			order = append(order, typeSpec)
		}
	}

	req := &model.Request{}
	for _, spec := range order {
		name := spec.Name.Name
		if !p.config.ShouldIncludeType(name, ast.IsExported(name)) {
			continue
		}
		if st, ok := structs[name]; ok {
			req.Classes = append(req.Classes, p.classFromStruct(name, st, docs[name], structs))
		}
	}

	members := p.extractConstGroups(file, named)
	for _, spec := range order {
		name := spec.Name.Name
		values, ok := members[name]
		if !ok || !p.config.ShouldIncludeType(name, ast.IsExported(name)) {
			continue
		}
		req.Enums = append(req.Enums, model.Enum{
			Name:    name,
			Members: values,
		})
	}

	return req, nil
}

// classFromStruct mirrors a struct as a class with one public field per
// exported Go field. Embedded structs declared in the same file are flattened.
func (p *Parser) classFromStruct(name string, st *ast.StructType, doc string, structs map[string]*ast.StructType) model.Class {
	class := model.Class{Name: name}
	if doc != "" {
		class.Comments = strings.Split(doc, "\n")
	}

	usings := map[string]bool{}
	class.Fields = p.extractFields(st.Fields, structs, map[string]bool{name: true}, usings)

	for _, ns := range []string{genericCollections, jsonSerialization} {
		if usings[ns] {
			class.Usings = append(class.Usings, ns)
		}
	}
	return class
}

// extractFields converts struct fields, recursing into embedded structs.
func (p *Parser) extractFields(fieldList *ast.FieldList, structs map[string]*ast.StructType, seen map[string]bool, usings map[string]bool) []model.Field {
	if fieldList == nil {
		return nil
	}

	var fields []model.Field
	for _, f := range fieldList.List {
		tag := parseTag(f.Tag)
		jsonName := strings.Split(tag.Get("json"), ",")[0]
		if jsonName == "-" {
			continue
		}

		if len(f.Names) == 0 {
			embedded := embeddedName(f.Type)
			st, ok := structs[embedded]
			// Prevent infinite recursion; unknown embedded types are skipped
			if !ok || seen[embedded] {
				continue
			}
			seen[embedded] = true
			fields = append(fields, p.extractFields(st.Fields, structs, seen, usings)...)
			delete(seen, embedded)
			continue
		}

		csType, generic := p.csType(f.Type)
		if generic {
			usings[genericCollections] = true
		}
		for _, name := range f.Names {
			if !name.IsExported() {
				continue
			}
			field := model.Field{Name: name.Name, Type: csType}
			if jsonName != "" && jsonName != name.Name {
				field.Attributes = append(field.Attributes, `[JsonPropertyName("`+jsonName+`")]`)
				usings[jsonSerialization] = true
			}
			fields = append(fields, field)
		}
	}
	return fields
}

// extractConstGroups collects, per named type, the constants declared with
// that type. Member names drop the type-name prefix when the remainder is
// still an identifier.
func (p *Parser) extractConstGroups(file *ast.File, named map[string]bool) map[string][]string {
	members := make(map[string][]string)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}

		// Within a group, specs without type and value repeat the previous
		// spec (iota style).
		current := ""
		for _, spec := range genDecl.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			switch {
			case vs.Type != nil:
				current = ""
				if ident, ok := vs.Type.(*ast.Ident); ok && named[ident.Name] {
					current = ident.Name
				}
			case len(vs.Values) > 0:
				current = ""
			}
			if current == "" {
				continue
			}
			for _, n := range vs.Names {
				if n.Name == "_" {
					continue
				}
				member := strings.TrimPrefix(n.Name, current)
				if !identStart(member) {
					member = n.Name
				}
				members[current] = append(members[current], member)
			}
		}
	}
	return members
}

// identStart reports whether s can begin a C# identifier.
func identStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && (r == '_' || unicode.IsLetter(r))
}

// csType converts a Go type expression to a C# type. The boolean reports
// whether System.Collections.Generic is needed.
func (p *Parser) csType(expr ast.Expr) (string, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		return p.config.MapType(t.Name), false

	case *ast.SelectorExpr:
		// Package-qualified type (e.g., time.Time)
		if ident, ok := t.X.(*ast.Ident); ok {
			full := ident.Name + "." + t.Sel.Name
			if p.config.Mapped(full) {
				return p.config.MapType(full), false
			}
		}
		return t.Sel.Name, false

	case *ast.StarExpr:
		elem, generic := p.csType(t.X)
		if config.IsValueType(elem) {
			return elem + "?", generic
		}
		return elem, generic

	case *ast.ArrayType:
		if ident, ok := t.Elt.(*ast.Ident); ok && t.Len == nil && (ident.Name == "byte" || ident.Name == "uint8") {
			return p.config.MapType("[]byte"), false
		}
		elem, generic := p.csType(t.Elt)
		if t.Len == nil {
			return "List<" + elem + ">", true
		}
		return elem + "[]", generic

	case *ast.MapType:
		key, _ := p.csType(t.Key)
		value, _ := p.csType(t.Value)
		return "Dictionary<" + key + ", " + value + ">", true

	case *ast.InterfaceType:
		return p.config.MapType("interface{}"), false

	default:
		return "object", false
	}
}

func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	}
	return ""
}

// parseTag parses a struct tag.
func parseTag(lit *ast.BasicLit) reflect.StructTag {
	if lit == nil {
		return ""
	}
	return reflect.StructTag(strings.Trim(lit.Value, "`"))
}

// commentText extracts text from a comment group.
func commentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}

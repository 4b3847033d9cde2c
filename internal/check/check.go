// Package check reports C# syntax errors in generated source using the
// tree-sitter C# grammar. It does not compile or type-check anything.
package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// ErrSyntax is returned by Validate when the source does not parse cleanly.
var ErrSyntax = errors.New("C# syntax error")

// Problem is a single ERROR or MISSING node found in the parse tree.
type Problem struct {
	Line    int    // 1-based
	Column  int    // 1-based
	Kind    string // "error" or "missing"
	Snippet string // Source text covered by the node (first line only)
}

func (p Problem) String() string {
	if p.Kind == "missing" {
		return fmt.Sprintf("%d:%d: missing %s", p.Line, p.Column, p.Snippet)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", p.Line, p.Column, p.Snippet)
}

// Source parses src and returns every syntax problem in document order.
func Source(ctx context.Context, src string) ([]Problem, error) {
	content := []byte(src)

	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.Wrap(err, "parsing C# source")
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil, nil
	}

	var problems []Problem
	collect(root, content, &problems)
	return problems, nil
}

// Validate returns ErrSyntax with the problems attached as details.
func Validate(ctx context.Context, src string) error {
	problems, err := Source(ctx, src)
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		return nil
	}

	msgs := make([]string, len(problems))
	for i, p := range problems {
		msgs[i] = p.String()
	}
	return errors.WithDetail(
		errors.Wrapf(ErrSyntax, "%d problem(s), first at %s", len(problems), msgs[0]),
		strings.Join(msgs, "\n"),
	)
}

func collect(n *sitter.Node, content []byte, out *[]Problem) {
	switch {
	case n.IsMissing():
		*out = append(*out, problemAt(n, "missing", n.Type()))
		return
	case n.Type() == "ERROR":
		*out = append(*out, problemAt(n, "error", firstLine(n.Content(content))))
		return
	case !n.HasError():
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		collect(n.Child(i), content, out)
	}
}

func problemAt(n *sitter.Node, kind, snippet string) Problem {
	start := n.StartPoint()
	return Problem{
		Line:    int(start.Row) + 1,
		Column:  int(start.Column) + 1,
		Kind:    kind,
		Snippet: snippet,
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

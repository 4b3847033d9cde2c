package check

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csgen/internal/csharp"
)

func TestSource_GeneratedClassParses(t *testing.T) {
	src := csharp.NewClassBuilder("QuickFab").
		SetNamespace("Game.Generated").
		SetAccess(csharp.Public).
		SetKind(csharp.Sealed).
		AddUsing("System").
		AddInterface("IDisposable").
		AddField(csharp.NewFieldBuilder("count", "int").SetAccess(csharp.Private).SetDefault("0")).
		AddMethod(csharp.NewMethodBuilder("Dispose").SetBody("count = 0;")).
		AddMethod(csharp.NewMethodBuilder("Count").SetReturnType("int").SetBody("count").ExpressionBodied(true)).
		AddMethod(csharp.NewMethodBuilder("Add").
			Static().
			SetReturnType("int").
			AddParameter("int", "a").
			AddOptionalParameter("int", "b", "1").
			AddAttribute("Obsolete", `"use Sum"`).
			SetBody("return a + b;")).
		Render()

	problems, err := Source(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, problems)
	assert.NoError(t, Validate(context.Background(), src))
}

func TestSource_GeneratedEnumParses(t *testing.T) {
	src := csharp.NewEnumBuilder("Color", "Game").AddMembers("Red", "Green", "Blue").Render()

	problems, err := Source(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestSource_ReportsProblems(t *testing.T) {
	src := "namespace N\n{\n    class C\n    {\n        void M( { }\n    }\n"

	problems, err := Source(context.Background(), src)
	require.NoError(t, err)
	require.NotEmpty(t, problems)
	assert.GreaterOrEqual(t, problems[0].Line, 1)

	err = Validate(context.Background(), src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestProblem_String(t *testing.T) {
	assert.Equal(t, `3:5: unexpected "{"`, Problem{Line: 3, Column: 5, Kind: "error", Snippet: "{"}.String())
	assert.Equal(t, "1:2: missing }", Problem{Line: 1, Column: 2, Kind: "missing", Snippet: "}"}.String())
}

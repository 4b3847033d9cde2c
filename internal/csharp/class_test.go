package csharp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassBuilder_EndToEnd(t *testing.T) {
	b := NewClassBuilder("Sample").
		SetNamespace("N").
		AddUsing("System").
		AddMethod(NewMethodBuilder("Go").Static().SetReturnType("void").SetBody("DoWork();"))

	want := `using System;

namespace N
{
    /// This class was generated by csgen
    internal class Sample
    {
        public static void Go()
        {
            DoWork();
        }
    }
}
`
	assert.Equal(t, want, b.Render())
}

func TestClassBuilder_RenderIsIdempotent(t *testing.T) {
	b := NewClassBuilder("Thing").
		SetNamespace("Game").
		AddUsing("UnityEngine").
		AddField(NewFieldBuilder("speed", "float").SetDefault("1f")).
		AddMethod(NewMethodBuilder("Tick").SetBody("speed += 1f;")).
		AddCondition("UNITY_EDITOR")

	first := b.Render()
	assert.Equal(t, first, b.Render())
	assert.Equal(t, first, b.String())
}

func TestClassBuilder_UsingDeduplication(t *testing.T) {
	b := NewClassBuilder("C").
		AddUsing("System").
		AddUsing("UnityEngine").
		AddUsing("System").
		AddUsing("")

	assert.Equal(t, []string{"System", "UnityEngine"}, b.Usings())

	out := b.Render()
	assert.Equal(t, 1, strings.Count(out, "using System;"))
	assert.True(t, strings.HasPrefix(out, "using System;\nusing UnityEngine;\n"))
}

func TestClassBuilder_AccessNormalization(t *testing.T) {
	tests := []struct {
		access AccessModifier
		want   string
	}{
		{Public, "public class C"},
		{Internal, "internal class C"},
		{Private, "internal class C"},
		{Protected, "internal class C"},
		{ProtectedInternal, "internal class C"},
		{AccessModifier("PUBLIC"), "public class C"},
	}

	for _, tt := range tests {
		t.Run(string(tt.access), func(t *testing.T) {
			b := NewClassBuilder("C").SetAccess(tt.access)
			assert.Equal(t, tt.want, b.Header())
		})
	}
}

func TestClassBuilder_KindKeyword(t *testing.T) {
	tests := []struct {
		kind ClassKind
		want string
	}{
		{Normal, "internal class C"},
		{Static, "internal static class C"},
		{Sealed, "internal sealed class C"},
		{Abstract, "internal abstract class C"},
		{Partial, "internal partial class C"},
		{StaticPartial, "internal static partial class C"},
		{ClassKind("Sealed_Partial"), "internal sealed partial class C"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, NewClassBuilder("C").SetKind(tt.kind).Header())
		})
	}
}

func TestClassBuilder_InheritanceClause(t *testing.T) {
	t.Run("base and interfaces", func(t *testing.T) {
		b := NewClassBuilder("C").SetBase("Base").AddInterface("IA").AddInterface("IB")
		assert.True(t, strings.HasSuffix(b.Header(), "class C : Base , IA, IB"))
	})

	t.Run("interfaces only", func(t *testing.T) {
		b := NewClassBuilder("C").AddInterface("IA").AddInterface("IB")
		assert.True(t, strings.HasSuffix(b.Header(), "class C : IA, IB"))
	})

	t.Run("base only", func(t *testing.T) {
		b := NewClassBuilder("C").SetBase("MonoBehaviour")
		assert.True(t, strings.HasSuffix(b.Header(), "class C : MonoBehaviour"))
	})

	t.Run("neither", func(t *testing.T) {
		b := NewClassBuilder("C")
		assert.NotContains(t, b.Header(), ":")
	})
}

func TestClassBuilder_TypeRefsImportNamespaces(t *testing.T) {
	b := NewClassBuilder("C").
		SetBaseRef(TypeRef{Namespace: "UnityEngine", Name: "MonoBehaviour"}).
		AddInterfaceRef(TypeRef{Namespace: "Game.Contracts", Name: "IBuildable"}).
		AddInterfaceRef(TypeRef{Namespace: "UnityEngine", Name: "ISerializationCallbackReceiver"})

	assert.Equal(t, []string{"UnityEngine", "Game.Contracts"}, b.Usings())
	assert.Equal(t, "internal class C : MonoBehaviour , IBuildable, ISerializationCallbackReceiver", b.Header())
}

func TestClassBuilder_NameWhitespaceStripped(t *testing.T) {
	b := NewClassBuilder("My Generated\tClass")
	assert.Equal(t, "internal class MyGeneratedClass", b.Header())
}

func TestClassBuilder_PreprocessorWrap(t *testing.T) {
	out := NewClassBuilder("C").AddCondition("A").AddCondition("B").Render()

	assert.True(t, strings.HasPrefix(out, "#if A || B\n"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "#endif"))
	assert.Equal(t, 1, strings.Count(out, "#if"))
	assert.NotContains(t, out, "&&")
}

func TestClassBuilder_NoConditionsNoDirectives(t *testing.T) {
	out := NewClassBuilder("C").Render()
	assert.NotContains(t, out, "#if")
	assert.NotContains(t, out, "#endif")
}

func TestClassBuilder_CommentsAndAttributes(t *testing.T) {
	b := NewClassBuilder("C").
		AddComment("ReSharper disable All").
		AddAttribute("[Serializable]")

	want := `/// This class was generated by csgen
/// ReSharper disable All
[Serializable]
internal class C
{
}
`
	assert.Equal(t, want, b.Render())

	b.ClearComments()
	assert.NotContains(t, b.Render(), "///")
}

func TestClassBuilder_FieldsAndMethodsLayout(t *testing.T) {
	b := NewClassBuilder("Counter").
		SetAccess(Public).
		SetKind(Sealed).
		AddField(NewFieldBuilder("count", "int").SetAccess(Private).SetDefault("0")).
		AddField(NewFieldBuilder("Label", "string").AddAttribute("[SerializeField]")).
		AddMethod(NewMethodBuilder("Increment").SetBody("count++;")).
		AddMethod(NewMethodBuilder("Value").SetReturnType("int").SetBody("count").ExpressionBodied(true))
	b.ClearComments()

	want := `public sealed class Counter
{
    private int count = 0;
    [SerializeField]
    public string Label;

    public void Increment()
    {
        count++;
    }

    public int Value() => count;
}
`
	assert.Equal(t, want, b.Render())
}

func TestClassBuilder_AppendedRawBlocks(t *testing.T) {
	b := NewClassBuilder("C").
		SetNamespace("N").
		AppendRaw("public enum Extra { A }").
		AppendRaw("// trailer\n")
	b.ClearComments()

	out := b.Render()
	closeClass := strings.Index(out, "    }\n")
	extra := strings.Index(out, "public enum Extra { A }\n// trailer\n")
	require.NotEqual(t, -1, closeClass)
	require.NotEqual(t, -1, extra)
	assert.Less(t, closeClass, extra)
	assert.True(t, strings.HasSuffix(out, "// trailer\n}\n"))
}

func TestClassBuilder_EmptyNamespaceOmitsBlock(t *testing.T) {
	out := NewClassBuilder("C").Render()
	assert.NotContains(t, out, "namespace")
	assert.True(t, strings.HasPrefix(out, "/// "))
}

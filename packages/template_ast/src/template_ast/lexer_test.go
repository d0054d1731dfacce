package template_ast

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func humanizeTokens(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, fmt.Sprintf("%s(%q)@%d", token.Type, token.Lexeme, token.Offset))
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Run("should tokenize an element with an attribute and text", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`<div class="a">x</div>`))
		want := []string{
			`OPEN_ELEMENT_START("<")@0`,
			`ELEMENT_IDENTIFIER("div")@1`,
			`WHITESPACE(" ")@4`,
			`ELEMENT_DECORATOR("class")@5`,
			`BEFORE_DECORATOR_VALUE("=")@10`,
			`ELEMENT_DECORATOR_VALUE("a")@12`,
			`OPEN_ELEMENT_END(">")@14`,
			`TEXT("x")@15`,
			`CLOSE_ELEMENT_START("</")@16`,
			`ELEMENT_IDENTIFIER("div")@18`,
			`CLOSE_ELEMENT_END(">")@21`,
			`EOF("")@22`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize every decorator prefix form", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`<a [(b)] (c) [d] #e *f @g/>`))
		want := []string{
			`OPEN_ELEMENT_START("<")@0`,
			`ELEMENT_IDENTIFIER("a")@1`,
			`WHITESPACE(" ")@2`,
			`BANANA_PREFIX("[(")@3`,
			`ELEMENT_DECORATOR("b")@5`,
			`BANANA_SUFFIX(")]")@6`,
			`WHITESPACE(" ")@8`,
			`EVENT_PREFIX("(")@9`,
			`ELEMENT_DECORATOR("c")@10`,
			`EVENT_SUFFIX(")")@11`,
			`WHITESPACE(" ")@12`,
			`PROPERTY_PREFIX("[")@13`,
			`ELEMENT_DECORATOR("d")@14`,
			`PROPERTY_SUFFIX("]")@15`,
			`WHITESPACE(" ")@16`,
			`REFERENCE_PREFIX("#")@17`,
			`ELEMENT_DECORATOR("e")@18`,
			`WHITESPACE(" ")@19`,
			`TEMPLATE_PREFIX("*")@20`,
			`ELEMENT_DECORATOR("f")@21`,
			`WHITESPACE(" ")@22`,
			`ANNOTATION_PREFIX("@")@23`,
			`ELEMENT_DECORATOR("g")@24`,
			`OPEN_ELEMENT_END_VOID("/>")@25`,
			`EOF("")@27`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize text, interpolation and comments", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`a{{b}}<!--c-->`))
		want := []string{
			`TEXT("a")@0`,
			`INTERPOLATION_START("{{")@1`,
			`INTERPOLATION_VALUE("b")@3`,
			`INTERPOLATION_END("}}")@4`,
			`COMMENT_START("<!--")@6`,
			`COMMENT_VALUE("c")@10`,
			`COMMENT_END("-->")@11`,
			`EOF("")@14`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize an unquoted decorator value", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`<a b=c>`))
		want := []string{
			`OPEN_ELEMENT_START("<")@0`,
			`ELEMENT_IDENTIFIER("a")@1`,
			`WHITESPACE(" ")@2`,
			`ELEMENT_DECORATOR("b")@3`,
			`BEFORE_DECORATOR_VALUE("=")@4`,
			`ELEMENT_DECORATOR_VALUE("c")@5`,
			`OPEN_ELEMENT_END(">")@6`,
			`EOF("")@7`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should keep a value's quotes out of the value token", func(t *testing.T) {
		tokens := Tokenize(`<a b='x y'>`)
		var value *Token
		for i := range tokens {
			if tokens[i].Type == TokenTypeELEMENT_DECORATOR_VALUE {
				value = &tokens[i]
			}
		}
		if value == nil {
			t.Fatal("expected a value token")
		}
		if value.Lexeme != "x y" || value.Offset != 6 {
			t.Errorf("got %q@%d, want %q@%d", value.Lexeme, value.Offset, "x y", 6)
		}
	})

	t.Run("should treat a lone < as text", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`a < b`))
		want := []string{
			`TEXT("a < b")@0`,
			`EOF("")@5`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should tokenize an unterminated interpolation without an end token", func(t *testing.T) {
		got := humanizeTokens(Tokenize(`{{x`))
		want := []string{
			`INTERPOLATION_START("{{")@0`,
			`INTERPOLATION_VALUE("x")@2`,
			`EOF("")@3`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})
}

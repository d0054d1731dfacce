package template_ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenReader(t *testing.T) {
	tokens := []Token{
		NewToken(TokenTypeOPEN_ELEMENT_START, "<", 0),
		NewToken(TokenTypeELEMENT_IDENTIFIER, "div", 1),
		NewToken(TokenTypeWHITESPACE, " ", 4),
		NewToken(TokenTypeOPEN_ELEMENT_END, ">", 5),
	}

	t.Run("should consume tokens in order and then report exhaustion", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		var got []Token
		for {
			token, ok := reader.Next()
			if !ok {
				break
			}
			got = append(got, token)
		}
		if diff := cmp.Diff(tokens, got); diff != "" {
			t.Errorf("token mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should peek without consuming", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		peeked, ok := reader.Peek()
		if !ok || peeked != tokens[0] {
			t.Fatalf("peek got %v, want %v", peeked, tokens[0])
		}
		next, _ := reader.Next()
		if next != tokens[0] {
			t.Errorf("next after peek got %v, want %v", next, tokens[0])
		}
	})

	t.Run("should re-deliver a pushed-back token", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		first, _ := reader.Next()
		reader.PutBack(first)
		again, ok := reader.Next()
		if !ok || again != first {
			t.Errorf("got %v, want the pushed-back token %v", again, first)
		}
	})

	t.Run("should panic on a second pushback", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		first, _ := reader.Next()
		reader.PutBack(first)
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()
		reader.PutBack(first)
	})

	t.Run("should skip the ignored type when peeking ahead", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		reader.Next()
		reader.Next() // cursor sits before the whitespace token
		tokenType, ok := reader.PeekTypeIgnoring(TokenTypeWHITESPACE)
		if !ok || tokenType != TokenTypeOPEN_ELEMENT_END {
			t.Errorf("got %v, want OPEN_ELEMENT_END", tokenType)
		}
		// Peeking must not have moved the cursor.
		next, _ := reader.Next()
		if next.Type != TokenTypeWHITESPACE {
			t.Errorf("got %v, want WHITESPACE", next.Type)
		}
	})

	t.Run("should consider the pushback slot when peeking ahead", func(t *testing.T) {
		reader := NewTokenReader(tokens)
		first, _ := reader.Next()
		reader.PutBack(first)
		tokenType, ok := reader.PeekTypeIgnoring(TokenTypeWHITESPACE)
		if !ok || tokenType != TokenTypeOPEN_ELEMENT_START {
			t.Errorf("got %v, want OPEN_ELEMENT_START", tokenType)
		}
	})
}

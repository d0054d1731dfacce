package template_ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func attributeMustaches(t *testing.T, source string) ([]*Interpolation, []Diagnostic) {
	t.Helper()
	nodes, diagnostics := parseRecovering(t, source)
	element, ok := nodes[0].(*Element)
	if !ok || len(element.Attributes) == 0 {
		t.Fatalf("expected an element with at least one attribute, got %s", HumanizeNodes(nodes))
	}
	return element.Attributes[0].Mustaches, diagnostics
}

func mustacheValues(mustaches []*Interpolation) []string {
	out := make([]string, 0, len(mustaches))
	for _, m := range mustaches {
		out = append(out, m.Value)
	}
	return out
}

func TestAttributeMustaches(t *testing.T) {
	t.Run("should leave a plain value without mustache nodes", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="plain"></div>`)
		if len(mustaches) != 0 || len(diagnostics) != 0 {
			t.Errorf("got %d mustaches and %d diagnostics, want none", len(mustaches), len(diagnostics))
		}
	})

	t.Run("should extract a balanced mustache with absolute offsets", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="x{{y}}z"></div>`)
		if len(diagnostics) != 0 {
			t.Fatalf("unexpected diagnostics: %v", diagnostics)
		}
		if len(mustaches) != 1 {
			t.Fatalf("got %d mustaches, want 1", len(mustaches))
		}
		if got := mustaches[0].Value; got != "y" {
			t.Errorf("got %q, want %q", got, "y")
		}
		span := mustaches[0].SourceSpan()
		if span.Offset != 9 || span.Length != 5 {
			t.Errorf("got span %d+%d, want 9+5", span.Offset, span.Length)
		}
	})

	t.Run("should close an open mustache at a second open marker", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="a{{b{{c}}"></div>`)
		want := []string{"UNTERMINATED_MUSTACHE@9+2"}
		if diff := cmp.Diff(want, humanizeDiagnostics(diagnostics)); diff != "" {
			t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"b", "c"}, mustacheValues(mustaches)); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
		if !mustaches[0].EndToken().Synthetic {
			t.Error("the truncated mustache should end at a synthetic token")
		}
		if mustaches[1].EndToken().Synthetic {
			t.Error("the balanced mustache should end at a real token")
		}
	})

	t.Run("should close an open mustache at end of value", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="x{{y"></div>`)
		want := []string{"UNTERMINATED_MUSTACHE@9+2"}
		if diff := cmp.Diff(want, humanizeDiagnostics(diagnostics)); diff != "" {
			t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"y"}, mustacheValues(mustaches)); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should report a close marker with no open", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="}}x"></div>`)
		want := []string{"UNOPENED_MUSTACHE@8+2"}
		if diff := cmp.Diff(want, humanizeDiagnostics(diagnostics)); diff != "" {
			t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
		}
		if len(mustaches) != 1 {
			t.Fatalf("got %d mustaches, want 1", len(mustaches))
		}
		if !mustaches[0].BeginToken().Synthetic {
			t.Error("the recovered mustache should start at a synthetic token")
		}
		if mustaches[0].Value != "" {
			t.Errorf("got %q, want an empty value", mustaches[0].Value)
		}
	})

	t.Run("should handle several balanced mustaches in one value", func(t *testing.T) {
		mustaches, diagnostics := attributeMustaches(t, `<div a="{{x}}-{{y}}"></div>`)
		if len(diagnostics) != 0 {
			t.Fatalf("unexpected diagnostics: %v", diagnostics)
		}
		if diff := cmp.Diff([]string{"x", "y"}, mustacheValues(mustaches)); diff != "" {
			t.Errorf("values mismatch (-want +got):\n%s", diff)
		}
	})
}

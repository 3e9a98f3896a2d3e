package interp

import (
	"testing"

	"github.com/cwbudde/golox/internal/lexer"
)

func tok(name string) lexer.Token {
	return lexer.Token{Type: lexer.IDENTIFIER, Lexeme: name, Line: 1}
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", 1.0, true)

	v, err := env.Get("a", tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(float64) != 1.0 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestEnvironmentGetUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get("missing", tok("missing"))
	if err == nil || err.Error() != "Undefined variable 'missing'.\n[line 1]" {
		t.Fatalf("got error %v, want undefined-variable message", err)
	}
}

func TestEnvironmentGetUninitializedIsError(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", nil, false)
	_, err := env.Get("a", tok("a"))
	if err == nil || err.Error() != "Uninitialized variable 'a'.\n[line 1]" {
		t.Fatalf("got error %v, want uninitialized-variable message", err)
	}
}

func TestEnvironmentAssignWalksEnclosingChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", 1.0, true)
	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign("a", 2.0, tok("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := outer.Get("a", tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(float64) != 2.0 {
		t.Errorf("assignment through enclosing chain didn't take effect: got %v", v)
	}
}

func TestEnvironmentAssignUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	err := env.Assign("missing", 1.0, tok("missing"))
	if err == nil || err.Error() != "Undefined variable 'missing'.\n[line 1]" {
		t.Fatalf("got error %v, want undefined-variable message", err)
	}
}

func TestEnvironmentGetAtAndAssignAtUseExactHop(t *testing.T) {
	root := NewEnvironment()
	root.Define("a", "root", true)
	mid := NewEnclosedEnvironment(root)
	mid.Define("a", "mid", true)
	leaf := NewEnclosedEnvironment(mid)

	if v := leaf.GetAt(1, "a"); v.(string) != "mid" {
		t.Errorf("GetAt(1) got %v, want 'mid'", v)
	}
	if v := leaf.GetAt(2, "a"); v.(string) != "root" {
		t.Errorf("GetAt(2) got %v, want 'root'", v)
	}

	leaf.AssignAt(2, "a", "changed")
	if v, _ := root.Get("a", tok("a")); v.(string) != "changed" {
		t.Errorf("AssignAt(2) didn't reach root: got %v", v)
	}
}

func TestEnvironmentGetAtPanicsOnBadHopDistance(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-range hop distance")
		}
	}()
	root := NewEnvironment()
	root.GetAt(1, "a")
}

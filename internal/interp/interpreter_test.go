package interp

import (
	"bytes"
	"testing"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// runProgram lexes, parses, resolves, and interprets source against a fresh
// Interpreter, returning captured stdout and any error produced.
func runProgram(t *testing.T, source string) (string, error) {
	t.Helper()

	tokens := lexer.New(source, nil).Scan()

	p := parser.New(tokens, nil)
	prog := p.Parse()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	res := resolver.New(nil)
	res.Resolve(prog)
	if errs := res.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected resolve errors: %v", errs)
	}

	var out bytes.Buffer
	in := New(WithStdout(&out))
	in.SetLocals(res.Locals())

	_, err := in.Interpret(prog)
	return out.String(), err
}

func TestInterpretArithmeticAndPrint(t *testing.T) {
	out, err := runProgram(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, err := runProgram(t, `print "a" + "b";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ab\n" {
		t.Errorf("got %q, want %q", out, "ab\n")
	}
}

func TestInterpretDivideByZeroIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print 1 / 0;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Error() != "Cannot divide by zero.\n[line 1]" {
		t.Errorf("got %q, want divide-by-zero message", err.Error())
	}
}

func TestInterpretAddingNumberAndBoolIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print 1 + true;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Error() != "Operands must be two numbers or either operands must be a string.\n[line 1]" {
		t.Errorf("got %q", err.Error())
	}
}

func TestInterpretClosureCapturesSharedCounter(t *testing.T) {
	out, err := runProgram(t, `
fun makeCounter() {
  var i = 0;
  fun increment() {
    i = i + 1;
    print i;
  }
  return increment;
}
var counter = makeCounter();
counter();
counter();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want %q", out, "1\n2\n")
	}
}

func TestInterpretLexicalScopeNotDynamic(t *testing.T) {
	out, err := runProgram(t, `
var a = "global";
fun showA() {
  print a;
}
fun run() {
  var a = "local";
  showA();
}
run();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "global\n" {
		t.Errorf("got %q, want %q (lexical scope, not dynamic)", out, "global\n")
	}
}

func TestInterpretClassConstructorAndMethodCall(t *testing.T) {
	out, err := runProgram(t, `
class Greeter {
  init(name) {
    this.name = name;
  }
  greet() {
    print "hi " + this.name;
  }
}
var g = Greeter("world");
g.greet();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi world\n" {
		t.Errorf("got %q, want %q", out, "hi world\n")
	}
}

func TestInterpretSuperCallsParentMethod(t *testing.T) {
	out, err := runProgram(t, `
class Animal {
  speak() {
    print "...";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print "woof";
  }
}
Dog().speak();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "...\nwoof\n" {
		t.Errorf("got %q, want %q", out, "...\nwoof\n")
	}
}

func TestInterpretInitializerReturnsThisImplicitly(t *testing.T) {
	out, err := runProgram(t, `
class Box {
  init(v) {
    this.v = v;
  }
}
var b = Box(5);
print b.v;
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "5\n" {
		t.Errorf("got %q, want %q", out, "5\n")
	}
}

func TestInterpretAndOrReturnDeterminingOperandUnchanged(t *testing.T) {
	out, err := runProgram(t, `
print nil or "default";
print 1 and 2;
print false and "unreached";
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "default\n2\nfalse\n" {
		t.Errorf("got %q, want %q", out, "default\n2\nfalse\n")
	}
}

func TestInterpretRuntimeErrorCarriesCallStack(t *testing.T) {
	_, err := runProgram(t, `
fun inner() {
  return 1 + true;
}
fun outer() {
  return inner();
}
outer();
`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	re, ok := err.(*errors.RuntimeError)
	if !ok {
		t.Fatalf("got %T, want *errors.RuntimeError", err)
	}
	if len(re.Stack) != 2 {
		t.Fatalf("got %d stack frames, want 2 (inner, outer): %v", len(re.Stack), re.Stack)
	}
}

func TestInterpretForLoopAccumulates(t *testing.T) {
	out, err := runProgram(t, `
var sum = 0;
for (var i = 1; i <= 3; i = i + 1) {
  sum = sum + i;
}
print sum;
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6\n" {
		t.Errorf("got %q, want %q", out, "6\n")
	}
}

package lox

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func runSession(source string) (string, *Result) {
	var out bytes.Buffer
	l := New(WithOutput(&out))
	result := l.Run(source)
	return out.String(), result
}

func TestRunPrintProgram(t *testing.T) {
	out, result := runSession(`print "hello, " + "world";`)
	if len(result.StaticErrors) != 0 || result.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", result.StaticErrors, result.RuntimeError)
	}
	snaps.MatchSnapshot(t, out)
}

func TestRunClassProgram(t *testing.T) {
	out, result := runSession(`
class Counter {
  init() {
    this.count = 0;
  }
  increment() {
    this.count = this.count + 1;
    print this.count;
  }
}
var c = Counter();
c.increment();
c.increment();
`)
	if len(result.StaticErrors) != 0 || result.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", result.StaticErrors, result.RuntimeError)
	}
	snaps.MatchSnapshot(t, out)
}

func TestRunReportsStaticErrors(t *testing.T) {
	_, result := runSession(`var a = ;`)
	if len(result.StaticErrors) == 0 {
		t.Fatal("expected at least one static error")
	}
	snaps.MatchSnapshot(t, strings.Join(result.StaticErrors, "\n"))
}

func TestRunReportsRuntimeError(t *testing.T) {
	_, result := runSession(`print 1 + true;`)
	if result.RuntimeError == nil {
		t.Fatal("expected a runtime error")
	}
	snaps.MatchSnapshot(t, result.RuntimeError.Error())
}

func TestRunRuntimeErrorTraceIncludesCallingFunction(t *testing.T) {
	_, result := runSession(`
fun fail() {
  return 1 + true;
}
fail();
`)
	if result.RuntimeError == nil {
		t.Fatal("expected a runtime error")
	}
	trace := result.Trace()
	if !strings.Contains(trace, "fail") {
		t.Errorf("trace %q should mention the failing function", trace)
	}
}

func TestRunClosureResolvedOnEarlierLineSurvivesLaterLines(t *testing.T) {
	var out bytes.Buffer
	session := New(WithOutput(&out))

	line1 := `fun counter() {
  var i = 0;
  fun inc() {
    i = i + 1;
    print i;
  }
  return inc;
}`
	if r := session.Run(line1); len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	if r := session.Run(`var c = counter();`); len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	r := session.Run(`c();`)
	if len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	if out.String() != "1\n" {
		t.Errorf("got %q, want %q (inc's closure, resolved on line 1, must still resolve on line 3)", out.String(), "1\n")
	}
}

func TestRunPersistsGlobalsAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	session := New(WithOutput(&out))

	if r := session.Run(`var count = 0;`); len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	if r := session.Run(`count = count + 1;`); len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	r := session.Run(`print count;`)
	if len(r.StaticErrors) != 0 || r.RuntimeError != nil {
		t.Fatalf("unexpected errors: %v %v", r.StaticErrors, r.RuntimeError)
	}
	if out.String() != "1\n" {
		t.Errorf("got %q, want %q (globals should persist across Run calls)", out.String(), "1\n")
	}
}

func TestRunBareExpressionReturnsValue(t *testing.T) {
	_, result := runSession(`1 + 2`)
	if !result.HasValue {
		t.Fatal("expected HasValue for a bare expression")
	}
	if Stringify(result.Value) != "3" {
		t.Errorf("got %v, want 3", result.Value)
	}
}

func TestRunDisablesNativesViaConfig(t *testing.T) {
	cfg := Defaults()
	cfg.EnableClock = false

	var out bytes.Buffer
	session := New(WithOutput(&out), WithConfig(cfg))
	result := session.Run(`print clock;`)
	if result.RuntimeError == nil {
		t.Fatal("expected an undefined-variable error with clock disabled")
	}
}

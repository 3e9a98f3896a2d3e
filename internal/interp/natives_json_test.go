package interp

import "testing"

func TestJSONEncodeScalars(t *testing.T) {
	out, err := runProgram(t, `
print jsonEncode("hi");
print jsonEncode(1);
print jsonEncode(true);
print jsonEncode(nil);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\"hi\"\n1\ntrue\nnull\n" {
		t.Errorf("got %q", out)
	}
}

func TestJSONEncodeInstanceFields(t *testing.T) {
	out, err := runProgram(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
}
print jsonEncode(Point(1, 2));
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "{\"x\":1,\"y\":2}\n" {
		t.Errorf("got %q", out)
	}
}

func TestJSONDecodeObjectFieldAccess(t *testing.T) {
	out, err := runProgram(t, `
class Person {
  init() {
    this.name = "ada";
    this.age = 36;
  }
}
var obj = jsonDecode(jsonEncode(Person()));
print obj.name;
print obj.age;
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ada\n36\n" {
		t.Errorf("got %q", out)
	}
}

func TestJSONDecodeInvalidJSONIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `jsonDecode("not json");`)
	if err == nil {
		t.Fatal("expected a runtime error for invalid JSON")
	}
}

func TestJSONRoundTripString(t *testing.T) {
	out, err := runProgram(t, `print jsonDecode(jsonEncode("round trip"));`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "round trip\n" {
		t.Errorf("got %q", out)
	}
}

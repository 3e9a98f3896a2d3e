package lexer

import "testing"

func collectTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func assertTypes(t *testing.T, got []TokenType, want ...TokenType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("token %d: got %s, want %s", i, got[i], w)
		}
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"single char", "(){},.-+;*", []TokenType{LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, EOF}},
		{"bang", "! !=", []TokenType{BANG, BANG_EQUAL, EOF}},
		{"equal", "= ==", []TokenType{EQUAL, EQUAL_EQUAL, EOF}},
		{"less", "< <=", []TokenType{LESS, LESS_EQUAL, EOF}},
		{"greater", "> >=", []TokenType{GREATER, GREATER_EQUAL, EOF}},
		{"slash not comment", "/ a", []TokenType{SLASH, IDENTIFIER, EOF}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(tc.input, nil)
			assertTypes(t, collectTypes(l.Scan()), tc.want...)
		})
	}
}

func TestScanSkipsLineComments(t *testing.T) {
	l := New("var a = 1; // a comment\nvar b = 2;", nil)
	types := collectTypes(l.Scan())
	for _, typ := range types {
		if typ == ILLEGAL {
			t.Fatalf("unexpected ILLEGAL token in %v", types)
		}
	}
	assertTypes(t, types, VAR, IDENTIFIER, EQUAL, NUMBER, SEMICOLON, VAR, IDENTIFIER, EQUAL, NUMBER, SEMICOLON, EOF)
}

func TestScanKeywords(t *testing.T) {
	l := New("and class else false for fun if nil or print return super this true var while", nil)
	assertTypes(t, collectTypes(l.Scan()),
		AND, CLASS, ELSE, FALSE, FOR, FUN, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE, EOF)
}

func TestScanNumberLiteral(t *testing.T) {
	l := New("123 45.67", nil)
	tokens := l.Scan()
	assertTypes(t, collectTypes(tokens), NUMBER, NUMBER, EOF)

	if tokens[0].Literal.(float64) != 123 {
		t.Errorf("got %v, want 123", tokens[0].Literal)
	}
	if tokens[1].Literal.(float64) != 45.67 {
		t.Errorf("got %v, want 45.67", tokens[1].Literal)
	}
}

func TestScanStringLiteral(t *testing.T) {
	l := New(`"hello world"`, nil)
	tokens := l.Scan()
	assertTypes(t, collectTypes(tokens), STRING, EOF)
	if tokens[0].Literal.(string) != "hello world" {
		t.Errorf("got %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	var messages []string
	l := New(`"unterminated`, func(line int, msg string) {
		messages = append(messages, msg)
	})
	l.Scan()

	if len(messages) != 1 || messages[0] != "Unterminated string." {
		t.Fatalf("got %v, want [\"Unterminated string.\"]", messages)
	}
}

func TestScanTracksLineAndColumn(t *testing.T) {
	l := New("var a\n= 1;", nil)
	tokens := l.Scan()

	if tokens[0].Line != 1 || tokens[0].Pos.Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", tokens[0].Line, tokens[0].Pos.Column)
	}

	// "=" is the first token on line 2.
	var eq Token
	for _, tok := range tokens {
		if tok.Type == EQUAL {
			eq = tok
		}
	}
	if eq.Line != 2 || eq.Pos.Column != 1 {
		t.Errorf("'=' token at %d:%d, want 2:1", eq.Line, eq.Pos.Column)
	}
}

func TestScanMultilineStringTracksColumnAfter(t *testing.T) {
	l := New("\"a\nb\" + 1", nil)
	tokens := l.Scan()

	var plus Token
	for _, tok := range tokens {
		if tok.Type == PLUS {
			plus = tok
		}
	}
	if plus.Line != 2 {
		t.Fatalf("'+' token reported on line %d, want 2", plus.Line)
	}
	// Line 2 reads `b" + 1`, so '+' is the fourth column.
	if plus.Pos.Column != 4 {
		t.Errorf("'+' token at column %d, want 4", plus.Pos.Column)
	}
}

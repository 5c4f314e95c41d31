package cpp

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
)

func sourceToExpectFile(s string) string {
	return s[0:len(s)-2] + ".exp"
}

func lexTestCase(t *testing.T, hfile string, expectfile string) {
	f, err := os.Open(hfile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ef, err := os.Open(expectfile)
	if err != nil {
		t.Fatal(err)
	}
	defer ef.Close()
	scanner := bufio.NewScanner(ef)
	errorReported := false
	lexer := Lex(hfile, f)
	for {
		expectedTokS := ""
		if scanner.Scan() {
			expectedTokS = scanner.Text()
		}
		tok, err := lexer.Next()
		if err != nil {
			t.Errorf("Testfile %s failed because %s", hfile, err)
			return
		}
		tokS := fmt.Sprintf("%s:%s:%d:%d", tok.Kind, tok.Val, tok.Pos.Line, tok.Pos.Col)
		if tokS != expectedTokS && !errorReported {
			if expectedTokS == "" {
				t.Errorf("Test failed %s - extra token %s", hfile, tokS)
			} else {
				t.Errorf("Test failed %s: got %s expected %s ", hfile, tokS, expectedTokS)
			}
			errorReported = true
		}
		if tok.Kind == EOF {
			break
		}
	}
}

func TestLexer(t *testing.T) {
	info, err := os.ReadDir("lextests")
	if err != nil {
		t.Fatal(err)
	}
	for i := range info {
		filename := info[i].Name()
		if !strings.HasSuffix(filename, ".h") {
			continue
		}
		expectPath := sourceToExpectFile(filename)
		lexTestCase(t, "lextests/"+filename, "lextests/"+expectPath)
	}
}

type tok struct {
	Kind TokenKind
	Val  string
}

func lexAll(t *testing.T, src string) []tok {
	t.Helper()
	s := NewScanner("test.h", src)
	var ret []tok
	for {
		tk, err := s.Next()
		if err != nil {
			t.Fatalf("lexing %q: %s", src, err)
		}
		if tk.Kind == EOF {
			return ret
		}
		ret = append(ret, tok{tk.Kind, tk.Val})
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		src    string
		expect []tok
	}{
		{
			src: "void switchThread();",
			expect: []tok{
				{VOID, "void"}, {IDENT, "switchThread"}, {LPAREN, "("}, {RPAREN, ")"}, {SEMICOLON, ";"},
			},
		},
		{
			src: "int64_t unloadModule(int64_t pluginHandle);",
			expect: []tok{
				{INT64, "int64_t"}, {IDENT, "unloadModule"}, {LPAREN, "("},
				{INT64, "int64_t"}, {IDENT, "pluginHandle"}, {RPAREN, ")"}, {SEMICOLON, ";"},
			},
		},
		{
			src: " int64_t addDrawingObject double void std::tuple std::vector json std::optional std::string\n",
			expect: []tok{
				{INT64, "int64_t"}, {IDENT, "addDrawingObject"}, {DOUBLE, "double"}, {VOID, "void"},
				{TUPLE, "std::tuple"}, {VECTOR, "std::vector"}, {JSON, "json"},
				{OPTIONAL, "std::optional"}, {STRING, "std::string"},
			},
		},
		{
			src: " int64_t,addDrawingObject,double,void,std::tuple,std::vector,json;\n",
			expect: []tok{
				{INT64, "int64_t"}, {COMMA, ","}, {IDENT, "addDrawingObject"}, {COMMA, ","},
				{DOUBLE, "double"}, {COMMA, ","}, {VOID, "void"}, {COMMA, ","},
				{TUPLE, "std::tuple"}, {COMMA, ","}, {VECTOR, "std::vector"}, {COMMA, ","},
				{JSON, "json"}, {SEMICOLON, ";"},
			},
		},
		{
			src: "std::tuple<int64_t, double, std::vector<double>>\n",
			expect: []tok{
				{TUPLE, "std::tuple"}, {LSS, "<"}, {INT64, "int64_t"}, {COMMA, ","},
				{DOUBLE, "double"}, {COMMA, ","}, {VECTOR, "std::vector"}, {LSS, "<"},
				{DOUBLE, "double"}, {GTR, ">"}, {GTR, ">"},
			},
		},
		{
			src: "int8_t int16_t int32_t uint8_t uint16_t uint32_t uint64_t bool",
			expect: []tok{
				{INT8, "int8_t"}, {INT16, "int16_t"}, {INT32, "int32_t"}, {UINT8, "uint8_t"},
				{UINT16, "uint16_t"}, {UINT32, "uint32_t"}, {UINT64, "uint64_t"}, {BOOL, "bool"},
			},
		},
		{
			src: "std::optional<std::string> viewLabel = {}",
			expect: []tok{
				{OPTIONAL, "std::optional"}, {LSS, "<"}, {STRING, "std::string"}, {GTR, ">"},
				{IDENT, "viewLabel"}, {ASSIGN, "="}, {LBRACE, "{"}, {RBRACE, "}"},
			},
		},
		{
			// Keywords only match on an identifier boundary.
			src: "doubleValue voidness json2 int64_tx _bool boolean",
			expect: []tok{
				{IDENT, "doubleValue"}, {IDENT, "voidness"}, {IDENT, "json2"},
				{IDENT, "int64_tx"}, {IDENT, "_bool"}, {IDENT, "boolean"},
			},
		},
		{
			src:    "// DEPRECATED START\n",
			expect: nil,
		},
		{
			src:    "// no newline at end",
			expect: nil,
		},
	}
	for _, tc := range tests {
		got := lexAll(t, tc.src)
		if !reflect.DeepEqual(got, tc.expect) {
			t.Errorf("lexing %q:\n got %v\nwant %v", tc.src, got, tc.expect)
		}
	}
}

func TestWhitespaceAndCommentsDoNotChangeTokens(t *testing.T) {
	plain := "double wait(double dt, std::optional<bool> simulationTime = {});"
	padded := "  double\twait (\n double dt , // seconds\n std::optional < bool >simulationTime=\r\n{ } ) ; // done"
	a := lexAll(t, plain)
	b := lexAll(t, padded)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("token streams differ:\n%v\n%v", a, b)
	}
}

func TestAdvanceAtEOFIsIdempotent(t *testing.T) {
	s := NewScanner("test.h", "void")
	s.Advance()
	for i := 0; i < 3; i++ {
		tk, err := s.Peek()
		if err != nil {
			t.Fatal(err)
		}
		if tk.Kind != EOF {
			t.Fatalf("expected EOF, got %s", tk.Kind)
		}
		s.Advance()
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewScanner("test.h", "json unpackTable")
	a, _ := s.Peek()
	b, _ := s.Peek()
	if a != b || a.Kind != JSON {
		t.Fatalf("peek consumed input: %v %v", a, b)
	}
	s.Advance()
	c, _ := s.Peek()
	if c.Kind != IDENT || c.Val != "unpackTable" {
		t.Fatalf("unexpected token %v", c)
	}
}

func TestScanError(t *testing.T) {
	for _, src := range []string{"#include <vector>", "void f(int64_t* p);", "std::map<int64_t>", "/ x", "void f(); /* c */"} {
		s := NewScanner("bad.h", src)
		var err error
		for i := 0; i < 100; i++ {
			var tk *Token
			tk, err = s.Next()
			if err != nil || tk.Kind == EOF {
				break
			}
		}
		if err == nil {
			t.Errorf("%q: expected a scan error", src)
			continue
		}
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			t.Errorf("%q: expected *ScanError, got %T", src, err)
		}
		var loc ErrorLoc
		if !errors.As(err, &loc) || loc.Pos.File != "bad.h" {
			t.Errorf("%q: expected location in error, got %v", src, err)
		}
		// Errors are sticky.
		tk, again := s.Peek()
		if again == nil || tk.Kind != ERROR {
			t.Errorf("%q: error was not sticky", src)
		}
	}
}

func TestScanErrorPosition(t *testing.T) {
	s := NewScanner("bad.h", "void f();\nvoid g(int64_t* p);")
	var err error
	for err == nil {
		_, err = s.Next()
	}
	var loc ErrorLoc
	if !errors.As(err, &loc) {
		t.Fatalf("expected ErrorLoc, got %T", err)
	}
	if loc.Pos.Line != 2 || loc.Pos.Col != 15 {
		t.Fatalf("unexpected position %s", loc.Pos)
	}
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Char != '*' {
		t.Fatalf("unexpected error %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLexReadError(t *testing.T) {
	s := Lex("broken.h", failingReader{})
	tk, err := s.Peek()
	if err == nil || tk.Kind != ERROR {
		t.Fatalf("expected read error, got %v %v", tk, err)
	}
}

func TestKeywordsLongestFirst(t *testing.T) {
	for i := 1; i < len(keywords); i++ {
		if len(keywords[i-1].Lexeme) < len(keywords[i].Lexeme) {
			t.Fatalf("keyword %q is before longer %q", keywords[i-1].Lexeme, keywords[i].Lexeme)
		}
	}
	for _, kw := range keywords {
		if kw.Kind.String() != kw.Lexeme {
			t.Errorf("kind %d prints as %q, want %q", kw.Kind, kw.Kind.String(), kw.Lexeme)
		}
	}
}

func TestStreamScanner(t *testing.T) {
	cs := NewStringStream("api.h", "\tbool x")
	if cs.Peek(10) != "\tbool x" || cs.EOF() {
		t.Fatalf("unexpected stream state")
	}
	cs.Advance(1)
	if cs.Pos().Col != 5 {
		t.Fatalf("tab should advance column by 4, got %s", cs.Pos())
	}
	s := NewStreamScanner(cs)
	tk, err := s.Next()
	if err != nil || tk.Kind != BOOL || tk.Pos.Col != 5 {
		t.Fatalf("unexpected token %v %v", tk, err)
	}
	cs.Advance(100)
	if !cs.EOF() {
		t.Fatal("expected end of stream")
	}
}

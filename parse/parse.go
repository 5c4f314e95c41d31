package parse

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/IntelligentRoboticsLab/coppelia-zmq/cpp"
)

// TokenStream is a single token lookahead over a token sequence.
// *cpp.Scanner implements it.
type TokenStream interface {
	// Peek returns the current token without consuming it.
	Peek() (*cpp.Token, error)
	// Advance discards the current token.
	Advance()
}

// ParseError is a token that does not fit the grammar at its position.
type ParseError struct {
	Expected []cpp.TokenKind
	Found    cpp.Token
}

func (e *ParseError) Error() string {
	found := e.Found.Kind.String()
	if e.Found.Kind == cpp.IDENT {
		found = fmt.Sprintf("ident %s", e.Found.Val)
	}
	if len(e.Expected) == 1 {
		return fmt.Sprintf("syntax error: expected %s got %s", e.Expected[0], found)
	}
	exp := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		exp[i] = k.String()
	}
	return fmt.Sprintf("syntax error: expected one of %s got %s", strings.Join(exp, ", "), found)
}

// Kinds which may start a type, in the order they are reported.
var typeStart = []cpp.TokenKind{
	cpp.VOID, cpp.BOOL,
	cpp.INT8, cpp.INT16, cpp.INT32, cpp.INT64,
	cpp.UINT8, cpp.UINT16, cpp.UINT32, cpp.UINT64,
	cpp.DOUBLE, cpp.STRING, cpp.JSON,
	cpp.VECTOR, cpp.OPTIONAL, cpp.TUPLE,
}

var primitiveLUT = map[cpp.TokenKind]*Primitive{
	cpp.VOID:   TVoid,
	cpp.BOOL:   TBool,
	cpp.INT8:   TInt8,
	cpp.INT16:  TInt16,
	cpp.INT32:  TInt32,
	cpp.INT64:  TInt64,
	cpp.UINT8:  TUInt8,
	cpp.UINT16: TUInt16,
	cpp.UINT32: TUInt32,
	cpp.UINT64: TUInt64,
	cpp.DOUBLE: TDouble,
	cpp.STRING: TString,
	cpp.JSON:   TJSON,
}

type parser struct {
	ts   TokenStream
	curt *cpp.Token
}

type parseErrorBreakOut struct {
	err error
}

// Parse reads function declarations from ts until EOF.
// There is no error recovery, on failure no signatures are returned.
func Parse(ts TokenStream) (sigs []*FunctionSignature, errRet error) {
	p := &parser{}
	p.ts = ts

	defer func() {
		if e := recover(); e != nil {
			peb := e.(parseErrorBreakOut) // Will re-panic if not a breakout.
			sigs = nil
			errRet = peb.err
		}
	}()
	p.peek()
	return p.parseProgram(), nil
}

// ParseString scans and parses src. fname is used in error positions.
func ParseString(fname, src string) ([]*FunctionSignature, error) {
	return Parse(cpp.NewScanner(fname, src))
}

func (p *parser) errorPos(err error, pos cpp.FilePos) {
	if os.Getenv("HDRDEBUG") == "true" {
		err = fmt.Errorf("%w\n%s", err, debug.Stack())
	}
	panic(parseErrorBreakOut{cpp.ErrWithLoc(err, pos)})
}

func (p *parser) unexpected(expected ...cpp.TokenKind) {
	p.errorPos(&ParseError{Expected: expected, Found: *p.curt}, p.curt.Pos)
}

func (p *parser) expect(k cpp.TokenKind) *cpp.Token {
	t := p.curt
	if t.Kind != k {
		p.unexpected(k)
	}
	p.next()
	return t
}

func (p *parser) peek() {
	t, err := p.ts.Peek()
	if err != nil {
		// Scan errors already carry their location.
		panic(parseErrorBreakOut{err})
	}
	p.curt = t
}

func (p *parser) next() {
	p.ts.Advance()
	p.peek()
}

func (p *parser) parseProgram() []*FunctionSignature {
	ret := []*FunctionSignature{}
	for p.curt.Kind != cpp.EOF {
		ret = append(ret, p.parseFunctionDecl())
	}
	return ret
}

func (p *parser) parseFunctionDecl() *FunctionSignature {
	f := &FunctionSignature{}
	f.Pos = p.curt.Pos
	f.RetType = p.parseType()
	f.Name = p.expect(cpp.IDENT).Val
	p.expect('(')
	if p.curt.Kind != ')' {
		for {
			f.Args = append(f.Args, p.parseArg())
			if p.curt.Kind == ',' {
				p.next()
				continue
			}
			break
		}
	}
	if p.curt.Kind != ')' {
		p.unexpected(',', ')')
	}
	p.next()
	p.expect(';')
	return f
}

func (p *parser) parseArg() Arg {
	var a Arg
	a.Type = p.parseType()
	a.Name = p.expect(cpp.IDENT).Val
	if p.curt.Kind == '=' {
		p.next()
		p.expect('{')
		p.expect('}')
		a.HasDefault = true
	}
	return a
}

func (p *parser) parseType() TypeNode {
	kind := p.curt.Kind
	if prim, ok := primitiveLUT[kind]; ok {
		p.next()
		return prim
	}
	switch kind {
	case cpp.VECTOR:
		p.next()
		p.expect('<')
		elem := p.parseType()
		p.expect('>')
		return &Vector{Elem: elem}
	case cpp.OPTIONAL:
		p.next()
		p.expect('<')
		inner := p.parseType()
		p.expect('>')
		return &Optional{Inner: inner}
	case cpp.TUPLE:
		p.next()
		p.expect('<')
		t := &Tuple{}
		for {
			t.Elems = append(t.Elems, p.parseType())
			if p.curt.Kind == ',' {
				p.next()
				continue
			}
			break
		}
		if p.curt.Kind != '>' {
			p.unexpected(',', '>')
		}
		p.next()
		return t
	default:
		p.unexpected(typeStart...)
	}
	panic("unreachable")
}

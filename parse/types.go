package parse

import (
	"fmt"
	"strings"
)

// TypeNode is one of *Primitive, *Vector, *Optional or *Tuple.
type TypeNode interface {
	// String returns the canonical C++ spelling of the type.
	String() string
	isType()
}

type PrimitiveKind int

const (
	Void PrimitiveKind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Double
	String
	JSON
)

var primSpelling = [...]string{
	Void:   "void",
	Bool:   "bool",
	Int8:   "int8_t",
	Int16:  "int16_t",
	Int32:  "int32_t",
	Int64:  "int64_t",
	UInt8:  "uint8_t",
	UInt16: "uint16_t",
	UInt32: "uint32_t",
	UInt64: "uint64_t",
	Double: "double",
	String: "std::string",
	JSON:   "json",
}

var primShortName = [...]string{
	Void:   "Void",
	Bool:   "Bool",
	Int8:   "I8",
	Int16:  "I16",
	Int32:  "I32",
	Int64:  "I64",
	UInt8:  "U8",
	UInt16: "U16",
	UInt32: "U32",
	UInt64: "U64",
	Double: "F64",
	String: "String",
	JSON:   "Json",
}

type Primitive struct {
	Kind PrimitiveKind
}

type Vector struct {
	Elem TypeNode
}

type Optional struct {
	Inner TypeNode
}

// Tuple elements are positional, their order is significant.
type Tuple struct {
	Elems []TypeNode
}

func (*Primitive) isType() {}
func (*Vector) isType()    {}
func (*Optional) isType()  {}
func (*Tuple) isType()     {}

func (p *Primitive) String() string { return primSpelling[p.Kind] }
func (v *Vector) String() string    { return "std::vector<" + v.Elem.String() + ">" }
func (o *Optional) String() string  { return "std::optional<" + o.Inner.String() + ">" }

func (t *Tuple) String() string {
	elems := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.String()
	}
	return "std::tuple<" + strings.Join(elems, ", ") + ">"
}

// All the primitive types.

var TVoid *Primitive = &Primitive{Void}
var TBool *Primitive = &Primitive{Bool}
var TJSON *Primitive = &Primitive{JSON}
var TString *Primitive = &Primitive{String}

// Signed
var TInt8 *Primitive = &Primitive{Int8}
var TInt16 *Primitive = &Primitive{Int16}
var TInt32 *Primitive = &Primitive{Int32}
var TInt64 *Primitive = &Primitive{Int64}

// Unsigned
var TUInt8 *Primitive = &Primitive{UInt8}
var TUInt16 *Primitive = &Primitive{UInt16}
var TUInt32 *Primitive = &Primitive{UInt32}
var TUInt64 *Primitive = &Primitive{UInt64}

// Floats
var TDouble *Primitive = &Primitive{Double}

// Describe returns a debug form of t, e.g. Tuple([Vector(U8), Vector(I64)]).
func Describe(t TypeNode) string {
	switch t := t.(type) {
	case *Primitive:
		return primShortName[t.Kind]
	case *Vector:
		return fmt.Sprintf("Vector(%s)", Describe(t.Elem))
	case *Optional:
		return fmt.Sprintf("Optional(%s)", Describe(t.Inner))
	case *Tuple:
		elems := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Describe(e)
		}
		return fmt.Sprintf("Tuple([%s])", strings.Join(elems, ", "))
	}
	panic(t)
}

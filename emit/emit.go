package emit

import (
	"fmt"
	"io"

	"github.com/IntelligentRoboticsLab/coppelia-zmq/parse"
)

type emitter struct {
	o   io.Writer
	err error
}

// Emit writes the canonical declaration of each signature, one per line.
func Emit(sigs []*parse.FunctionSignature, o io.Writer) error {
	e := &emitter{
		o: o,
	}
	for _, f := range sigs {
		e.emitFunction(f)
	}
	return e.err
}

// Dump writes the debug form of each signature, one per line.
func Dump(sigs []*parse.FunctionSignature, o io.Writer) error {
	e := &emitter{
		o: o,
	}
	for _, f := range sigs {
		e.emit("%s\n", f.Describe())
	}
	return e.err
}

func (e *emitter) emit(s string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.o, s, args...)
}

func (e *emitter) emitFunction(f *parse.FunctionSignature) {
	e.emit("%s %s(", f.RetType, f.Name)
	for i, a := range f.Args {
		if i != 0 {
			e.emit(", ")
		}
		e.emit("%s", a)
	}
	e.emit(");\n")
}

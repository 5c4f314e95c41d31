package parse

import (
	"fmt"
	"strings"

	"github.com/IntelligentRoboticsLab/coppelia-zmq/cpp"
)

type Arg struct {
	Type TypeNode
	Name string
	// Set when the argument is followed by '= {}'.
	HasDefault bool
}

func (a Arg) String() string {
	if a.HasDefault {
		return fmt.Sprintf("%s %s = {}", a.Type, a.Name)
	}
	return fmt.Sprintf("%s %s", a.Type, a.Name)
}

// FunctionSignature is a single declaration from a header.
type FunctionSignature struct {
	RetType TypeNode
	Name    string
	Args    []Arg
	Pos     cpp.FilePos
}

// String returns the canonical declaration, terminated by ';'.
func (f *FunctionSignature) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s %s(%s);", f.RetType, f.Name, strings.Join(args, ", "))
}

// Describe returns a debug form of f, e.g.
// FunctionSignature(return=Void, name="switchThread", args=[]).
func (f *FunctionSignature) Describe() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = fmt.Sprintf("Arg(%s, %q, %t)", Describe(a.Type), a.Name, a.HasDefault)
	}
	return fmt.Sprintf("FunctionSignature(return=%s, name=%q, args=[%s])",
		Describe(f.RetType), f.Name, strings.Join(args, ", "))
}

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/IntelligentRoboticsLab/coppelia-zmq/cpp"
)

// ReportError prints err to w. If err carries a source location that can
// still be read, the offending line is printed with a caret under the column.
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
	fmt.Fprintln(w, "")
	var errLoc cpp.ErrorLoc
	if !errors.As(err, &errLoc) {
		return
	}
	pos := errLoc.Pos
	f, err := os.Open(pos.File)
	if err != nil {
		return
	}
	defer f.Close()
	ReportLine(w, f, pos)
}

// ReportLine prints the line of src at pos and a caret under pos.Col.
func ReportLine(w io.Writer, src io.Reader, pos cpp.FilePos) {
	b := bufio.NewReader(src)
	lineno := 1
	for {
		done := false
		line, err := b.ReadString('\n')
		if err != nil {
			done = true
		}
		if lineno == pos.Line {
			fmt.Fprintf(w, "%s", line)
			if len(line) == 0 || line[len(line)-1] != '\n' {
				fmt.Fprintln(w, "")
			}
			linelen := 0
			for _, v := range line {
				switch v {
				case '\t':
					linelen += 4
				case '\n':
					// nothing.
				default:
					linelen += 1
				}
			}
			// EOF errors point one past the end of the line.
			if pos.Col > linelen {
				linelen = pos.Col
			}
			for i := 0; i < linelen; i++ {
				if i+1 == pos.Col {
					fmt.Fprintf(w, "%c", '^')
				} else if i+1 < pos.Col {
					fmt.Fprintf(w, "%c", ' ')
				}
			}
			fmt.Fprintln(w, "")
			return
		}
		lineno += 1
		if done {
			break
		}
	}
}

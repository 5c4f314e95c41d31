package cpp

// CharStream is a cursor over source text.
type CharStream interface {
	// Peek returns up to n bytes ahead of the cursor without consuming them.
	// Fewer bytes are returned near the end of input.
	Peek(n int) string
	// Advance consumes n bytes, stopping at the end of input.
	Advance(n int)
	EOF() bool
	// Pos is the position of the next unconsumed byte.
	Pos() FilePos
}

type stringStream struct {
	src string
	off int
	pos FilePos
}

// NewStringStream returns a CharStream over src. fname is only used for
// positions in error messages.
func NewStringStream(fname, src string) CharStream {
	return &stringStream{
		src: src,
		pos: FilePos{File: fname, Line: 1, Col: 1},
	}
}

func (s *stringStream) Peek(n int) string {
	end := s.off + n
	if end > len(s.src) {
		end = len(s.src)
	}
	return s.src[s.off:end]
}

func (s *stringStream) Advance(n int) {
	for ; n > 0 && s.off < len(s.src); n-- {
		switch s.src[s.off] {
		case '\n':
			s.pos.Line += 1
			s.pos.Col = 1
		case '\t':
			s.pos.Col += 4
		default:
			s.pos.Col += 1
		}
		s.off++
	}
}

func (s *stringStream) EOF() bool {
	return s.off >= len(s.src)
}

func (s *stringStream) Pos() FilePos {
	return s.pos
}

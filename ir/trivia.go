package ir

type TriviaKind int

const (
	Spacing TriviaKind = iota
	LineComment
	BlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case Spacing:
		return "Spacing"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	default:
		return "<unknown trivia>"
	}
}

// Trivia is a run of spacing or a single comment. Text excludes the comment
// delimiters: a line comment holds what follows "//", a block comment what
// lies between "/*" and "*/".
type Trivia struct {
	Kind TriviaKind
	Text string
}

func (Trivia) node() {}

func (t Trivia) IsComment() bool {
	return t.Kind != Spacing
}

// Filler is the trivia of one structural slot, in source order.
type Filler []Trivia

func (Filler) node() {}

func (f Filler) IsEmpty() bool {
	return len(f) == 0
}

// Comments returns the comments in f, dropping spacing.
func (f Filler) Comments() []Trivia {
	var res []Trivia
	for _, t := range f {
		if t.IsComment() {
			res = append(res, t)
		}
	}
	return res
}

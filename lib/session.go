package lib

const (
	KeyClear  = "C"
	KeyResult = "="
)

// Session is a calculator screen: keys are appended to it, KeyResult
// replaces it with the evaluated result and KeyClear empties it. A digit,
// '.' or '(' pressed right after a result starts a new expression, while an
// operator continues from the result. A session must not be shared between
// goroutines.
type Session struct {
	screen     string
	showResult bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Screen() string {
	return s.screen
}

func (s *Session) Clear() {
	s.screen = ""
	s.showResult = false
}

// Press handles a single key. When the evaluation fails the screen keeps
// the expression so it can be corrected.
func (s *Session) Press(key string) error {
	switch key {
	case KeyClear:
		s.Clear()
	case KeyResult:
		result, err := Evaluate(s.screen)
		if err != nil {
			return err
		}
		s.screen = result
		s.showResult = true
	default:
		if startsOperand(key) {
			if s.showResult {
				s.screen = ""
			}
			s.showResult = false
		} else if key != " " && key != "\t" {
			s.showResult = false
		}
		s.screen += key
	}
	return nil
}

func startsOperand(key string) bool {
	if len(key) != 1 {
		return false
	}
	ch := rune(key[0])
	return isDigit(ch) || ch == '.' || ch == '('
}

// Type presses every character of keys in order and stops at the first
// failing key.
func (s *Session) Type(keys string) error {
	for _, ch := range keys {
		if err := s.Press(string(ch)); err != nil {
			return err
		}
	}
	return nil
}

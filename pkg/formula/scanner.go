package formula

import "strings"

// scanner holds the position of a left-to-right scan over the formula text.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) rest() string {
	return s.text[s.pos:]
}

func (s *scanner) eof() bool {
	return s.rest() == ""
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) consume(i int) string {
	consumed := s.rest()[:i]
	s.pos += i
	return consumed
}

func (s *scanner) consumeWhile(f func(b byte) bool) string {
	rest := s.rest()
	for i := 0; i < len(rest); i++ {
		if !f(rest[i]) {
			return s.consume(i)
		}
	}
	return s.consume(len(rest))
}

func (s *scanner) consumeWhileIn(set string) string {
	return s.consumeWhile(func(b byte) bool { return strings.IndexByte(set, b) >= 0 })
}

func (s *scanner) hasPrefixIn(prefixes ...string) string {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s.rest(), prefix) {
			return prefix
		}
	}
	return ""
}

func (s *scanner) consumePrefixIn(prefixes ...string) string {
	prefix := s.hasPrefixIn(prefixes...)
	s.consume(len(prefix))
	return prefix
}

func (s *scanner) consumeRuneIn(set string) string {
	return s.consumePrefixIn(strings.Split(set, "")...)
}

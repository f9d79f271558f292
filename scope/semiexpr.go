package scope

import "io"

// SemiExpression is a maximal run of tokens terminated by ';', '{', '}', or
// a preprocessor directive boundary (spec.md 4.B). Every token from a file
// appears in exactly one SemiExpression, in file order.
type SemiExpression struct {
	Tokens    []Token
	StartLine int
}

// Text renders the raw lexemes space-joined, useful for diagnostics.
func (s SemiExpression) Text() string {
	out := ""
	for i, t := range s.Tokens {
		if i > 0 {
			out += " "
		}
		out += t.Lexeme
	}
	return out
}

func (s SemiExpression) Last() Token {
	if len(s.Tokens) == 0 {
		return Token{}
	}
	return s.Tokens[len(s.Tokens)-1]
}

func (s SemiExpression) First() Token {
	if len(s.Tokens) == 0 {
		return Token{}
	}
	return s.Tokens[0]
}

// EndsWith reports whether the last token is exactly the given punctuator.
func (s SemiExpression) EndsWith(p string) bool {
	return s.Last().IsPunct(p)
}

// IsDirective reports whether this unit is a standalone preprocessor
// directive, i.e. its sole token starts with '#'.
func (s SemiExpression) IsDirective() bool {
	return len(s.Tokens) == 1 && len(s.Tokens[0].Lexeme) > 0 && s.Tokens[0].Lexeme[0] == '#'
}

// Contains reports whether any token in the unit has the exact given
// lexeme.
func (s SemiExpression) Contains(lexeme string) bool {
	for _, t := range s.Tokens {
		if t.Lexeme == lexeme {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first token with the given lexeme, or -1.
func (s SemiExpression) IndexOf(lexeme string) int {
	for i, t := range s.Tokens {
		if t.Lexeme == lexeme {
			return i
		}
	}
	return -1
}

// Collector groups a Tokenizer's output into SemiExpressions. It exposes
// hasMore()/next() as described in spec.md 4.B.
type Collector struct {
	tz      *Tokenizer
	buf     []Token
	depth   int // paren nesting; ';' only terminates at depth 0
	pending []SemiExpression
	eof     bool
}

// NewCollector wraps tz in a Collector.
func NewCollector(tz *Tokenizer) *Collector {
	return &Collector{tz: tz}
}

// HasMore reports whether another SemiExpression is available.
func (c *Collector) HasMore() bool {
	if len(c.pending) > 0 || len(c.buf) > 0 {
		return true
	}
	if c.eof {
		return false
	}
	se, err := c.next()
	if err == io.EOF {
		c.eof = true
		return false
	}
	c.pending = append(c.pending, se)
	return true
}

// Next returns the next SemiExpression. Callers should check HasMore first;
// Next returns the zero value once exhausted.
func (c *Collector) Next() SemiExpression {
	if len(c.pending) > 0 {
		se := c.pending[0]
		c.pending = c.pending[1:]
		return se
	}
	se, err := c.next()
	if err != nil {
		c.eof = true
		return SemiExpression{}
	}
	return se
}

func (c *Collector) flush() SemiExpression {
	se := SemiExpression{Tokens: c.buf}
	if len(c.buf) > 0 {
		se.StartLine = c.buf[0].Line
	}
	c.buf = nil
	return se
}

func (c *Collector) next() (SemiExpression, error) {
	for {
		tok, err := c.tz.Next()
		if err == io.EOF {
			if len(c.buf) > 0 {
				return c.flush(), nil
			}
			return SemiExpression{}, io.EOF
		}
		if err != nil {
			return SemiExpression{}, err
		}

		if len(tok.Lexeme) > 0 && tok.Lexeme[0] == '#' {
			if len(c.buf) > 0 {
				pendingSE := c.flush()
				c.pending = append(c.pending, SemiExpression{Tokens: []Token{tok}, StartLine: tok.Line})
				return pendingSE, nil
			}
			return SemiExpression{Tokens: []Token{tok}, StartLine: tok.Line}, nil
		}

		switch tok.Lexeme {
		case "(":
			c.depth++
		case ")":
			if c.depth > 0 {
				c.depth--
			}
		}

		c.buf = append(c.buf, tok)

		switch tok.Lexeme {
		case "{":
			return c.flush(), nil
		case "}":
			if len(c.buf) > 1 {
				closing := c.buf[len(c.buf)-1]
				c.buf = c.buf[:len(c.buf)-1]
				rest := c.flush()
				c.pending = append(c.pending, SemiExpression{Tokens: []Token{closing}, StartLine: closing.Line})
				return rest, nil
			}
			return c.flush(), nil
		case ";":
			if c.depth <= 0 {
				return c.flush(), nil
			}
		}
	}
}

package penman

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmpty is returned by Parse for input without a graph.
	ErrEmpty = errors.New("empty graph")

	// ErrDuplicateVariable is returned by Parse when a variable is defined twice.
	ErrDuplicateVariable = errors.New("duplicate variable")
)

// SyntaxError describes malformed penman text.
type SyntaxError struct {
	Offset int // byte offset into the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// slot is a role/value pair in text order, classified once all variables
// are known.
type slot struct {
	role   string
	value  string
	node   bool
	quoted bool
}

type parser struct {
	src   string
	pos   int
	rec   *Record
	slots [][]slot
	vars  map[string]int
}

// Parse reads a single penman graph from text.
func Parse(text string) (*Record, error) {
	p := &parser{
		src:  text,
		rec:  &Record{},
		vars: make(map[string]int),
	}
	p.skipSpace()
	if p.eof() {
		return nil, ErrEmpty
	}
	if _, err := p.node(); err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after graph", p.peek())
	}
	p.finish()
	return p.rec, nil
}

// node parses a parenthesized node and returns its variable.
func (p *parser) node() (string, error) {
	if err := p.expect('('); err != nil {
		return "", err
	}
	p.skipSpace()
	start := p.pos
	v := p.atom("/")
	if v == "" {
		return "", p.errorf("missing variable")
	}
	if _, dup := p.vars[v]; dup {
		return "", &SyntaxError{Offset: start, Msg: fmt.Sprintf("%s: %v", v, ErrDuplicateVariable)}
	}
	p.skipSpace()
	if err := p.expect('/'); err != nil {
		return "", err
	}
	p.skipSpace()
	concept, quoted, err := p.constant()
	if err != nil {
		return "", err
	}
	if concept == "" && !quoted {
		return "", p.errorf("missing concept for %s", v)
	}

	i := len(p.rec.Nodes)
	p.vars[v] = i
	p.rec.Nodes = append(p.rec.Nodes, v)
	p.rec.Values = append(p.rec.Values, concept)
	p.slots = append(p.slots, nil)

	for {
		p.skipSpace()
		switch {
		case p.eof():
			return "", p.errorf("unterminated node %s", v)
		case p.peek() == ')':
			p.pos++
			return v, nil
		case p.peek() == ':':
			if err := p.role(i); err != nil {
				return "", err
			}
		default:
			return "", p.errorf("unexpected %q in node %s", p.peek(), v)
		}
	}
}

func (p *parser) role(owner int) error {
	p.pos++ // ':'
	name := p.atom("")
	if name == "" {
		return p.errorf("empty role")
	}
	p.skipSpace()
	if p.eof() || p.peek() == ')' || p.peek() == ':' {
		return p.errorf("role :%s has no value", name)
	}

	s := slot{role: name}
	if p.peek() == '(' {
		v, err := p.node()
		if err != nil {
			return err
		}
		s.value, s.node = v, true
	} else {
		v, quoted, err := p.constant()
		if err != nil {
			return err
		}
		s.value, s.quoted = v, quoted
	}
	p.slots[owner] = append(p.slots[owner], s)
	return nil
}

// constant reads a quoted string or a bare atom.
func (p *parser) constant() (string, bool, error) {
	if p.eof() || p.peek() != '"' {
		return p.atom(""), false, nil
	}
	start := p.pos
	p.pos++
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 < len(p.src) {
				b.WriteByte(p.src[p.pos+1])
				p.pos += 2
				continue
			}
		case '"':
			p.pos++
			return b.String(), true, nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", false, &SyntaxError{Offset: start, Msg: "unterminated string"}
}

// atom reads up to whitespace, a parenthesis, a quote, or any byte in stop.
func (p *parser) atom(stop string) string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == '"' || strings.ContainsRune(stop, r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// finish turns slots into attributes and relations and marks the root.
func (p *parser) finish() {
	n := len(p.rec.Nodes)
	p.rec.Attributes = make([][]Attribute, n)
	p.rec.Relations = make([][]Relation, n)
	p.rec.Attributes[0] = append(p.rec.Attributes[0], Attribute{Key: TopKey, Value: p.rec.Values[0]})

	for i, slots := range p.slots {
		for _, s := range slots {
			_, isVar := p.vars[s.value]
			if s.node || (!s.quoted && isVar) {
				p.rec.Relations[i] = append(p.rec.Relations[i], Relation{Label: s.role, Target: s.value})
			} else {
				p.rec.Attributes[i] = append(p.rec.Attributes[i], Attribute{Key: s.role, Value: s.value})
			}
		}
	}
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.src[p.pos] != c {
		if p.eof() {
			return p.errorf("expected %q, got end of input", c)
		}
		return p.errorf("expected %q, got %q", c, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

package latex

import (
	"errors"
	"fmt"
	"strings"
)

// Parse turns LaTeX source into its list of root-level nodes.
func Parse(src string) ([]Node, error) {
	p := &parser{src: src}
	return p.parseNodes(stopEOF, "")
}

// stopKind tells parseNodes what terminates the node list it is reading.
type stopKind int

const (
	stopEOF   stopKind = iota // end of input
	stopBrace                 // closing } of a group or macro argument
	stopEnv                   // \end of the named environment
)

type parser struct {
	src string
	pos int
}

func (p *parser) parseNodes(stop stopKind, env string) ([]Node, error) {
	var nodes []Node
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '%':
			p.skipComment()
		case '}':
			if stop == stopBrace {
				p.pos++
				return nodes, nil
			}
			return nil, fmt.Errorf("unexpected } at offset %d", p.pos)
		case '{':
			p.pos++
			children, err := p.parseNodes(stopBrace, "")
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &Group{Children: children})
		case '\\':
			name, err := p.readControlName()
			if err != nil {
				return nil, err
			}
			switch name {
			case "begin":
				envName, err := p.readBracedName()
				if err != nil {
					return nil, err
				}
				children, err := p.parseNodes(stopEnv, envName)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, &Environment{Name: envName, Children: children})
			case "end":
				envName, err := p.readBracedName()
				if err != nil {
					return nil, err
				}
				if stop != stopEnv {
					return nil, fmt.Errorf(`unexpected \end{%s}`, envName)
				}
				if envName != env {
					return nil, fmt.Errorf(`environment mismatch: \begin{%s} closed by \end{%s}`, env, envName)
				}
				return nodes, nil
			default:
				macro, err := p.parseMacro(name)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, macro)
			}
		default:
			nodes = append(nodes, &Text{Content: p.readText()})
		}
	}
	switch stop {
	case stopBrace:
		return nil, errors.New("unexpected end of input: unclosed group")
	case stopEnv:
		return nil, fmt.Errorf(`unexpected end of input: \begin{%s} is never closed`, env)
	}
	return nodes, nil
}

// readControlName consumes a backslash and the control sequence name after
// it. Letter names may carry a trailing star; a non-letter escape such as
// \% or \\ yields that single character as the name.
func (p *parser) readControlName() (string, error) {
	p.pos++
	if p.pos >= len(p.src) {
		return "", errors.New("incomplete control sequence at end of input")
	}
	start := p.pos
	if !isLetter(p.src[p.pos]) {
		p.pos++
		return p.src[start:p.pos], nil
	}
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.src) && p.src[p.pos] == '*' {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// readBracedName reads the {name} that follows \begin or \end. Environment
// names cannot nest braces, so scanning to the next } is enough.
func (p *parser) readBracedName() (string, error) {
	p.skipSpaces()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return "", fmt.Errorf("expected { at offset %d", p.pos)
	}
	p.pos++
	end := strings.IndexByte(p.src[p.pos:], '}')
	if end < 0 {
		return "", fmt.Errorf("unterminated environment name at offset %d", p.pos)
	}
	name := strings.TrimSpace(p.src[p.pos : p.pos+end])
	p.pos += end + 1
	return name, nil
}

// parseMacro collects the arguments written directly against the macro name:
// one optional [...] argument, then every adjacent {...} group.
func (p *parser) parseMacro(name string) (*Macro, error) {
	m := &Macro{Name: name}
	if p.pos < len(p.src) && p.src[p.pos] == '[' {
		end := strings.IndexByte(p.src[p.pos:], ']')
		if end < 0 {
			return nil, fmt.Errorf(`unterminated optional argument of \%s`, name)
		}
		m.Optional = p.src[p.pos+1 : p.pos+end]
		p.pos += end + 1
	}
	for p.pos < len(p.src) && p.src[p.pos] == '{' {
		p.pos++
		children, err := p.parseNodes(stopBrace, "")
		if err != nil {
			return nil, err
		}
		m.Args = append(m.Args, &Group{Children: children})
	}
	return m, nil
}

func (p *parser) readText() string {
	start := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\', '{', '}', '%':
			return p.src[start:p.pos]
		}
		p.pos++
	}
	return p.src[start:]
}

func (p *parser) skipComment() {
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.pos++
	}
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

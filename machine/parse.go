// SPDX-License-Identifier: MIT

package machine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const maxLineBytes = 1 << 20

// ParseLine parses one machine description.
//
// Grammar (whitespace between groups is free):
//
//	line    = pattern { button } [ joltage ]
//	pattern = "[" { "." | "#" } "]"
//	button  = "(" [ int { "," int } ] ")"
//	joltage = "{" [ int { "," int } ] "}"
//
// Indices are not range-checked here; gf2.NewSystem does that when the
// machine is solved. All errors wrap ErrMalformedLine.
func ParseLine(s string) (Machine, error) {
	p := lineParser{s: strings.TrimSpace(s)}
	var m Machine

	pat, err := p.group('[', ']')
	if err != nil {
		return Machine{}, err
	}
	m.Target = make([]bool, len(pat))
	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '#':
			m.Target[i] = true
		case '.':
		default:
			return Machine{}, fmt.Errorf("pattern char %q at %d: %w", pat[i], i, ErrMalformedLine)
		}
	}
	m.Lights = len(m.Target)

	for p.skipSpace(); !p.done(); p.skipSpace() {
		switch p.peek() {
		case '(':
			if m.Joltage != nil {
				return Machine{}, fmt.Errorf("button after joltage at col %d: %w", p.pos+1, ErrMalformedLine)
			}
			body, err := p.group('(', ')')
			if err != nil {
				return Machine{}, err
			}
			btn, err := parseInts(body)
			if err != nil {
				return Machine{}, fmt.Errorf("button %d: %w", len(m.Buttons), err)
			}
			m.Buttons = append(m.Buttons, btn)
		case '{':
			if m.Joltage != nil {
				return Machine{}, fmt.Errorf("second joltage list at col %d: %w", p.pos+1, ErrMalformedLine)
			}
			body, err := p.group('{', '}')
			if err != nil {
				return Machine{}, err
			}
			if m.Joltage, err = parseInts(body); err != nil {
				return Machine{}, fmt.Errorf("joltage: %w", err)
			}
		default:
			return Machine{}, fmt.Errorf("unexpected %q at col %d: %w", p.peek(), p.pos+1, ErrMalformedLine)
		}
	}

	return m, nil
}

// Parse reads one machine per non-blank line. Every malformed line is
// reported; the returned error combines them (see multierr.Errors) and
// each one carries its 1-based line number.
func Parse(r io.Reader) ([]Machine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		out  []Machine
		errs error
		line int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m, err := ParseLine(text)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("read after line %d: %w", line, err))
	}
	if errs != nil {
		return nil, errs
	}

	return out, nil
}

// lineParser is a cursor over one trimmed line.
type lineParser struct {
	s   string
	pos int
}

func (p *lineParser) done() bool { return p.pos >= len(p.s) }

func (p *lineParser) peek() byte { return p.s[p.pos] }

func (p *lineParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

// group consumes open ... closing and returns the text between them.
func (p *lineParser) group(open, closing byte) (string, error) {
	if p.done() || p.peek() != open {
		return "", fmt.Errorf("expected %q at col %d: %w", open, p.pos+1, ErrMalformedLine)
	}
	end := strings.IndexByte(p.s[p.pos+1:], closing)
	if end < 0 {
		return "", fmt.Errorf("unterminated %q at col %d: %w", open, p.pos+1, ErrMalformedLine)
	}
	body := p.s[p.pos+1 : p.pos+1+end]
	p.pos += end + 2

	return body, nil
}

// parseInts parses a comma-separated list; an empty or blank body is an
// empty, non-nil list.
func parseInts(body string) ([]int, error) {
	if strings.TrimSpace(body) == "" {
		return []int{}, nil
	}
	fields := strings.Split(body, ",")
	out := make([]int, len(fields))
	for k, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("item %d %q: %w", k, f, ErrMalformedLine)
		}
		out[k] = v
	}

	return out, nil
}

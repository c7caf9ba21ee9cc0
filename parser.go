// Copyright (c) 2025 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package regions

//
// code inspired by: http://blog.gopheracademy.com/advent-2014/parsers-lexers/
//

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// parser represents an .aut parser.
type parser struct {
	s     *scanner
	b     *Builder
	tok   token // last read token
	ahead bool  // true if there is a token stored in tok
}

// ParseAUT reads the Aldebaran .aut textual format:
//
//	des (<initial-state>, <num-transitions>, <num-states>)
//	(<from>,"<label>",<to>)
//	...
//
// and returns the LTS it describes. The header's transition/state counts are
// read but not enforced against the body: they are a hint in the Aldebaran
// format, not a contract, and a mismatch is not itself malformed input.
func ParseAUT(r io.Reader) (*LTS, error) {
	p := &parser{
		s:     newScanner(bufio.NewReader(r)),
		b:     NewBuilder(),
		ahead: false,
	}
	if err := p.parse(); err != nil {
		return nil, fmt.Errorf("regions: error parsing .aut: %s", err)
	}
	return p.b.Build(), nil
}

// scan returns the next token from the underlying scanner.
// If a token has been unscanned then read that instead.
func (p *parser) scan() token {
	if p.ahead {
		p.ahead = false
	} else {
		p.tok = p.s.scan()
	}
	return p.tok
}

// unscan backtracks the currently read token.
func (p *parser) unscan() {
	p.ahead = true
}

func (p *parser) parse() error {
	if err := p.parseHeader(); err != nil {
		return err
	}
	for {
		tok := p.scan()
		if tok.tok == tokEOF {
			return nil
		}
		p.unscan()
		if err := p.parseTransition(); err != nil {
			return err
		}
	}
}

// parseHeader reads the mandatory "des (init, ntrans, nstates)" line. The
// initial state is recorded via Builder.SetInitial; ntrans/nstates are
// parsed only to validate the header shape.
func (p *parser) parseHeader() error {
	tok := p.scan()
	if tok.tok != tokDES {
		return fmt.Errorf(" found %q; expected 'des' header at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokLPAREN {
		return fmt.Errorf(" found %q; expected '(' after 'des' at %s", tok.s, tok.pos.String())
	}
	init, err := p.scanStateName()
	if err != nil {
		return err
	}
	if tok = p.scan(); tok.tok != tokCOMMA {
		return fmt.Errorf(" found %q; expected ',' after initial state at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokINT {
		return fmt.Errorf(" found %q; expected transition count at %s", tok.s, tok.pos.String())
	}
	if _, err := strconv.Atoi(tok.s); err != nil {
		return fmt.Errorf(" bad transition count %q at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokCOMMA {
		return fmt.Errorf(" found %q; expected ',' after transition count at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokINT {
		return fmt.Errorf(" found %q; expected state count at %s", tok.s, tok.pos.String())
	}
	if _, err := strconv.Atoi(tok.s); err != nil {
		return fmt.Errorf(" bad state count %q at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokRPAREN {
		return fmt.Errorf(" found %q; expected ')' closing header at %s", tok.s, tok.pos.String())
	}
	p.b.AddState(init)
	p.b.SetInitial(init)
	return nil
}

// parseTransition reads one "(from,"label",to)" triple.
func (p *parser) parseTransition() error {
	tok := p.scan()
	if tok.tok != tokLPAREN {
		return fmt.Errorf(" found %q; expected '(' starting a transition at %s", tok.s, tok.pos.String())
	}
	from, err := p.scanStateName()
	if err != nil {
		return err
	}
	if tok = p.scan(); tok.tok != tokCOMMA {
		return fmt.Errorf(" found %q; expected ',' after source state at %s", tok.s, tok.pos.String())
	}
	if tok = p.scan(); tok.tok != tokSTRING {
		return fmt.Errorf(" found %q; expected a quoted label at %s", tok.s, tok.pos.String())
	}
	label := tok.s
	if tok = p.scan(); tok.tok != tokCOMMA {
		return fmt.Errorf(" found %q; expected ',' after label at %s", tok.s, tok.pos.String())
	}
	to, err := p.scanStateName()
	if err != nil {
		return err
	}
	if tok = p.scan(); tok.tok != tokRPAREN {
		return fmt.Errorf(" found %q; expected ')' closing a transition at %s", tok.s, tok.pos.String())
	}
	p.b.AddTransition(from, label, to)
	return nil
}

// scanStateName accepts either a bare integer or an identifier as a state
// name, matching the .aut convention that states are usually numbered
// 0..n-1 but some dialects use symbolic names.
func (p *parser) scanStateName() (string, error) {
	tok := p.scan()
	if tok.tok != tokINT && tok.tok != tokIDENT {
		return "", fmt.Errorf(" found %q; expected a state name at %s", tok.s, tok.pos.String())
	}
	return tok.s, nil
}

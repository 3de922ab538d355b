package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/xiam/bel/ast"
	"github.com/xiam/bel/lexer"
)

// Evaluator computes the value a closed top-level list stands for. A nil
// value with a nil error means the list produced nothing.
type Evaluator interface {
	Eval(list *ast.List) (ast.Value, error)
}

type parserState func(p *Parser) parserState

type frame struct {
	items []ast.Value
}

// Parser assembles tokens into values. It keeps one open list per unmatched
// "(", so an expression may span several lines.
type Parser struct {
	ev Evaluator

	curr  *frame
	stack []*frame

	tok     *lexer.Token
	out     ast.Value
	emitted bool
	lastErr error
}

// New creates a parser that hands closed top-level lists to ev. With a nil
// ev lists are emitted as they are.
func New(ev Evaluator) *Parser {
	return &Parser{ev: ev}
}

// Push feeds one token to the parser. It reports whether a value was emitted;
// an emitted value may be nil when evaluation produced nothing.
func (p *Parser) Push(tok *lexer.Token) (ast.Value, bool, error) {
	p.tok, p.out, p.emitted, p.lastErr = tok, nil, false, nil

	for state := parserDefaultState; state != nil; {
		state = state(p)
	}

	return p.out, p.emitted, p.lastErr
}

// Reset abandons every open list.
func (p *Parser) Reset() {
	p.curr = nil
	p.stack = nil
}

// Depth returns the number of unmatched "(" read so far.
func (p *Parser) Depth() int {
	return len(p.stack)
}

// Pending returns the lists that are still open, outermost first.
func (p *Parser) Pending() []*ast.List {
	frames := make([]*frame, 0, len(p.stack)+1)
	frames = append(frames, p.stack...)
	frames = append(frames, p.curr)

	lists := []*ast.List{}
	for _, f := range frames {
		if f != nil {
			lists = append(lists, ast.NewList(append([]ast.Value{}, f.items...)...))
		}
	}
	return lists
}

func (p *Parser) open() {
	p.stack = append(p.stack, p.curr)
	p.curr = &frame{items: []ast.Value{}}
}

func (p *Parser) close() {
	last := len(p.stack) - 1
	p.curr, p.stack = p.stack[last], p.stack[:last]
}

func parserDefaultState(p *Parser) parserState {
	switch p.tok.Type() {
	case lexer.TokenEOL:
		return nil

	case lexer.TokenOpenList:
		return parserStateOpenList

	case lexer.TokenCloseList:
		return parserStateCloseList

	case lexer.TokenLiteral, lexer.TokenChar, lexer.TokenBlank, lexer.TokenString:
		return parserStateAtom
	}

	return parserErrorState(ErrUnexpectedToken)
}

func parserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

func parserEmit(v ast.Value) parserState {
	return func(p *Parser) parserState {
		p.out, p.emitted = v, true
		return nil
	}
}

func parserStateOpenList(p *Parser) parserState {
	p.open()
	return nil
}

func parserStateAtom(p *Parser) parserState {
	v := atomValue(p.tok)
	if p.curr == nil {
		return parserEmit(v)
	}
	p.curr.items = append(p.curr.items, v)
	return nil
}

func parserStateCloseList(p *Parser) parserState {
	if p.curr == nil {
		return parserErrorState(ErrUnmatchedClose)
	}

	items := CollapseDotPairs(p.curr.items)

	var closed ast.Value = ast.NewList(items...)
	if s, ok := CoalesceChars(items); ok {
		closed = s
	}

	p.close()
	if p.curr != nil {
		p.curr.items = append(p.curr.items, closed)
		return nil
	}

	list, ok := closed.(*ast.List)
	if !ok || p.ev == nil || list.Len() == 0 {
		return parserEmit(closed)
	}
	return parserStateEval(list)
}

func parserStateEval(list *ast.List) parserState {
	return func(p *Parser) parserState {
		v, err := p.ev.Eval(list)
		if err != nil {
			return parserErrorState(err)
		}
		return parserEmit(v)
	}
}

func atomValue(tok *lexer.Token) ast.Value {
	text := tok.Text()

	switch tok.Type() {
	case lexer.TokenChar, lexer.TokenBlank:
		return ast.NewChar(text[1:])
	case lexer.TokenString:
		return ast.NewString(text[1 : len(text)-1])
	}

	return ast.NewLiteral(text)
}

// CollapseDotPairs rewrites (X . nil) as (X) and (X . (Y...)) as (X Y...).
// Any other sequence is returned as is.
func CollapseDotPairs(items []ast.Value) []ast.Value {
	if len(items) != 3 || !ast.Is(items[1], ast.Dot) {
		return items
	}

	switch tail := items[2].(type) {
	case ast.Literal:
		if tail.Text == ast.Nil {
			return []ast.Value{items[0]}
		}
	case *ast.List:
		return append([]ast.Value{items[0]}, tail.Items...)
	}

	return items
}

// CoalesceChars turns a run of one-character chars into a string. Runs that
// would spell a double quote or a backslash are left alone.
func CoalesceChars(items []ast.Value) (ast.String, bool) {
	var b strings.Builder

	for _, item := range items {
		c, ok := item.(ast.Char)
		if !ok || utf8.RuneCountInString(c.Name) != 1 {
			return ast.String{}, false
		}
		b.WriteString(c.Name)
	}

	chars := b.String()
	if strings.ContainsAny(chars, `"\`) {
		return ast.String{}, false
	}

	return ast.NewString(chars), true
}

// Parse reads a single line and returns every value it yields, without
// evaluating anything. Lists left open at the end of the line are dropped.
func Parse(line string) ([]ast.Value, error) {
	lx := lexer.New()
	lx.Feed(line)

	p := New(nil)
	values := []ast.Value{}

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Is(lexer.TokenEOL) {
			return values, nil
		}

		v, ok, err := p.Push(tok)
		if err != nil {
			return nil, err
		}
		if ok {
			values = append(values, v)
		}
	}
}

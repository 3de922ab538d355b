package ast

import (
	"strings"
)

// Words with a structural meaning inside a list.
const (
	Dot = "."
	Nil = "nil"
)

// Value is implemented by every datum the reader can produce: Literal, Char,
// String and *List. The set is closed.
type Value interface {
	Type() ValueType
	Encode() string

	value()
}

// Literal is a token taken verbatim from input, like foo, + or 3.
type Literal struct {
	Text string
}

// Char is a backslash escaped unit. Name may be longer than one character
// for named chars such as bel or tab.
type Char struct {
	Name string
}

// String is a sequence of characters.
type String struct {
	Chars string
}

// List is an ordered sequence of values.
type List struct {
	Items []Value
}

// NewLiteral creates a literal with the given text
func NewLiteral(text string) Literal {
	return Literal{Text: text}
}

// NewChar creates a char with the given name
func NewChar(name string) Char {
	return Char{Name: name}
}

// NewString creates a string with the given characters
func NewString(chars string) String {
	return String{Chars: chars}
}

// NewList creates a list that owns the given items
func NewList(items ...Value) *List {
	if items == nil {
		items = []Value{}
	}
	return &List{Items: items}
}

func (Literal) Type() ValueType { return ValueTypeLiteral }
func (Char) Type() ValueType    { return ValueTypeChar }
func (String) Type() ValueType  { return ValueTypeString }
func (*List) Type() ValueType   { return ValueTypeList }

func (l Literal) Encode() string {
	return l.Text
}

func (c Char) Encode() string {
	return `\` + c.Name
}

func (s String) Encode() string {
	return `"` + s.Chars + `"`
}

func (l *List) Encode() string {
	nodes := make([]string, 0, len(l.Items))
	for i := range l.Items {
		nodes = append(nodes, l.Items[i].Encode())
	}
	return "(" + strings.Join(nodes, " ") + ")"
}

// Is returns true if the value is a literal spelled exactly as text.
func Is(v Value, text string) bool {
	l, ok := v.(Literal)
	return ok && l.Text == text
}

// Len returns the number of items in the list
func (l *List) Len() int {
	return len(l.Items)
}

// Head returns the first item of the list, or nil if the list is empty.
func (l *List) Head() Value {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[0]
}

func (Literal) value() {}
func (Char) value()    {}
func (String) value()  {}
func (*List) value()   {}

var (
	_ = Value(Literal{})
	_ = Value(Char{})
	_ = Value(String{})
	_ = Value(&List{})
)

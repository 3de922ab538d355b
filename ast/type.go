package ast

// ValueType represents the type of a value
type ValueType uint8

// Value types
const (
	ValueTypeInvalid ValueType = iota

	ValueTypeLiteral
	ValueTypeChar
	ValueTypeString
	ValueTypeList
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return valueTypeName[ValueTypeInvalid]
}

var valueTypeName = map[ValueType]string{
	ValueTypeInvalid: "invalid",
	ValueTypeLiteral: "literal",
	ValueTypeChar:    "char",
	ValueTypeString:  "string",
	ValueTypeList:    "list",
}

package lisp

import (
	"bytes"
	"strconv"
)

// String renders v for display.  Integers print as decimal digits, lists
// print parenthesized with a dotted tail rendered as ``a . b'', and
// function values print as opaque placeholders that are not meant to be
// read back.
func (v *LVal) String() string {
	switch v.Type {
	case LInt:
		return strconv.Itoa(v.Int)
	case LSymbol:
		return v.Str
	case LCons:
		return consString(v)
	case LPrimitive:
		return "<builtin-function ``" + v.Str + "''>"
	case LClosure:
		return "<function>"
	case LNil:
		return "()"
	case LTrue:
		return "t"
	case LDot:
		return "."
	case LParen:
		return ")"
	default:
		return "#<INVALID>"
	}
}

func consString(v *LVal) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	for {
		buf.WriteString(v.First.String())
		if v.Rest == Nil {
			break
		}
		if v.Rest.Type != LCons {
			buf.WriteString(" . ")
			buf.WriteString(v.Rest.String())
			break
		}
		buf.WriteString(" ")
		v = v.Rest
	}
	buf.WriteString(")")
	return buf.String()
}

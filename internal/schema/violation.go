package schema

import (
	"fmt"

	"github.com/stevefan1999/graphql-tools/internal/language"
)

type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"positionStart,omitempty"`
	Column  int    `json:"positionEnd,omitempty"`
}

type ValidationError []*Violation

func (e ValidationError) Error() string {
	msg := "violations found:\n"
	for _, v := range e {
		line := "- " + v.Message
		if v.File != "" {
			line += fmt.Sprintf(" %s:%d:%d", v.File, v.Line, v.Column)
		}
		msg += line + "\n"
	}
	return msg
}

// Core primitive used by all template helpers.
func violationWithPosition(message string, pos *language.Position) *Violation {
	v := &Violation{Message: message}
	if pos != nil && pos.Src != nil {
		v.File = pos.Src.Name
		v.Line = pos.Line
		v.Column = pos.Column
	}
	return v
}

func violationDuplicateTypeName(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("type %q is declared more than once", name), pos)
}

func violationDuplicateDirectiveName(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("directive @%s is declared more than once", name), pos)
}

func violationExtendUnknownType(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("cannot extend unknown type %q", name), pos)
}

func violationVariableInConstValue(pos *language.Position) *Violation {
	return violationWithPosition("variables are not allowed in schema definitions", pos)
}

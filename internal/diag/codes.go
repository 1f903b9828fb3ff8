package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Разделы remarks
	RmkInfo             Code = 1000
	RmkDuplicateHeading Code = 1001
	RmkUnusedHeading    Code = 1002

	// Синтаксис
	SynInfo              Code = 2000
	SynExpected          Code = 2001
	SynInvalidDefinition Code = 2002

	// Валидация модели
	DefInfo          Code = 3000
	DefInvalidName   Code = 3001
	DefDuplicateName Code = 3002
	DefMissingName   Code = 3003

	// I/O
	IOLoadFileError Code = 4000
	IOCacheError    Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		RmkInfo:              "Remarks information",
		RmkDuplicateHeading:  "Duplicate remarks heading",
		RmkUnusedHeading:     "Unused remarks heading",
		SynInfo:              "Syntax information",
		SynExpected:          "Expected token",
		SynInvalidDefinition: "Invalid definition",
		DefInfo:              "Definition information",
		DefInvalidName:       "Invalid name",
		DefDuplicateName:     "Duplicate name",
		DefMissingName:       "Missing name",
		IOLoadFileError:      "I/O load file error",
		IOCacheError:         "I/O cache error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("RMK%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DEF%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

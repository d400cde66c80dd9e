package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldText - нижний регистр по правилам Unicode для корневой локали.
// PostgreSQL дает ту же форму через lower(col COLLATE "und-x-icu").
// Caser хранит состояние, поэтому создается на каждый вызов.
func FoldText(s string) string {
	return cases.Lower(language.Und).String(s)
}

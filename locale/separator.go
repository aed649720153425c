// Package locale derives query-string list separators from locale
// tags. Locales that write decimal commas separate lists with
// semicolons, so a color like "240,248,255" arrives as "240;248;255"
// from a German or French client; Arabic and Persian use the Arabic
// semicolon. Everything else uses the plain comma.
package locale

import "golang.org/x/text/language"

// separatorTable maps languages to their list separator, following
// platform culture conventions. The first entry doubles as the
// fallback for locales the table does not cover.
var separatorTable = []struct {
	tag language.Tag
	sep rune
}{
	{language.English, ','},
	{language.LatinAmericanSpanish, ','},

	{language.Afrikaans, ';'},
	{language.Albanian, ';'},
	{language.Armenian, ';'},
	{language.Azerbaijani, ';'},
	{language.Bulgarian, ';'},
	{language.Catalan, ';'},
	{language.Croatian, ';'},
	{language.Czech, ';'},
	{language.Danish, ';'},
	{language.Dutch, ';'},
	{language.Estonian, ';'},
	{language.Finnish, ';'},
	{language.French, ';'},
	{language.Georgian, ';'},
	{language.German, ';'},
	{language.Greek, ';'},
	{language.Hungarian, ';'},
	{language.Icelandic, ';'},
	{language.Indonesian, ';'},
	{language.Italian, ';'},
	{language.Kazakh, ';'},
	{language.Latvian, ';'},
	{language.Lithuanian, ';'},
	{language.Macedonian, ';'},
	{language.Norwegian, ';'},
	{language.Polish, ';'},
	{language.Portuguese, ';'},
	{language.Romanian, ';'},
	{language.Russian, ';'},
	{language.Serbian, ';'},
	{language.Slovak, ';'},
	{language.Slovenian, ';'},
	{language.Spanish, ';'},
	{language.Swedish, ';'},
	{language.Turkish, ';'},
	{language.Ukrainian, ';'},
	{language.Vietnamese, ';'},

	{language.Arabic, '؛'},
	{language.Persian, '؛'},
}

var separatorMatcher = newSeparatorMatcher()

func newSeparatorMatcher() language.Matcher {
	tags := make([]language.Tag, len(separatorTable))
	for i, entry := range separatorTable {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}

// ListSeparator returns the list separator of the locale identified
// by tag. Regional variants inherit from their language (de-AT reads
// as de); unknown locales fall back to ','.
func ListSeparator(tag language.Tag) rune {
	_, i, _ := separatorMatcher.Match(tag)
	return separatorTable[i].sep
}

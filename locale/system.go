package locale

import (
	"sync"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

var (
	systemOnce sync.Once
	systemTag  language.Tag
)

// System returns the locale of the current process environment,
// detected once and cached. Detection failures and unparseable
// locale strings fall back to language.Und, which ListSeparator
// treats as comma territory.
func System() language.Tag {
	systemOnce.Do(func() {
		systemTag = language.Und
		raw, err := golocale.GetLocale()
		if err != nil {
			return
		}
		tag, err := language.Parse(raw)
		if err != nil {
			return
		}
		systemTag = tag
	})
	return systemTag
}

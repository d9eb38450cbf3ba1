// Package locale maps the language preference onto a bundled translation
// catalog and installs it into the running toolkit session.
package locale

import (
	"io/fs"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"xfb/internal/logger"
)

// DefaultLanguage is the built-in interface language; it needs no catalog.
const DefaultLanguage = "en"

type catalogEntry struct {
	tag  language.Tag
	file string
}

// Catalog order matters: the matcher prefers earlier entries, so the default
// language comes first.
var catalogs = []catalogEntry{
	{language.English, ""},
	{language.Portuguese, "lang/pt.json"},
	{language.French, "lang/fr.json"},
}

// Result reports what Resolve did. Code is the effective interface language
// after any fallback.
type Result struct {
	Code      string
	Installed bool
	Warned    bool
}

type Resolver struct {
	log     logger.Logger
	assets  fs.FS
	matcher language.Matcher

	// install pushes a catalog into the toolkit; swapped out in tests.
	install func(data []byte, l fyne.Locale) error
}

func NewResolver(log logger.Logger, assets fs.FS) *Resolver {
	tags := make([]language.Tag, len(catalogs))
	for i, c := range catalogs {
		tags[i] = c.tag
	}
	return &Resolver{
		log:     log,
		assets:  assets,
		matcher: language.NewMatcher(tags),
		install: lang.AddTranslationsForLocale,
	}
}

// Resolve loads and installs the catalog for code. Unknown codes and load
// failures fall back to the default language with Warned set; the caller is
// responsible for surfacing the warning.
func (r *Resolver) Resolve(code string) Result {
	code = strings.TrimSpace(code)
	if code == "" || code == DefaultLanguage {
		return Result{Code: DefaultLanguage}
	}

	tag, err := language.Parse(code)
	if err != nil {
		r.log.Warning("LocaleResolver", "unrecognized language code", map[string]interface{}{
			"code": code,
		})
		return Result{Code: DefaultLanguage, Warned: true}
	}

	_, index, confidence := r.matcher.Match(tag)
	if confidence < language.High {
		r.log.Warning("LocaleResolver", "no translation catalog for language", map[string]interface{}{
			"code": code,
		})
		return Result{Code: DefaultLanguage, Warned: true}
	}

	entry := catalogs[index]
	if entry.file == "" {
		return Result{Code: DefaultLanguage}
	}

	base, _ := entry.tag.Base()
	data, err := fs.ReadFile(r.assets, entry.file)
	if err == nil {
		err = r.install(data, fyne.Locale(base.String()))
	}
	if err != nil {
		r.log.Warning("LocaleResolver", "translation load failed", map[string]interface{}{
			"code":   code,
			"file":   entry.file,
			"reason": err.Error(),
		})
		return Result{Code: DefaultLanguage, Warned: true}
	}

	r.log.Info("LocaleResolver", "translation installed", map[string]interface{}{
		"language": base.String(),
	})
	return Result{Code: base.String(), Installed: true}
}

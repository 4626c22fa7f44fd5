// Package locale holds the translated UI strings, embedded as gettext .po files.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalog exists for the requested language
const DefaultLanguage = "en"

//go:embed locales/*.po
var catalogs embed.FS

// poGet formats a looked-up translation. Keys are dynamic, so the call goes
// through a function variable to keep go vet's printf check off the key.
var poGet = (*gotext.Po).Get

// Catalog translates message keys such as "OVERLAY_CELL"
type Catalog struct {
	Language string
	po       *gotext.Po
}

// New loads the catalog for lang. Region suffixes are ignored, so "de_DE.UTF-8"
// loads "de". Unknown languages fall back to DefaultLanguage.
func New(lang string) (*Catalog, error) {
	lang = baseLanguage(lang)
	data, err := catalogs.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		lang = DefaultLanguage
		data, err = catalogs.ReadFile(path.Join("locales", lang+".po"))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{Language: lang, po: po}, nil
}

// Get returns the translation of key formatted with vars. Keys without a
// translation are returned as they are. A nil catalog translates nothing and
// prints the key followed by vars, separated by spaces.
func (c *Catalog) Get(key string, vars ...any) string {
	if c == nil || c.po == nil {
		if len(vars) == 0 {
			return key
		}
		return strings.TrimSuffix(fmt.Sprintln(append([]any{key}, vars...)...), "\n")
	}
	return poGet(c.po, key, vars...)
}

// Languages returns the embedded catalog languages, sorted
func Languages() []string {
	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether lang, ignoring any region suffix, has an
// embedded catalog
func Supported(lang string) bool {
	lang = baseLanguage(lang)
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

func baseLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

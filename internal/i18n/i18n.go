// Package i18n holds the site's translation tables. A Localizer is bound to
// one language and handed explicitly to whatever renders text.
package i18n

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Lang string

const (
	EN Lang = "en"
	ID Lang = "id"
	AR Lang = "ar"
	ZH Lang = "zh"
	FR Lang = "fr"
	ES Lang = "es"
)

const Default = EN

// Supported is ordered like the matcher tags below.
var Supported = []Lang{EN, ID, AR, ZH, FR, ES}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Indonesian,
	language.Arabic,
	language.Chinese,
	language.French,
	language.Spanish,
})

// Parse accepts a supported code in any case ("ID", "fr").
func Parse(s string) (Lang, bool) {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, x := range Supported {
		if x == l {
			return l, true
		}
	}
	return Default, false
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(Supported) {
		return Default
	}
	return Supported[idx]
}

type Catalog struct {
	tables map[Lang]map[string]string
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog { return &Catalog{tables: builtin} }

func (c *Catalog) lookup(l Lang, key string) string {
	if s, ok := c.tables[l][key]; ok {
		return s
	}
	if s, ok := c.tables[Default][key]; ok {
		return s
	}
	return key
}

func (c *Catalog) For(l Lang) Localizer {
	if _, ok := Parse(string(l)); !ok {
		l = Default
	}
	return Localizer{lang: l, cat: c}
}

type Localizer struct {
	lang Lang
	cat  *Catalog
}

func (l Localizer) Lang() Lang { return l.lang }

// Dir is the text direction for the html dir attribute.
func (l Localizer) Dir() string {
	if l.lang == AR {
		return "rtl"
	}
	return "ltr"
}

func (l Localizer) T(key string, args ...any) string {
	cat := l.cat
	if cat == nil {
		cat = NewCatalog()
	}
	s := cat.lookup(l.lang, key)
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

type ctxKey struct{}

func WithLocalizer(ctx context.Context, l Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request's Localizer, English when none was set.
func FromContext(ctx context.Context) Localizer {
	if l, ok := ctx.Value(ctxKey{}).(Localizer); ok {
		return l
	}
	return NewCatalog().For(Default)
}

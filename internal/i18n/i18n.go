// Package i18n provides the localization capability used by views: message lookup
// per language, language negotiation, and the list of offered languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// DefaultLanguage is the source language of all message keys
var DefaultLanguage = language.BritishEnglish

// Language describes one offered language
type Language struct {
	Tag         language.Tag
	Code        string // BCP 47 code, e.g. "de-DE"
	Name        string // Name in the language itself
	EnglishName string
}

// Catalog holds the translations of all offered languages.
type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// Load reads the embedded translation files
func Load() (*Catalog, error) {
	return LoadFS(localeFiles, "locales")
}

// LoadFS reads <code>.yaml files from dir in fsys. Each file is a flat
// key: translation map.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	tags := []language.Tag{DefaultLanguage}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("invalid locale file name %q: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}

		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("%s: %q: %w", name, key, err)
			}
		}

		if tag != DefaultLanguage {
			tags = append(tags, tag)
		}
	}

	// Keep the default first so the matcher falls back to it
	sort.SliceStable(tags[1:], func(i, j int) bool {
		return tags[1+i].String() < tags[1+j].String()
	})

	return &Catalog{
		builder: builder,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Languages returns the offered languages, default first
func (c *Catalog) Languages() []Language {
	langs := make([]Language, len(c.tags))
	for i, tag := range c.tags {
		langs[i] = Language{
			Tag:         tag,
			Code:        tag.String(),
			Name:        display.Self.Name(tag),
			EnglishName: display.English.Tags().Name(tag),
		}
	}
	return langs
}

// LanguageCodes returns the BCP 47 codes of the offered languages
func (c *Catalog) LanguageCodes() []string {
	codes := make([]string, len(c.tags))
	for i, tag := range c.tags {
		codes[i] = tag.String()
	}
	return codes
}

// Match picks the offered language that best fits a preference such as an
// Accept-Language header or a user setting ("de", "fr-CA,fr;q=0.8").
func (c *Catalog) Match(preference string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(prefs) == 0 {
		return DefaultLanguage
	}
	_, index, confidence := c.matcher.Match(prefs...)
	if confidence == language.No {
		return DefaultLanguage
	}
	return c.tags[index]
}

// Localizer translates messages into one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Localizer returns a translator for tag
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

// Tag returns the language of the localizer
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the translation of key, or key itself when there is none.
// The fallback is escaped so a '%' in an untranslated key is kept literally.
func (l *Localizer) T(key string) string {
	return l.printer.Sprintf(message.Key(key, strings.ReplaceAll(key, "%", "%%")))
}

// N picks the singular or plural message by count and formats the count into it.
// Both messages must contain exactly one %d.
func (l *Localizer) N(singular, plural string, count int) string {
	key := plural
	if count == 1 {
		key = singular
	}
	return l.printer.Sprintf(message.Key(key, key), count)
}

// Sprintf formats with language specific number formatting
func (l *Localizer) Sprintf(format string, args ...any) string {
	return l.printer.Sprintf(format, args...)
}

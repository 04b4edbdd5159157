package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed resources/locales/*.toml
var localeFS embed.FS

const localeDir = "resources/locales"

// Localizer translates UI message IDs. English is the fallback language.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewLocalizer loads the embedded message files and localises for tag.
func NewLocalizer(tag language.Tag) (*Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, localeDir)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, e := range entries {
		data, err := localeFS.ReadFile(path.Join(localeDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", e.Name(), err)
		}
	}

	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// T returns the translation of id, or id itself when no language has it.
func (l *Localizer) T(id string) string {
	s, _ := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if s == "" {
		return id
	}
	return s
}

// Tag returns the requested language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Languages lists the languages with message files.
func (l *Localizer) Languages() []language.Tag {
	return l.bundle.LanguageTags()
}

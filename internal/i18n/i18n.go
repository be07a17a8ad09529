// Package i18n localizes the UI strings.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Localizer resolves message ids for one UI language.
type Localizer struct {
	localizer *goi18n.Localizer
}

// New builds a localizer for lang with English as the fallback.
func New(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}

	tags := []string{language.English.String()}
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid ui language %q: %w", lang, err)
		}
		tags = append([]string{tag.String()}, tags...)
	}
	return &Localizer{localizer: goi18n.NewLocalizer(bundle, tags...)}, nil
}

// T returns the message for id, or id itself when it is unknown.
func (l *Localizer) T(id string) string {
	return l.TData(id, nil)
}

// TData returns the message for id rendered with data.
func (l *Localizer) TData(id string, data map[string]any) string {
	if l == nil || l.localizer == nil {
		return id
	}
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

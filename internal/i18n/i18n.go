// Package i18n renders validation failures as localized messages.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
)

//go:embed messages/*.toml
var messages embed.FS

// Service translates message ids for the languages it has bundles for.
type Service struct {
	// tags lists supported languages, default first
	tags       []language.Tag
	matcher    language.Matcher
	localizers map[language.Tag]*i18n.Localizer
}

// New loads the embedded message files. defaultLanguage is used when no
// bundle matches a requested language.
func New(defaultLanguage language.Tag) (*Service, error) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messages, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messages, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}

	tags := []language.Tag{defaultLanguage}
	for _, tag := range bundle.LanguageTags() {
		if tag != defaultLanguage {
			tags = append(tags, tag)
		}
	}
	localizers := make(map[language.Tag]*i18n.Localizer, len(tags))
	for _, tag := range tags {
		localizers[tag] = i18n.NewLocalizer(bundle, tag.String())
	}

	return &Service{
		tags:       tags,
		matcher:    language.NewMatcher(tags),
		localizers: localizers,
	}, nil
}

// ParseLanguage maps an Accept-Language style string to the closest
// supported language.
func (s *Service) ParseLanguage(lang string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return s.tags[0]
	}
	_, index, _ := s.matcher.Match(tags...)
	return s.tags[index]
}

// Translate returns the message for key in lang, or key itself if no
// translation exists.
func (s *Service) Translate(key string, lang language.Tag, data map[string]string) string {
	localizer, ok := s.localizers[lang]
	if !ok {
		localizer = s.localizers[s.ParseLanguage(lang.String())]
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}

// Message renders err for display. Validation failures map 1:1 to message
// ids by kind and show elided identifiers; other errors render as-is.
func (s *Service) Message(err error, lang language.Tag) string {
	var verr *deeplink.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	return s.Translate(string(verr.Kind), lang, map[string]string{"Value": verr.Display()})
}

// Package i18n negotiates the language of a request and translates UI text.
//
// Message keys are the English source strings; a key with no translation
// for the negotiated language is printed as-is.
package i18n

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists every language with a catalog, English first.
var Supported = []language.Tag{language.English, language.German}

var catalogs = map[language.Tag]map[string]string{language.German: german}

func init() {
	for key, val := range german {
		if err := message.SetString(language.German, key, val); err != nil {
			panic(fmt.Sprintf("registering german translation for %q: %s", key, err))
		}
	}
}

type langKey struct{}

// WithLanguage returns a context carrying the given language.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, langKey{}, tag)
}

// Language returns the language stored in the context, or English.
func Language(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(langKey{}).(language.Tag); ok {
		return tag
	}
	return language.English
}

// Printer returns a message printer for the context's language.
func Printer(ctx context.Context) *message.Printer {
	return message.NewPrinter(Language(ctx))
}

// T translates a message key into the context's language and formats args into it.
// Keys are format strings; use Text for anything that may contain a literal '%'.
func T(ctx context.Context, key string, args ...any) string {
	return Printer(ctx).Sprintf(key, args...)
}

// Text translates a message key without interpreting it as a format string.
func Text(ctx context.Context, key string) string {
	if msg, ok := catalogs[Language(ctx)][key]; ok {
		return msg
	}
	return key
}

// Negotiator picks the response language from the request.
type Negotiator struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewNegotiator returns a negotiator that falls back to the given language
// when the request expresses no usable preference.
func NewNegotiator(fallback string) (*Negotiator, error) {
	tag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("parsing default language: %w", err)
	}
	base, _ := tag.Base()

	supported := []language.Tag{}
	for _, s := range Supported {
		if b, _ := s.Base(); b == base {
			supported = append([]language.Tag{s}, supported...)
			continue
		}
		supported = append(supported, s)
	}
	if b, _ := supported[0].Base(); b != base {
		return nil, fmt.Errorf("unsupported default language %q", fallback)
	}

	return &Negotiator{supported: supported, matcher: language.NewMatcher(supported)}, nil
}

// Match returns the best supported language for the request.
// An explicit ?lang= query parameter wins over Accept-Language.
func (n *Negotiator) Match(r *http.Request) language.Tag {
	var prefs []language.Tag
	if q := r.URL.Query().Get("lang"); q != "" {
		if tag, err := language.Parse(q); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if accept, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil {
		prefs = append(prefs, accept...)
	}
	_, idx, conf := n.matcher.Match(prefs...)
	if conf == language.No {
		return n.supported[0]
	}
	return n.supported[idx]
}

// Middleware stores the negotiated language in the request context.
func (n *Negotiator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag := n.Match(r)
		w.Header().Set("Content-Language", tag.String())
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), tag)))
	})
}

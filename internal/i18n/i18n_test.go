package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNegotiatorMatch(t *testing.T) {
	n, err := NewNegotiator("en")
	require.NoError(t, err)

	tests := []struct {
		name   string
		accept string
		query  string
		want   language.Tag
	}{
		{name: "no preference", want: language.English},
		{name: "german header", accept: "de-DE,de;q=0.9,en;q=0.5", want: language.German},
		{name: "unsupported header", accept: "ja", want: language.English},
		{name: "query wins", accept: "en", query: "de", want: language.German},
		{name: "garbage header", accept: ";;;", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			r := httptest.NewRequest("GET", target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, n.Match(r))
		})
	}
}

func TestNegotiatorFallback(t *testing.T) {
	n, err := NewNegotiator("de")
	require.NoError(t, err)
	assert.Equal(t, language.German, n.Match(httptest.NewRequest("GET", "/", nil)))

	_, err = NewNegotiator("fr")
	assert.Error(t, err)

	_, err = NewNegotiator("not a language")
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	ctx := WithLanguage(context.Background(), language.German)
	assert.Equal(t, "Registrierungstext", T(ctx, "Registration text"))
	assert.Equal(t, "Login redirect ist ein Pflichtfeld.", T(ctx, "%s field is required.", "Login redirect"))

	// Untranslated keys are printed verbatim
	assert.Equal(t, "Something else", T(ctx, "Something else"))

	// English is the default
	assert.Equal(t, "Registration text", T(context.Background(), "Registration text"))
}

func TestText(t *testing.T) {
	de := WithLanguage(context.Background(), language.German)
	assert.Equal(t, "Registrierungstext", Text(de, "Registration text"))
	assert.Equal(t, "Registration text", Text(context.Background(), "Registration text"))

	// Percent signs are not format verbs
	assert.Equal(t, "100% verified", Text(de, "100% verified"))
	assert.Equal(t, "50%s off", Text(context.Background(), "50%s off"))
	assert.Equal(t, "%s ist ein Pflichtfeld.", Text(de, "%s field is required."))
}

func TestMiddleware(t *testing.T) {
	n, err := NewNegotiator("en")
	require.NoError(t, err)

	var got language.Tag
	h := n.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Language(r.Context())
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "de")
	h.ServeHTTP(w, r)

	assert.Equal(t, language.German, got)
	assert.Equal(t, "de", w.Header().Get("Content-Language"))
}

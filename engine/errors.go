package engine

import (
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/TheLab-ms/ethsignup/internal/templates"
	"github.com/TheLab-ms/ethsignup/modules/bootstrap"
)

//go:embed templates/error.html
var errorTemplateSource string

var errorTemplate = template.Must(template.New("error").Parse(errorTemplateSource))

type httpError struct {
	StatusCode int
	Title      string
	Message    string
}

func renderError(e *httpError) templates.Component {
	return bootstrap.View(e.Title, &templates.TemplateComponent{
		Template: errorTemplate,
		Data:     e,
	})
}

// ClientError renders a user-facing error page with the given status code.
func ClientError(w http.ResponseWriter, title, msg string, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := renderError(&httpError{StatusCode: status, Title: title, Message: msg}).Render(context.Background(), w); err != nil {
		slog.Error("rendering error page", "error", err)
	}
}

// SystemError logs the given message+args while returning a generic 500 error.
func SystemError(w http.ResponseWriter, msg string, args ...any) {
	slog.Error(msg, args...)
	ClientError(w, "Internal Error", "Internal error - please try again later", http.StatusInternalServerError)
}

// HandleError returns true if err is non-nil, logging the error and sending
// a 500 response. This allows cleaner error handling in handlers:
//
//	if engine.HandleError(w, err) {
//	    return
//	}
func HandleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	SystemError(w, err.Error())
	return true
}

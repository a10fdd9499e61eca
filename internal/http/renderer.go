package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// TemplateRenderer renders HTML pages for UI responses. Every page
// template defines a "page_<name>" root that pulls in the shared layout
// partials, so a render is a single ExecuteTemplate call.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	t, err := template.New("root").Funcs(templateFuncs()).ParseFS(cfg.TemplateFS,
		"partials/*.tmpl",
		"pages/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}

	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// RenderPage renders the named page into a buffer first so a template
// error can still become a clean 500 instead of a half-written body.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, name string, data PageData) error {
	return r.render(w, http.StatusOK, name, data)
}

// RenderPageStatus is RenderPage with an explicit status code, for error
// pages that still use the full layout.
func (r *TemplateRenderer) RenderPageStatus(w http.ResponseWriter, code int, name string, data PageData) error {
	return r.render(w, code, name, data)
}

func (r *TemplateRenderer) render(w http.ResponseWriter, code int, name string, data PageData) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, "page_"+name, data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", name),
				slog.Any("error", err),
			)
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Mon, 02 Jan 2006 15:04")
		},
		"formatPrice": func(p float64) string {
			return "$" + strconv.FormatFloat(p, 'f', 2, 64)
		},
	}
}

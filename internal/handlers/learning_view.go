package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"learnlog/internal/contextutil"
	"learnlog/internal/learnings"
)

// LearningViewHandler serves a single learning as a rendered HTML page.
// Descriptions are written in markdown; the snippet is shown as a fenced block.
type LearningViewHandler struct {
	service  *learnings.Service
	parser   goldmark.Markdown
	template *template.Template
}

// learningPageData holds template data for rendered learning pages.
type learningPageData struct {
	Title        string
	FilePath     string
	FunctionName string
	LibraryName  string
	Description  template.HTML
	CodeSnippet  string
}

// NewLearningViewHandler creates a new handler for rendering learning pages.
func NewLearningViewHandler(service *learnings.Service) *LearningViewHandler {
	tmpl := template.Must(template.New("learning").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #050b18;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 1.6rem;
    }
    pre {
      background: #0f172a;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 10px;
      border: 1px solid rgba(99, 102, 241, 0.2);
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">File: {{.FilePath}}{{if .FunctionName}} &middot; Function: {{.FunctionName}}{{end}}{{if .LibraryName}} &middot; Library: {{.LibraryName}}{{end}}</p>
  </header>
  <article>{{.Description}}</article>
  <pre><code>{{.CodeSnippet}}</code></pre>
</body>
</html>`))

	return &LearningViewHandler{
		service: service,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested learning as HTML.
func (h *LearningViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "user identity is required", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "learning id is required", http.StatusBadRequest)
		return
	}

	learning, err := h.service.Get(ctx, userID, id)
	if err != nil {
		switch {
		case errors.Is(err, learnings.ErrNotFound):
			http.Error(w, "learning not found", http.StatusNotFound)
		case errors.Is(err, learnings.ErrForbidden):
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			logger.ErrorContext(ctx, "failed to load learning", "learning_id", id, "error", err)
			http.Error(w, "failed to load learning", http.StatusInternalServerError)
		}
		return
	}

	descriptionHTML, err := h.renderMarkdown([]byte(learning.Description))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render description", "learning_id", id, "error", err)
		http.Error(w, "failed to render learning", http.StatusInternalServerError)
		return
	}

	pageData := learningPageData{
		Title:        learning.Description,
		FilePath:     learning.FilePath,
		FunctionName: learning.FunctionName,
		LibraryName:  learning.LibraryName,
		Description:  template.HTML(descriptionHTML),
		CodeSnippet:  learning.CodeSnippet,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute learning template", "learning_id", id, "error", err)
		http.Error(w, "failed to render learning", http.StatusInternalServerError)
		return
	}
}

func (h *LearningViewHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.parser.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

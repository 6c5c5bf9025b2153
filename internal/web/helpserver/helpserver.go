// Package helpserver exposes help listings over HTTP so a running process
// can be inspected from a browser or curl.
package helpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/conduit-lang/apihelp/internal/cli/ui"
	"github.com/conduit-lang/apihelp/internal/web/middleware"
	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

// ClassSummary is one entry of the class index
type ClassSummary struct {
	Name         string `json:"name"`
	Participates bool   `json:"participates"`
	Methods      int    `json:"methods"`
}

// ClassResponse is the JSON body of a class listing
type ClassResponse struct {
	Report *apihelp.Report `json:"report"`
	Lines  []string        `json:"lines"`
}

// ErrorResponse is the JSON body of every error
type ErrorResponse struct {
	Error       string   `json:"error"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type handler struct {
	help   *apihelp.Help
	logger *zap.Logger
}

// New builds the help console router. Routes are mounted under prefix,
// which is either empty or starts with a slash.
func New(help *apihelp.Help, prefix string, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{help: help, logger: logger}

	r := chi.NewRouter()
	chain := requestChain(logger)
	r.Use(func(next http.Handler) http.Handler { return chain.Then(next) })
	r.Use(chimw.StripSlashes)
	r.Use(chimw.NoCache)

	routes := func(r chi.Router) {
		r.Get("/classes", h.listClasses)
		r.Get("/classes/{class}", h.showClass)
		r.Get("/classes/{class}/text", h.showClassText)
	}

	if prefix == "" || prefix == "/" {
		routes(r)
	} else {
		r.Route(prefix, routes)
	}

	return r
}

// requestChain wraps every route. Logging sits outside Recovery so a
// panicking request still gets its access line with the 500 status.
func requestChain(logger *zap.Logger) middleware.Chain {
	return middleware.NewChain(
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recovery(logger),
	)
}

func (h *handler) listClasses(w http.ResponseWriter, r *http.Request) {
	classes := h.help.Classes()
	summaries := make([]ClassSummary, 0, len(classes))
	for _, class := range classes {
		report := h.help.Report(class, "")
		summaries = append(summaries, ClassSummary{
			Name:         apihelp.ClassName(class),
			Participates: report.Participates,
			Methods:      len(report.Methods),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"classes": summaries})
}

func (h *handler) showClass(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ClassResponse{Report: report, Lines: apihelp.Lines(report)})
}

func (h *handler) showClassText(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, strings.Join(apihelp.Lines(report), "\n"))
}

// report resolves the {class} parameter and builds its report, writing a
// 404 when the class is unknown
func (h *handler) report(w http.ResponseWriter, r *http.Request) (*apihelp.Report, bool) {
	name := chi.URLParam(r, "class")
	class, ok := h.help.ClassByName(name)
	if !ok {
		known := h.help.ClassNames()
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:       "class_not_found",
			Message:     fmt.Sprintf("Cannot find class '%s'.", name),
			Suggestions: ui.FindSimilar(name, known, nil),
		})
		return nil, false
	}

	return h.help.Report(class, r.URL.Query().Get("q")), true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

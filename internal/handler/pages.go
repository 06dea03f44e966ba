package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/colorpass/colorpass-go/internal/crypto"
	"github.com/colorpass/colorpass-go/internal/model"
	"github.com/colorpass/colorpass-go/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageHandler serves the server-rendered views of both applications.
type PageHandler struct {
	generator  *service.GeneratorService
	background *service.BackgroundService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(gen *service.GeneratorService, bg *service.BackgroundService) *PageHandler {
	return &PageHandler{generator: gen, background: bg}
}

type switcherPage struct {
	Title   string
	Current model.ColorResponse
	Colors  []model.ColorResponse
}

type generatorPage struct {
	Title    string
	State    model.PasswordState
	Min, Max int
	Copied   bool
}

// HandleIndex handles GET / requests.
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, "index", struct{ Title string }{Title: "colorpass"})
}

// HandleSwitcher handles GET /switcher requests.
func (h *PageHandler) HandleSwitcher(w http.ResponseWriter, r *http.Request) {
	render(w, "switcher", switcherPage{
		Title:   "Background Switcher",
		Current: h.background.Current(),
		Colors:  h.background.Colors(),
	})
}

// HandleSwitcherSelect handles POST /switcher/{color} requests.
func (h *PageHandler) HandleSwitcherSelect(w http.ResponseWriter, r *http.Request) {
	if _, err := h.background.Select(chi.URLParam(r, "color")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/switcher", http.StatusSeeOther)
}

// HandleGenerator handles GET /generator requests.
func (h *PageHandler) HandleGenerator(w http.ResponseWriter, r *http.Request) {
	render(w, "generator", generatorPage{
		Title:  "Password Generator",
		State:  h.generator.State(),
		Min:    crypto.MinLength,
		Max:    crypto.MaxLength,
		Copied: r.URL.Query().Get("copied") == "1",
	})
}

// HandleGeneratorUpdate handles POST /generator form submissions.
// Unchecked checkboxes are absent from the form and mean false.
func (h *PageHandler) HandleGeneratorUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<10)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	length, err := strconv.Atoi(r.PostForm.Get("length"))
	if err != nil {
		http.Error(w, "invalid length", http.StatusBadRequest)
		return
	}
	digits := r.PostForm.Get("digits") != ""
	symbols := r.PostForm.Get("symbols") != ""

	if _, err := h.generator.Configure(model.ConfigureRequest{
		Length:  &length,
		Digits:  &digits,
		Symbols: &symbols,
	}); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/generator", http.StatusSeeOther)
}

// HandleGeneratorCopy handles POST /generator/copy requests.
func (h *PageHandler) HandleGeneratorCopy(w http.ResponseWriter, r *http.Request) {
	h.generator.Copy()
	http.Redirect(w, r, "/generator?copied=1", http.StatusSeeOther)
}

func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("rendering page", "page", name, "error", err)
	}
}

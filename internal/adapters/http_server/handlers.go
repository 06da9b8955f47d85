// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"biduk_site/internal/app"
	"biduk_site/internal/chat"
	"biduk_site/internal/geo"
	"biduk_site/internal/i18n"
)

type Handlers struct {
	Content   *app.ContentService
	Chat      *chat.Store
	Catalog   *i18n.Catalog
	Shape     *geo.Shape // nil when the village outline failed to load
	Recaptcha string

	pages map[string]*template.Template
}

func NewHandlers(content *app.ContentService, chats *chat.Store, cat *i18n.Catalog, shape *geo.Shape, recaptcha string) (*Handlers, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handlers{
		Content:   content,
		Chat:      chats,
		Catalog:   cat,
		Shape:     shape,
		Recaptcha: recaptcha,
		pages:     pages,
	}, nil
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Handle("/static/*", staticHandler())

	s.mux.Group(func(r chi.Router) {
		r.Use(Language(h.Catalog))

		r.Get("/", h.homePage)
		r.Get("/place", h.placesPage)
		r.Get("/place/{id}", h.placePage)
		r.Get("/hotels", h.hotelsPage)
		r.Get("/hotels/{id}", h.hotelPage)
		r.Get("/packages", h.packagesPage)
		r.Get("/packages/{id}", h.packagePage)
		r.Get("/articles", h.articlesPage)
		r.Get("/articles/{id}", h.articlePage)

		r.Route("/api", func(r chi.Router) {
			r.Get("/destinations", h.listDestinations)
			r.Get("/destinations/{id}", h.getDestination)
			r.Get("/hotels", h.listHotels)
			r.Get("/hotels/{id}", h.getHotel)
			r.Get("/packages", h.listPackages)
			r.Get("/packages/{id}", h.getPackage)
			r.Get("/articles", h.listArticles)
			r.Get("/articles/{id}", h.getArticle)
			r.Get("/gallery", h.listGallery)
			r.Get("/map", h.getMap)
			r.Get("/map/tooltip", h.getTooltip)

			r.Route("/chat/sessions", func(r chi.Router) {
				r.Post("/", h.createChat)
				r.Get("/{id}", h.getChat)
				r.Delete("/{id}", h.deleteChat)
				r.Post("/{id}/messages", h.sendChat)
				r.Post("/{id}/quick-replies", h.quickReply)
				r.Put("/{id}/language", h.setChatLanguage)
				r.Post("/{id}/clear", h.requestClear)
				r.Post("/{id}/clear/confirm", h.confirmClear)
				r.Post("/{id}/clear/cancel", h.cancelClear)
			})
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this version.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "encode response")
		return
	}
	if inm := r.Header.Get("If-None-Match"); status == http.StatusOK && inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write JSON body")
	}
}

// ---- query parsing ----

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// pageParams reads page/page_size; bad values fall back to defaults.
func pageParams(r *http.Request, defSize int) (page, size int) {
	page, size = 1, defSize
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}

func categoryParam(r *http.Request) (int64, bool) {
	v := r.URL.Query().Get("category")
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil
}

// onlyActive is true unless the caller asks for active=false.
func onlyActive(r *http.Request) bool {
	return r.URL.Query().Get("active") != "false"
}

func badID(w http.ResponseWriter) {
	writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
}

// ---- content JSON API ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r, app.DefaultPageSize)
	d := h.Content.Destinations()
	if cat, ok := categoryParam(r); ok {
		writeJSON(w, r, http.StatusOK, d.GetByCategory(r.Context(), cat, page, size))
		return
	}
	if onlyActive(r) {
		writeJSON(w, r, http.StatusOK, d.GetActive(r.Context(), page, size))
		return
	}
	writeJSON(w, r, http.StatusOK, d.GetAll(r.Context(), page, size))
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	v := h.Content.Destinations().GetByID(r.Context(), id)
	if v == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", i18n.FromContext(r.Context()).T("places.notFound"))
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r, app.DefaultPageSize)
	if onlyActive(r) {
		writeJSON(w, r, http.StatusOK, h.Content.Hotels().GetActive(r.Context(), page, size))
		return
	}
	writeJSON(w, r, http.StatusOK, h.Content.Hotels().GetAll(r.Context(), page, size))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	v := h.Content.Hotels().GetByID(r.Context(), id)
	if v == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", i18n.FromContext(r.Context()).T("hotels.notFound"))
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

func (h *Handlers) listPackages(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r, app.DefaultPageSize)
	if onlyActive(r) {
		writeJSON(w, r, http.StatusOK, h.Content.Packages().GetActive(r.Context(), page, size))
		return
	}
	writeJSON(w, r, http.StatusOK, h.Content.Packages().GetAll(r.Context(), page, size))
}

func (h *Handlers) getPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	v := h.Content.Packages().GetByID(r.Context(), id)
	if v == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", i18n.FromContext(r.Context()).T("packages.notFound"))
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

func (h *Handlers) listArticles(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r, app.DefaultArticlePageSize)
	a := h.Content.Articles()
	if cat, ok := categoryParam(r); ok {
		writeJSON(w, r, http.StatusOK, a.GetByCategory(r.Context(), cat, page, size))
		return
	}
	if r.URL.Query().Get("status") == "published" {
		writeJSON(w, r, http.StatusOK, a.GetPublished(r.Context(), page, size))
		return
	}
	writeJSON(w, r, http.StatusOK, a.GetAll(r.Context(), page, size))
}

func (h *Handlers) getArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badID(w)
		return
	}
	v := h.Content.Articles().GetByID(r.Context(), id)
	if v == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", i18n.FromContext(r.Context()).T("articles.notFound"))
		return
	}
	writeJSON(w, r, http.StatusOK, v)
}

func (h *Handlers) listGallery(w http.ResponseWriter, r *http.Request) {
	g := h.Content.Gallery()
	q := r.URL.Query()
	switch {
	case q.Get("featured") == "true":
		writeJSON(w, r, http.StatusOK, g.FeaturedImages(r.Context()))
	case q.Get("category") != "":
		writeJSON(w, r, http.StatusOK, g.GetByCategory(r.Context(), q.Get("category")))
	default:
		writeJSON(w, r, http.StatusOK, g.GetAll(r.Context()))
	}
}

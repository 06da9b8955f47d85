package httpserver

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"biduk_site/internal/app"
	"biduk_site/internal/domain"
	"biduk_site/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{
	"home", "places", "place", "hotels", "hotel",
	"packages", "package", "articles", "article", "notfound",
}

var funcs = template.FuncMap{
	"rupiah": func(p domain.FlexString) string { return i18n.Rupiah(string(p)) },
	"deref": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	// card pairs an item with the page localizer for the shared card templates.
	"card": func(l i18n.Localizer, item any) map[string]any {
		return map[string]any{"L": l, "It": item}
	},
}

func parsePages() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/cards.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type langLink struct {
	Lang   i18n.Lang
	Href   string
	Active bool
}

type pageData struct {
	L         i18n.Localizer
	Title     string
	Nav       string
	Langs     []langLink
	Recaptcha string
	Body      any
}

type pager struct {
	Page  int
	Total int
	Prev  string
	Next  string
}

// newPager returns nil when everything fits on one page.
func newPager(r *http.Request, pg domain.Pagination) *pager {
	if pg.TotalPages <= 1 {
		return nil
	}
	link := func(n int) string {
		q := url.Values{}
		q.Set("page", strconv.Itoa(n))
		return r.URL.Path + "?" + q.Encode()
	}
	p := &pager{Page: pg.CurrentPage, Total: pg.TotalPages}
	if p.Page > 1 {
		p.Prev = link(p.Page - 1)
	}
	if p.Page < p.Total {
		p.Next = link(p.Page + 1)
	}
	return p
}

func langLinks(r *http.Request, cur i18n.Lang) []langLink {
	out := make([]langLink, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		q := r.URL.Query()
		q.Set("lang", string(l))
		out = append(out, langLink{Lang: l, Href: r.URL.Path + "?" + q.Encode(), Active: l == cur})
	}
	return out
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, status int, title, nav string, body any) {
	loc := i18n.FromContext(r.Context())
	data := pageData{
		L:         loc,
		Title:     title,
		Nav:       nav,
		Langs:     langLinks(r, loc.Lang()),
		Recaptcha: h.Recaptcha,
		Body:      body,
	}
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Error().Err(err).Str("page", name).Msg("render page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("page", name).Msg("write page failed")
	}
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request, key string) {
	loc := i18n.FromContext(r.Context())
	h.render(w, r, "notfound", http.StatusNotFound, loc.T(key), "", loc.T(key))
}

// queryPage reads ?page= for page views; anything invalid is page 1.
func queryPage(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}

// ---- home ----

type homeBody struct {
	Featured []domain.GalleryImage
	Hotels   domain.Page[domain.Hotel]
	Packages domain.Page[domain.Package]
	Articles domain.Page[domain.Article]
	Map      mapView
}

// loadHome fetches every home section concurrently. Sections never fail,
// they degrade to empty results, so the group only waits.
func (h *Handlers) loadHome(ctx context.Context) homeBody {
	var b homeBody
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Featured = h.Content.Gallery().FeaturedImages(gctx)
		return nil
	})
	g.Go(func() error {
		b.Hotels = h.Content.Hotels().GetActive(gctx, 1, app.HomeHotelsSize)
		return nil
	})
	g.Go(func() error {
		b.Packages = h.Content.Packages().GetActive(gctx, 1, app.HomePackagesSize)
		return nil
	})
	g.Go(func() error {
		b.Articles = h.Content.Articles().GetAll(gctx, 1, app.HomeArticlesSize)
		return nil
	})
	_ = g.Wait()
	return b
}

func (h *Handlers) homePage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	b := h.loadHome(r.Context())
	b.Map = h.buildMap(0, loc)
	h.render(w, r, "home", http.StatusOK, loc.T("site.title"), "home", b)
}

// ---- lists ----

type listBody struct {
	Page  any
	Empty bool
	Pager *pager
}

func (h *Handlers) placesPage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	p := h.Content.Destinations().GetActive(r.Context(), queryPage(r), app.PlacesPageSize)
	h.render(w, r, "places", http.StatusOK, loc.T("places.title"), "places",
		listBody{Page: p, Empty: p.Empty(), Pager: newPager(r, p.Pagination)})
}

func (h *Handlers) hotelsPage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	p := h.Content.Hotels().GetActive(r.Context(), queryPage(r), app.ListPageSize)
	h.render(w, r, "hotels", http.StatusOK, loc.T("hotels.title"), "hotels",
		listBody{Page: p, Empty: p.Empty(), Pager: newPager(r, p.Pagination)})
}

func (h *Handlers) packagesPage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	p := h.Content.Packages().GetActive(r.Context(), queryPage(r), app.ListPageSize)
	h.render(w, r, "packages", http.StatusOK, loc.T("packages.title"), "packages",
		listBody{Page: p, Empty: p.Empty(), Pager: newPager(r, p.Pagination)})
}

func (h *Handlers) articlesPage(w http.ResponseWriter, r *http.Request) {
	loc := i18n.FromContext(r.Context())
	p := h.Content.Articles().GetAll(r.Context(), queryPage(r), app.ListPageSize)
	h.render(w, r, "articles", http.StatusOK, loc.T("articles.title"), "articles",
		listBody{Page: p, Empty: p.Empty(), Pager: newPager(r, p.Pagination)})
}

// ---- details ----

func (h *Handlers) placePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var d *domain.Destination
	if ok {
		d = h.Content.Destinations().GetByID(r.Context(), id)
	}
	if d == nil {
		h.notFound(w, r, "places.notFound")
		return
	}
	h.render(w, r, "place", http.StatusOK, d.Name, "places", d)
}

func (h *Handlers) hotelPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var v *domain.Hotel
	if ok {
		v = h.Content.Hotels().GetByID(r.Context(), id)
	}
	if v == nil {
		h.notFound(w, r, "hotels.notFound")
		return
	}
	h.render(w, r, "hotel", http.StatusOK, v.Name, "hotels", v)
}

func (h *Handlers) packagePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var v *domain.Package
	if ok {
		v = h.Content.Packages().GetByID(r.Context(), id)
	}
	if v == nil {
		h.notFound(w, r, "packages.notFound")
		return
	}
	h.render(w, r, "package", http.StatusOK, v.Name, "packages", v)
}

func (h *Handlers) articlePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	var v *domain.Article
	if ok {
		v = h.Content.Articles().GetByID(r.Context(), id)
	}
	if v == nil {
		h.notFound(w, r, "articles.notFound")
		return
	}
	h.render(w, r, "article", http.StatusOK, v.Title, "articles", v)
}

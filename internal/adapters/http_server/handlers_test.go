package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"biduk_site/internal/adapters/content"
	httpserver "biduk_site/internal/adapters/http_server"
	"biduk_site/internal/app"
	"biduk_site/internal/chat"
	"biduk_site/internal/domain"
	"biduk_site/internal/i18n"
)

type echoBot struct{ n atomic.Int32 }

func (b *echoBot) Reply(ctx context.Context, req domain.ChatRequest) (string, error) {
	b.n.Add(1)
	return "You asked: " + req.Message, nil
}

type site struct {
	h   http.Handler
	bot *echoBot
}

// newSite wires the real router, content client and chat store against a
// fake content backend.
func newSite(t *testing.T, backend http.HandlerFunc) *site {
	t.Helper()
	be := httptest.NewServer(backend)
	t.Cleanup(be.Close)

	cl, err := content.New(be.URL+"/api", 1000, 2*time.Second)
	if err != nil {
		t.Fatalf("content.New: %v", err)
	}
	cat := i18n.NewCatalog()
	bot := &echoBot{}
	store := chat.NewStore(bot, cat, chat.Options{MaxReplies: 3, LimitDelay: time.Millisecond}, 0)
	t.Cleanup(store.Close)

	h, err := httpserver.NewHandlers(app.NewContentService(cl, nil, time.Minute), store, cat, nil, "site-key")
	if err != nil {
		t.Fatalf("NewHandlers: %v", err)
	}
	srv := httpserver.New(5 * time.Second)
	srv.MountHandlers(h)
	return &site{h: srv.Mux(), bot: bot}
}

func (s *site) do(t *testing.T, method, target, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rr := httptest.NewRecorder()
	s.h.ServeHTTP(rr, req)
	return rr
}

func failing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("upstream down"))
}

func TestHotelsPage_BackendFailureShowsEmptyState(t *testing.T) {
	s := newSite(t, failing)

	rr := s.do(t, "GET", "/hotels", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "No hotels available at the moment") {
		t.Fatalf("empty state missing:\n%s", body)
	}
	if strings.Contains(body, `class="card"`) {
		t.Fatalf("no hotel cards expected")
	}
	if !strings.Contains(body, `data-recaptcha="site-key"`) {
		t.Fatalf("recaptcha key not rendered")
	}
}

func TestAPIHotels_BackendFailureIsSentinel(t *testing.T) {
	s := newSite(t, failing)

	rr := s.do(t, "GET", "/api/hotels?page=1&page_size=8", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var page domain.Page[domain.Hotel]
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Success || len(page.Items) != 0 || page.Pagination.PageSize != 8 || page.Pagination.TotalPages != 0 {
		t.Fatalf("unexpected sentinel: %+v", page)
	}
}

func TestHotelDetail_NotFound(t *testing.T) {
	s := newSite(t, func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) })

	rr := s.do(t, "GET", "/api/hotels/9", "")
	if rr.Code != http.StatusNotFound || rr.Header().Get("Content-Type") != "application/problem+json" {
		t.Fatalf("status = %d ct = %s", rr.Code, rr.Header().Get("Content-Type"))
	}

	rr = s.do(t, "GET", "/hotels/9", "")
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "Hotel not found") {
		t.Fatalf("page status = %d", rr.Code)
	}

	if rr := s.do(t, "GET", "/api/hotels/abc", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", rr.Code)
	}
}

func TestHotelDetail_ETag(t *testing.T) {
	s := newSite(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"hotel_id": 4, "name": "Sunset Lodge", "price": 350000}}`))
	})

	rr := s.do(t, "GET", "/api/hotels/4", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	if rr := s.do(t, "GET", "/api/hotels/4", "", "If-None-Match", etag); rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}

	page := s.do(t, "GET", "/hotels/4", "").Body.String()
	if !strings.Contains(page, "Sunset Lodge") || !strings.Contains(page, "Rp 350.000") {
		t.Fatalf("detail page missing content:\n%s", page)
	}
}

func TestLanguageSelection(t *testing.T) {
	s := newSite(t, failing)

	rr := s.do(t, "GET", "/hotels?lang=id", "")
	if rr.Header().Get("Content-Language") != "id" {
		t.Fatalf("Content-Language = %s", rr.Header().Get("Content-Language"))
	}
	if !strings.Contains(rr.Body.String(), "Belum ada hotel yang tersedia saat ini") {
		t.Fatalf("page not translated")
	}
	cookie := rr.Header().Get("Set-Cookie")
	if !strings.HasPrefix(cookie, "lang=id") {
		t.Fatalf("lang cookie not set: %q", cookie)
	}

	// cookie wins over Accept-Language
	rr = s.do(t, "GET", "/hotels", "", "Cookie", "lang=fr", "Accept-Language", "id-ID")
	if rr.Header().Get("Content-Language") != "fr" {
		t.Fatalf("cookie ignored: %s", rr.Header().Get("Content-Language"))
	}
	rr = s.do(t, "GET", "/hotels", "", "Accept-Language", "ar-SA,ar;q=0.9")
	if !strings.Contains(rr.Body.String(), `dir="rtl"`) {
		t.Fatalf("arabic page should be rtl")
	}
}

func TestHomePage_DegradesEverySection(t *testing.T) {
	s := newSite(t, failing)

	rr := s.do(t, "GET", "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"No hotels available at the moment",
		"No packages available",
		"No destination images available at the moment.",
		"Failed to load map data",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page lacks %q", want)
		}
	}
}

func TestPackagesPage_Pager(t *testing.T) {
	s := newSite(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("page not forwarded: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"count": 20, "next": "n", "previous": "p",
			"results": {"success": true, "data": {"items": [{"package_id": 1, "name": "Island Hopping", "price": "250000"}]}}}`))
	})

	body := s.do(t, "GET", "/packages?page=2", "").Body.String()
	if !strings.Contains(body, "Island Hopping") || !strings.Contains(body, "Page 2 of 3") {
		t.Fatalf("unexpected page:\n%s", body)
	}
	if !strings.Contains(body, `href="/packages?page=1"`) || !strings.Contains(body, `href="/packages?page=3"`) {
		t.Fatalf("pager links missing")
	}
}

func TestMapEndpoints(t *testing.T) {
	s := newSite(t, failing)

	rr := s.do(t, "GET", "/api/map?width=375", "")
	var mv struct {
		Viewport struct{ Width, Height int }
		Error    string
		Markers  []struct{ ID string }
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &mv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mv.Viewport.Width != 320 || len(mv.Markers) != 2 || mv.Error == "" {
		t.Fatalf("unexpected map: %+v", mv)
	}

	var tip struct {
		Visible bool
		Box     *struct{ Left, Top, Width, Height float64 }
	}
	rr = s.do(t, "GET", "/api/map/tooltip?marker=pantai-biduk&mode=hover&x=100&y=100&sw=800&sh=600", "")
	_ = json.Unmarshal(rr.Body.Bytes(), &tip)
	if tip.Visible {
		t.Fatalf("hover tooltip should be hidden on tablets")
	}

	rr = s.do(t, "GET", "/api/map/tooltip?marker=pantai-biduk&mode=click&x=180&y=400&sw=375&sh=700", "")
	_ = json.Unmarshal(rr.Body.Bytes(), &tip)
	if !tip.Visible || tip.Box == nil || tip.Box.Left != 100 || tip.Box.Top != 296 {
		t.Fatalf("unexpected tooltip: %+v", tip)
	}

	if rr := s.do(t, "GET", "/api/map/tooltip?marker=nowhere&x=1&y=1&sw=1", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown marker status = %d", rr.Code)
	}
}

func TestHomePage_HoverAndClickTooltipsAreSeparate(t *testing.T) {
	s := newSite(t, failing)

	body := s.do(t, "GET", "/", "").Body.String()
	for _, slot := range []string{`data-tip="hover"`, `data-tip="click"`} {
		if strings.Count(body, slot) != 1 {
			t.Fatalf("expected one %s slot on the home page", slot)
		}
	}

	rr := s.do(t, "GET", "/static/map.js", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("map.js status = %d", rr.Code)
	}
	js := rr.Body.String()
	if !strings.Contains(js, `slot("hover")`) || !strings.Contains(js, `slot("click")`) {
		t.Fatalf("map.js must drive both tooltip slots")
	}
	// hover handlers must not depend on the click state
	if strings.Contains(js, "!clicked") {
		t.Fatalf("hover tooltip is gated on the clicked marker")
	}
}

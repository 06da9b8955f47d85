package content_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biduk_site/internal/adapters/content"
	"biduk_site/internal/domain"
)

func newClient(t *testing.T, h http.HandlerFunc) *content.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	cl, err := content.New(ts.URL+"/api", 1000, 2*time.Second)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return cl
}

func TestNew_RejectsBadBase(t *testing.T) {
	if _, err := content.New("not a url", 5, time.Second); err == nil {
		t.Fatalf("expected error for invalid base")
	}
}

func TestClient_ListDestinations_FlatEnvelope(t *testing.T) {
	cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/destinations/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("is_active") != "true" || q.Get("page") != "2" || q.Get("page_size") != "12" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"success": true, "message": "ok",
			"data": [{"id": 3, "name": "Labuan Cermin", "images": "a.jpg",
			          "category": {"id": 1, "name": "Lake"},
			          "coordinates": {"latitude": 1.2, "longitude": 118.6}}],
			"pagination": {"count": 13, "next": null, "previous": "p1", "page_size": 12, "current_page": 2, "total_pages": 2}
		}`))
	})

	got, err := cl.ListDestinations(context.Background(), domain.ListQuery{Page: 2, PageSize: 12, Active: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Success || len(got.Items) != 1 || got.Items[0].Name != "Labuan Cermin" {
		t.Fatalf("unexpected page: %+v", got)
	}
	if got.Pagination.Count != 13 || got.Pagination.TotalPages != 2 || got.Pagination.CurrentPage != 2 {
		t.Fatalf("unexpected pagination: %+v", got.Pagination)
	}
	if imgs := got.Items[0].Images; len(imgs) != 1 || imgs[0] != "a.jpg" {
		t.Fatalf("single image string not normalized: %v", imgs)
	}
	if !got.Items[0].Coordinates.Valid() {
		t.Fatalf("coordinates lost")
	}
}

func TestClient_ListHotels_ResultsEnvelope(t *testing.T) {
	cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hotels/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"count": 17, "next": "n", "previous": null,
			"results": {"success": true, "message": "ok", "data": {
				"items": [
					{"hotel_id": 1, "name": "A", "price": 450000, "images": [{"image_url": "x.jpg"}, {"image": "y.jpg"}]},
					{"hotel_id": 2, "name": "B", "price": "300000", "images": ["z.jpg"]}
				],
				"applied_queries": {"is_active": true}
			}}
		}`))
	})

	got, err := cl.ListHotels(context.Background(), domain.ListQuery{Page: 1, PageSize: 8, Active: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Items) != 2 || got.Pagination.Count != 17 || got.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected page: %+v", got)
	}
	if got.Items[0].Price != "450000" || got.Items[1].Price != "300000" {
		t.Fatalf("price not flexible: %q %q", got.Items[0].Price, got.Items[1].Price)
	}
	if imgs := got.Items[0].Images; len(imgs) != 2 || imgs[0] != "x.jpg" || imgs[1] != "y.jpg" {
		t.Fatalf("image objects not normalized: %v", imgs)
	}
}

func TestClient_GetHotel_UnwrapsBothShapes(t *testing.T) {
	for name, body := range map[string]string{
		"wrapped": `{"success": true, "message": "ok", "data": {"hotel_id": 9, "name": "Wrapped"}}`,
		"bare":    `{"hotel_id": 9, "name": "Bare"}`,
	} {
		t.Run(name, func(t *testing.T) {
			cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/hotels/9/" {
					t.Errorf("path = %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(body))
			})
			h, err := cl.GetHotel(context.Background(), 9)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if h.HotelID != 9 || h.Name == "" {
				t.Fatalf("unexpected hotel: %+v", h)
			}
		})
	}
}

func TestClient_GetArticle_Malformed(t *testing.T) {
	cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "data": null}`))
	})
	_, err := cl.GetArticle(context.Background(), 1)
	if !errors.Is(err, domain.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestClient_StatusErrors(t *testing.T) {
	cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/packages/404/" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := cl.ListPackages(context.Background(), domain.ListQuery{Page: 1, PageSize: 8})
	var se *content.StatusError
	if !errors.As(err, &se) || se.Code != 500 || se.Body != "boom" {
		t.Fatalf("expected 500 StatusError, got %v", err)
	}
	if domain.MissStatus(err) != 0 {
		t.Fatalf("500 must not count as a miss")
	}

	_, err = cl.GetPackage(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) || domain.MissStatus(err) != 404 {
		t.Fatalf("expected not found miss, got %v", err)
	}
}

func TestClient_ListGallery(t *testing.T) {
	cl := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/gallery" || r.URL.Query().Get("featured") != "true" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": "g1", "title": "Sunset", "file_url": "s.jpg"}]}`))
	})
	got, err := cl.ListGallery(context.Background(), domain.GalleryQuery{Featured: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "g1" || got[0].FileURL != "s.jpg" {
		t.Fatalf("unexpected gallery: %+v", got)
	}
}

package httpserver

import (
	"net/http"
	"strconv"

	"biduk_site/internal/geo"
	"biduk_site/internal/i18n"
)

type mapView struct {
	Viewport geo.Viewport       `json:"viewport"`
	Center   geo.LonLat         `json:"center"`
	Name     string             `json:"name,omitempty"`
	Outline  string             `json:"outline,omitempty"`
	Error    string             `json:"error,omitempty"`
	Markers  []geo.PlacedMarker `json:"markers"`
}

func (h *Handlers) buildMap(width int, loc i18n.Localizer) mapView {
	vp := geo.ViewportFor(width)
	proj := geo.NewMercator(vp)
	v := mapView{
		Viewport: vp,
		Center:   geo.Center,
		Markers:  geo.Place(proj, geo.Markers),
	}
	if h.Shape == nil {
		v.Error = loc.T("map.failed")
		return v
	}
	v.Name = h.Shape.Name
	v.Outline = h.Shape.Path(proj)
	return v
}

func intParam(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func floatParam(r *http.Request, key string) (float64, bool) {
	f, err := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	return f, err == nil
}

// getMap projects the outline and markers for ?width= (screen width in px).
func (h *Handlers) getMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.buildMap(intParam(r, "width"), i18n.FromContext(r.Context())))
}

type tooltipView struct {
	Visible bool            `json:"visible"`
	Box     *geo.TooltipBox `json:"box,omitempty"`
	Marker  *geo.Marker     `json:"marker,omitempty"`
}

// getTooltip places the tooltip for ?marker=&mode=hover|click&x=&y=&sw=&sh=.
func (h *Handlers) getTooltip(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	m, ok := geo.FindMarker(q.Get("marker"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown marker")
		return
	}
	mode := geo.TooltipMode(q.Get("mode"))
	if mode == "" {
		mode = geo.Click
	}
	if mode != geo.Hover && mode != geo.Click {
		writeProblem(w, http.StatusBadRequest, "Invalid mode", "mode must be hover or click")
		return
	}
	x, okx := floatParam(r, "x")
	y, oky := floatParam(r, "y")
	sw, oksw := floatParam(r, "sw")
	sh, _ := floatParam(r, "sh")
	if !okx || !oky || !oksw || sw <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid pointer", "x, y and sw are required numbers")
		return
	}

	box, visible := geo.PlaceTooltip(mode, geo.Point{X: x, Y: y}, geo.Screen{Width: sw, Height: sh})
	out := tooltipView{Visible: visible}
	if visible {
		out.Box = &box
		out.Marker = &m
	}
	writeJSON(w, r, http.StatusOK, out)
}

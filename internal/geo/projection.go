// Package geo places the village map and its markers in pixel space.
package geo

import "math"

type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Center is the middle of Biduk-Biduk village.
var Center = LonLat{Lon: 118.674, Lat: 1.22}

// Mercator matches d3's geoMercator().scale(k).center(c).translate(t):
// the center coordinate lands on Translate.
type Mercator struct {
	Scale     float64
	Center    LonLat
	Translate Point
}

func NewMercator(v Viewport) Mercator {
	return Mercator{
		Scale:     v.Scale,
		Center:    Center,
		Translate: Point{X: float64(v.Width) / 2, Y: float64(v.Height) / 2},
	}
}

func mercY(lat float64) float64 {
	phi := lat * math.Pi / 180
	return math.Log(math.Tan(math.Pi/4 + phi/2))
}

func (m Mercator) Project(p LonLat) Point {
	dl := (p.Lon - m.Center.Lon) * math.Pi / 180
	return Point{
		X: m.Translate.X + m.Scale*dl,
		Y: m.Translate.Y - m.Scale*(mercY(p.Lat)-mercY(m.Center.Lat)),
	}
}

// Viewport is the square map canvas chosen for a screen width.
type Viewport struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

// ViewportFor maps a screen width to the canvas used at that breakpoint;
// a non-positive width means unknown and gets the largest canvas.
func ViewportFor(screenWidth int) Viewport {
	switch {
	case screenWidth <= 0:
		return Viewport{Width: 600, Height: 600, Scale: 125000}
	case screenWidth < 640: // mobile
		return Viewport{Width: 320, Height: 320, Scale: 65000}
	case screenWidth < 1024: // tablet
		return Viewport{Width: 400, Height: 400, Scale: 87000}
	case screenWidth < 1536: // desktop
		return Viewport{Width: 500, Height: 500, Scale: 115000}
	default:
		return Viewport{Width: 600, Height: 600, Scale: 125000}
	}
}

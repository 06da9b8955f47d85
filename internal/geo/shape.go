package geo

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrNoFeatures = errors.New("geo: no features")

// Shape is the village outline loaded once at startup.
type Shape struct {
	Name string
	geom orb.Geometry
}

func LoadShape(path string) (*Shape, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseShape(b)
}

// ParseShape keeps the first feature of a FeatureCollection.
func ParseShape(b []byte) (*Shape, error) {
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("geo: parse: %w", err)
	}
	if len(fc.Features) == 0 || fc.Features[0].Geometry == nil {
		return nil, ErrNoFeatures
	}
	f := fc.Features[0]
	name := f.Properties.MustString("NAME_4", "")
	return &Shape{Name: name, geom: f.Geometry}, nil
}

// Path renders the outline as an SVG path in the projection's pixel space.
func (s *Shape) Path(m Mercator) string {
	if s == nil {
		return ""
	}
	var sb strings.Builder
	switch g := s.geom.(type) {
	case orb.MultiPolygon:
		for _, poly := range g {
			writePolygon(&sb, m, poly)
		}
	case orb.Polygon:
		writePolygon(&sb, m, g)
	}
	return sb.String()
}

func writePolygon(sb *strings.Builder, m Mercator, poly orb.Polygon) {
	for _, ring := range poly {
		for i, pt := range ring {
			p := m.Project(LonLat{Lon: pt[0], Lat: pt[1]})
			if i == 0 {
				sb.WriteByte('M')
			} else {
				sb.WriteByte('L')
			}
			sb.WriteString(fmtNum(p.X))
			sb.WriteByte(',')
			sb.WriteString(fmtNum(p.Y))
		}
		if len(ring) > 0 {
			sb.WriteByte('Z')
		}
	}
}

func fmtNum(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

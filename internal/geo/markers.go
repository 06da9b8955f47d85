package geo

type Marker struct {
	ID          string `json:"id"`
	Coord       LonLat `json:"coordinates"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var Markers = []Marker{
	{
		ID:          "pantai-biduk",
		Coord:       LonLat{Lon: 118.68365837631133, Lat: 1.2552809003754883},
		Title:       "Pantai Biduk-Biduk",
		Type:        "Pantai Wisata",
		Description: "Pantai dengan pasir putih yang eksotis dan view sunset menawan",
		Image:       "/images/home/destination/image1.png",
	},
	{
		ID:          "dermaga-nelayan",
		Coord:       LonLat{Lon: 118.73299248841035, Lat: 1.2288381386994967},
		Title:       "Dermaga Nelayan",
		Type:        "Pelabuhan Tradisional",
		Description: "Tempat berlabuh perahu-perahu nelayan lokal dengan aktivitas harian yang menarik",
		Image:       "/images/home/destination/image2.png",
	},
}

type PlacedMarker struct {
	Marker
	Pixel Point `json:"pixel"`
}

func Place(m Mercator, markers []Marker) []PlacedMarker {
	out := make([]PlacedMarker, 0, len(markers))
	for _, mk := range markers {
		out = append(out, PlacedMarker{Marker: mk, Pixel: m.Project(mk.Coord)})
	}
	return out
}

func FindMarker(id string) (Marker, bool) {
	for _, m := range Markers {
		if m.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}

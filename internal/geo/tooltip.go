package geo

type TooltipMode string

const (
	Hover TooltipMode = "hover"
	Click TooltipMode = "click"
)

const (
	edgeMargin    = 8
	pointerOffset = 24
)

// Screen is the browser viewport the tooltip has to stay inside.
type Screen struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type TooltipBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlaceTooltip positions a fixed tooltip above the pointer, centred, clamped
// horizontally inside the screen and flipped below the pointer when it
// would leave the top edge. Hover tooltips are desktop only (ok=false).
func PlaceTooltip(mode TooltipMode, pointer Point, s Screen) (box TooltipBox, ok bool) {
	if mode == Hover && s.Width < 1024 {
		return TooltipBox{}, false
	}
	w, h := 200.0, 110.0
	if s.Width < 640 {
		w, h = 160, 80
	}
	left := pointer.X - w/2
	top := pointer.Y - h - pointerOffset
	if left < edgeMargin {
		left = edgeMargin
	}
	if left+w > s.Width-edgeMargin {
		left = s.Width - w - edgeMargin
	}
	if top < edgeMargin {
		top = pointer.Y + pointerOffset
	}
	return TooltipBox{Left: left, Top: top, Width: w, Height: h}, true
}

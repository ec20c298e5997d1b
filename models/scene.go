package models

const (
	ACTIVE_OPACITY   = 0.8
	INACTIVE_OPACITY = 0.2

	LEGEND_ACTIVE_OPACITY   = 1.0
	LEGEND_INACTIVE_OPACITY = 0.5
)

// Marker is one rendered circle, one per record.
type Marker struct {
	// Index of the record in the chart's data, doubles as draw order.
	Index int
	// Record is the row this marker was drawn from. Selection reads the raw fields back out of it.
	Record Record
	// ID is the marker's element id, unique within the page.
	ID string
	// Key is the record's identifying field as text, shared by markers of the same record across charts.
	Key string
	CX  float64
	CY  float64
	R   float64
	// Fill is a hex colour from the category palette.
	Fill string
	// Category is the colour field's value as text.
	Category string
	// ClassName is Category with whitespace replaced, usable as a CSS class.
	ClassName string
	Opacity   float64
	Selected  bool
}

// LegendEntry is one swatch+label row of a legend.
type LegendEntry struct {
	Label   string
	Fill    string
	Opacity float64
	// Y is the row's offset from the top of the legend.
	Y float64
}

type Orientation string

const (
	Bottom Orientation = "bottom"
	Left   Orientation = "left"
)

type Tick struct {
	// Pos is the tick's pixel position along the axis.
	Pos   float64
	Label string
}

type Axis struct {
	Orientation Orientation
	// Label is the axis title, the field name.
	Label string
	// Translate is where the axis line sits: the y of a bottom axis or the x of a left axis.
	Translate float64
	// Start and End are the pixel ends of the axis line.
	Start float64
	End   float64
	Ticks []Tick
}

// Rect is a rectangle in pixel space, [X0,Y0] top left and [X1,Y1] bottom right once normalised.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Normalise returns the rect with its corners ordered.
func (r Rect) Normalise() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Clamp limits the rect to bounds. Both rects are expected to be normalised.
func (r Rect) Clamp(bounds Rect) Rect {
	return Rect{
		X0: clamp(r.X0, bounds.X0, bounds.X1),
		Y0: clamp(r.Y0, bounds.Y0, bounds.Y1),
		X1: clamp(r.X1, bounds.X0, bounds.X1),
		Y1: clamp(r.Y1, bounds.Y0, bounds.Y1),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

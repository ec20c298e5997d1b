package chart

import "github.com/rs/zerolog"

const (
	DEFAULT_MARGIN = 50
	DEFAULT_SIZE   = 1000

	DEFAULT_ID_FIELD    = "Model"
	DEFAULT_LABEL_FIELD = "Type"

	MIN_RADIUS  = 6
	MAX_RADIUS  = 14
	TICK_COUNT  = 4
	DOMAIN_PAD  = 0.05
	LEGEND_STEP = 30
	// LEGEND_INSET is how far the legend sits from the right edge of the drawing area.
	LEGEND_INSET = 200
)

// Fields names the record fields a chart reads.
type Fields struct {
	X      string
	Y      string
	Radius string
	// Color is the category field, used for colour and legend grouping.
	Color string
	// ID identifies a record across charts, selection is synced on it. Defaults to "Model".
	ID string
	// Label is shown next to the ID in the results list. Defaults to "Type".
	Label string
}

func (f Fields) withDefaults() Fields {
	if f.ID == "" {
		f.ID = DEFAULT_ID_FIELD
	}
	if f.Label == "" {
		f.Label = DEFAULT_LABEL_FIELD
	}
	return f
}

func (f Fields) validate() error {
	required := []struct{ name, value string }{
		{"x", f.X},
		{"y", f.Y},
		{"radius", f.Radius},
		{"color", f.Color},
	}
	for _, r := range required {
		if r.value == "" {
			return &FieldError{Field: r.name}
		}
	}
	return nil
}

// FieldError reports which required field name was left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return ErrMissingField.Error() + ": " + e.Field
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

type settings struct {
	title  string
	legend []string
	margin float64
	size   float64
	log    zerolog.Logger
}

// Option configures a single Render call.
type Option func(*settings)

func WithTitle(title string) Option {
	return func(s *settings) {
		s.title = title
	}
}

// WithLegend sets the categories listed in the legend, in display order.
func WithLegend(categories ...string) Option {
	return func(s *settings) {
		s.legend = categories
	}
}

// WithMargin insets the plot area from the edges of the drawing area.
func WithMargin(margin float64) Option {
	return func(s *settings) {
		s.margin = margin
	}
}

// WithSize sets the side of the square drawing area, in logical units.
func WithSize(size float64) Option {
	return func(s *settings) {
		s.size = size
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

package scale

// Tableau10 is the qualitative palette categories are coloured from.
var Tableau10 = []string{
	"#4e79a7",
	"#f28e2c",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc949",
	"#af7aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ab",
}

// Ordinal assigns palette colours to categories by their index in the domain, wrapping around the palette.
// Asking for a category that isn't in the domain appends it, so it gets the next colour. Not safe for concurrent
// use.
type Ordinal struct {
	palette []string
	domain  []string
	index   map[string]int
}

func NewOrdinal(domain []string, palette []string) *Ordinal {
	o := &Ordinal{
		palette: palette,
		index:   make(map[string]int, len(domain)),
	}
	for _, d := range domain {
		o.add(d)
	}
	return o
}

func (o *Ordinal) Color(category string) string {
	i, ok := o.index[category]
	if !ok {
		i = o.add(category)
	}
	if len(o.palette) == 0 {
		return ""
	}
	return o.palette[i%len(o.palette)]
}

func (o *Ordinal) Domain() []string {
	return o.domain
}

func (o *Ordinal) add(category string) int {
	if i, ok := o.index[category]; ok {
		return i
	}
	i := len(o.domain)
	o.domain = append(o.domain, category)
	o.index[category] = i
	return i
}

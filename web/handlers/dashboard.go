package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	ds "github.com/starfederation/datastar-go/datastar"

	"brushplot/chart"
	"brushplot/events"
	"brushplot/models"
	"brushplot/state"
	"brushplot/store"
	"brushplot/web"
)

const (
	BRUSH_START = "start"
	BRUSH_MOVE  = "move"
	BRUSH_END   = "end"
)

var ErrUnknownPhase = errors.New("unknown brush phase")

type Dashboard struct {
	templates *template.Template
	hub       *events.EventHub
	data      []models.Record
	log       zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session // clientID -> that client's page
}

// session is one client's page. mu serialises its interactions so they are checked and applied in one step.
type session struct {
	mu sync.Mutex
	co *chart.Coordinator

	// page and seq are the last interaction applied. A tab numbers its interactions from 1 under a random page id.
	page string
	seq  int64
}

// inOrder reports whether an interaction is newer than the last one applied and records it if so. Interactions
// without a number, or from another tab, are always applied.
func (s *session) inOrder(o ordering) bool {
	if o.Seq <= 0 {
		return true
	}
	if o.Page == s.page && o.Seq <= s.seq {
		return false
	}
	s.page, s.seq = o.Page, o.Seq
	return true
}

type ordering struct {
	Page string `json:"page"`
	Seq  int64  `json:"seq"`
}

type legendSig struct {
	ordering
	Legend struct {
		Chart    string `json:"chart"`
		Category string `json:"category"`
	} `json:"legend"`
}

type brushSig struct {
	ordering
	Brush struct {
		Chart     string         `json:"chart"`
		Phase     string         `json:"phase"`
		Selection *[2][2]float64 `json:"selection"`
	} `json:"brush"`
}

// NewDashboard serves the dashboard charts over data to every client.
func NewDashboard(hub *events.EventHub, data []models.Record, log zerolog.Logger) (dashboard *Dashboard, err error) {
	dashboard = &Dashboard{
		hub:      hub,
		data:     data,
		log:      log,
		sessions: make(map[string]*session),
	}
	dashboard.templates, err = web.NewTemplates()
	return dashboard, err
}

func (d *Dashboard) Templates() *template.Template {
	return d.templates
}

func (d *Dashboard) Handlers() map[string]func(w http.ResponseWriter, r *http.Request) {
	return map[string]func(w http.ResponseWriter, r *http.Request){
		"/toggle-category": d.ToggleCategoryHandler,
		"/brush":           d.BrushHandler,
	}
}

func (d *Dashboard) Data(clientID string) (map[string]interface{}, error) {
	co, err := d.Coordinator(clientID)
	if err != nil {
		return nil, err
	}

	views := make([]web.ChartView, 0)
	for _, c := range co.Charts() {
		views = append(views, web.NewChartView(c))
	}

	return map[string]interface{}{
		"charts":  views,
		"results": co.State().Results(),
	}, nil
}

// Coordinator returns the client's page, rendering the dashboard charts the first time the client is seen.
func (d *Dashboard) Coordinator(clientID string) (*chart.Coordinator, error) {
	s, err := d.session(clientID)
	if err != nil {
		return nil, err
	}
	return s.co, nil
}

func (d *Dashboard) session(clientID string) (*session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if s, ok := d.sessions[clientID]; ok {
		return s, nil
	}

	log := d.log.With().Str("client", clientID).Logger()
	co := chart.NewCoordinator(state.New(clientID, d.hub), log)
	if err := store.RenderAll(co, d.data); err != nil {
		return nil, fmt.Errorf("couldn't render dashboard charts: %w", err)
	}
	s := &session{co: co}
	d.sessions[clientID] = s
	log.Info().Int("charts", len(co.Charts())).Msg("new session")

	return s, nil
}

// GeneratePatchOnEvent re-renders the client's page state: the markers and legend of every chart and the results
// list. The patch reflects the state at the time it is built, not the event, so a dropped event is made up for by the
// next one.
func (d *Dashboard) GeneratePatchOnEvent(event *events.Event, clientID string) func(*ds.ServerSentEventGenerator) error {
	d.mu.Lock()
	s, ok := d.sessions[clientID]
	d.mu.Unlock()
	if !ok {
		d.log.Warn().Str("client", clientID).Msg("no session for client")
		return nil
	}

	co := s.co

	var writer strings.Builder
	for _, c := range co.Charts() {
		view := web.NewChartView(c)
		if err := d.templates.ExecuteTemplate(&writer, "markers", view); err != nil {
			d.log.Error().Err(err).Msg("error executing markers template")
		}
		if err := d.templates.ExecuteTemplate(&writer, "legend", view); err != nil {
			d.log.Error().Err(err).Msg("error executing legend template")
		}
	}

	if err := d.templates.ExecuteTemplate(&writer, "results", co.State().Results()); err != nil {
		d.log.Error().Err(err).Msg("error executing results template")
	}
	d.log.Trace().Str("client", clientID).Str("event", string(event.Kind)).Msg("built patch")

	// Main closure
	return func(sse *ds.ServerSentEventGenerator) error {
		if writer.String() == "" {
			return nil
		}
		return sse.PatchElements(writer.String()) // morphs the target elements by ID
	}
}

// ToggleCategoryHandler is called when the client clicks a legend swatch or label.
func (d *Dashboard) ToggleCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var sig legendSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		d.log.Warn().Err(err).Msg("error reading signals")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s, err := d.session(getClientID(w, r))
	if err != nil {
		d.log.Error().Err(err).Msg("couldn't get session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inOrder(sig.ordering) {
		d.log.Debug().Int64("seq", sig.Seq).Msg("dropped stale legend toggle")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, err := s.co.ToggleCategory(sig.Legend.Chart, sig.Legend.Category); err != nil {
		d.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BrushHandler is called on every phase of a brush gesture over a chart.
func (d *Dashboard) BrushHandler(w http.ResponseWriter, r *http.Request) {
	var sig brushSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		d.log.Warn().Err(err).Msg("error reading signals")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s, err := d.session(getClientID(w, r))
	if err != nil {
		d.log.Error().Err(err).Msg("couldn't get session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.co.Chart(sig.Brush.Chart)
	if err != nil {
		d.writeError(w, err)
		return
	}

	if !s.inOrder(sig.ordering) {
		d.log.Debug().Int64("seq", sig.Seq).Str("phase", sig.Brush.Phase).Msg("dropped stale brush")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch sig.Brush.Phase {
	case BRUSH_START:
		c.BrushStart()
	case BRUSH_MOVE, BRUSH_END:
		c.Brush(toRect(sig.Brush.Selection))
	default:
		d.writeError(w, fmt.Errorf("%w: %q", ErrUnknownPhase, sig.Brush.Phase))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (d *Dashboard) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chart.ErrUnknownChart):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrUnknownPhase):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	d.log.Warn().Err(err).Msg("interaction rejected")
}

func toRect(selection *[2][2]float64) *models.Rect {
	if selection == nil {
		return nil
	}
	return &models.Rect{
		X0: selection[0][0],
		Y0: selection[0][1],
		X1: selection[1][0],
		Y1: selection[1][1],
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	ds "github.com/starfederation/datastar-go/datastar"

	"brushplot/events"
	"brushplot/web"
)

type Server struct {
	renderer Renderer
	hub      *events.EventHub
	script   string
	log      zerolog.Logger
	handler  *http.ServeMux
	http     *http.Server
}

// NewServer wires the page, the update stream, static assets and the renderer's interaction handlers. script is
// the client script served in place of the embedded source.
func NewServer(renderer Renderer, hub *events.EventHub, script string, log zerolog.Logger) *Server {
	s := &Server{
		renderer: renderer,
		hub:      hub,
		script:   script,
		log:      log,
	}

	handler := http.NewServeMux()
	handler.HandleFunc("/", s.IndexHandler)
	handler.HandleFunc("/updates", s.UpdatesHandler)
	handler.HandleFunc("/"+web.CLIENT_SCRIPT, s.ScriptHandler)
	handler.Handle("/static/", http.FileServer(http.FS(web.Static)))

	for path, uiHandler := range renderer.Handlers() {
		handler.HandleFunc(path, uiHandler)
	}

	s.handler = handler

	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("listening")
	s.http = &http.Server{Addr: addr, Handler: s.handler}
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data, err := s.renderer.Data(getClientID(w, r))
	if err != nil {
		s.log.Error().Err(err).Msg("couldn't build index data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	err = s.renderer.Templates().ExecuteTemplate(w, "index", data)
	if err != nil {
		s.log.Error().Err(err).Msg("couldn't execute template for index")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) ScriptHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	_, _ = w.Write([]byte(s.script))
}

// UpdatesHandler streams patches for every state change of the caller's page until the client goes away.
func (s *Server) UpdatesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	_, ch, cancel := s.hub.Subscribe()
	defer cancel()

	sse := ds.NewSSE(w, r)
	ctx := r.Context()
	log := s.log.With().Str("client", clientID).Logger()
	log.Debug().Msg("update stream opened")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("update stream closed")
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if event.Session != clientID {
				continue
			}
			patch := s.renderer.GeneratePatchOnEvent(event, clientID)
			if patch == nil {
				continue
			}
			if err := patch(sse); err != nil {
				log.Error().Err(err).Str("event", string(event.Kind)).Msg("error patching client")
				return
			}
		}
	}
}

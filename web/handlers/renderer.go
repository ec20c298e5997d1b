package handlers

import (
	"html/template"
	"net/http"

	ds "github.com/starfederation/datastar-go/datastar"

	"brushplot/events"
)

type Renderer interface {
	Templates() *template.Template
	Handlers() map[string]func(w http.ResponseWriter, r *http.Request)
	Data(clientID string) (map[string]interface{}, error)
	// GeneratePatchOnEvent returns the patch a client should receive for event, or nil if it has nothing to update.
	GeneratePatchOnEvent(event *events.Event, clientID string) func(*ds.ServerSentEventGenerator) error
}

package handlers

import (
	"net/http"

	"github.com/medassist/medassist/web"
)

// Index serves the bundled chat widget. The page is inert: it POSTs the full
// message history to /api/chat and renders the reply.
func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(web.Index)
}

// Health is a liveness probe for the widget host.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

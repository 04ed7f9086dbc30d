package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-relay/internal/app"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if h.maxBodySize > 0 {
		router.Use(middleware.RequestSize(h.maxBodySize))
	}
	router.Use(middleware.Compress(5))

	router.Get("/", h.liveness)
	router.Get("/api/version/", h.getServerVersion)

	// OCR service
	router.Post("/api/getBatchUploadUrl", h.getBatchUploadURL)
	router.Post("/api/processPDF", h.processPDF)
	router.Post("/api/pollResults", h.pollResults)
	router.Get("/api/pollResults/{batchId}", h.pollResultsByID)

	// binary relays
	router.Get("/proxy-zip", h.proxyZip)
	router.Post("/proxy-pandoc", h.proxyPandoc)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.NewRelayError(app.MsgRouteNotFound, nil), http.StatusNotFound)
}

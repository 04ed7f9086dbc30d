package http

import (
	"net/http"

	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/utils"
	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-chi/chi/v5"
)

// getBatchUploadURL relays the OCR service upload URL envelope verbatim.
func (h *Handler) getBatchUploadURL(w http.ResponseWriter, r *http.Request) {
	var request models.BatchURLRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.MineruToken = tokenOr(r, request.MineruToken)

	envelope, err := h.services.SubmissionService.RequestUploadURLs(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, envelope, http.StatusOK)
}

// processPDF submits the uploaded document and answers with its batch id.
func (h *Handler) processPDF(w http.ResponseWriter, r *http.Request) {
	request, err := readUpload(r, h.maxUploadSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	handle, err := h.services.SubmissionService.Submit(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("batch_id", handle.BatchID).Msg("processing started")
	utils.WriteJSON(w, models.NewProcessingResponse(handle), http.StatusOK)
}

func (h *Handler) pollResults(w http.ResponseWriter, r *http.Request) {
	var request models.PollRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	request.MineruToken = tokenOr(r, request.MineruToken)

	h.poll(w, r, request)
}

// pollResultsByID serves GET /api/pollResults/{batchId}?mineruToken=.
func (h *Handler) pollResultsByID(w http.ResponseWriter, r *http.Request) {
	h.poll(w, r, models.PollRequest{
		MineruToken: tokenOr(r, r.URL.Query().Get(formFieldToken)),
		BatchID:     chi.URLParam(r, "batchId"),
	})
}

func (h *Handler) poll(w http.ResponseWriter, r *http.Request, request models.PollRequest) {
	envelope, err := h.services.ResultService.Poll(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, envelope, http.StatusOK)
}

func (h *Handler) proxyZip(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.RelayService.RelayZip(r.Context(), models.ZipRequest{URL: r.URL.Query().Get("url")})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteBinary(w, payload, http.StatusOK)
}

func (h *Handler) proxyPandoc(w http.ResponseWriter, r *http.Request) {
	var request models.ConvertRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := h.services.RelayService.RelayMarkdownConversion(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteBinary(w, payload, http.StatusOK)
}

package models

// ProcessingResponse is returned by POST /api/processPDF once the document
// bytes reached the OCR service storage. The caller polls with BatchID.
type ProcessingResponse struct {
	Success bool   `json:"success"`
	BatchID string `json:"batchId"`
}

// NewProcessingResponse builds the success body for handle.
func NewProcessingResponse(handle ProcessingHandle) ProcessingResponse {
	return ProcessingResponse{Success: true, BatchID: handle.BatchID}
}

// RelayError is the uniform failure body. Browser code branches on
// Error being true.
type RelayError struct {
	Error bool `json:"error"`

	// Message is human readable. For rejected remote calls it is the
	// remote's own `msg`.
	Message string `json:"message"`

	// Details carries optional structured context, e.g. the upstream status
	// of a failed upload.
	Details map[string]any `json:"details,omitempty"`
}

// NewRelayError builds a RelayError with the given message and details.
func NewRelayError(message string, details map[string]any) RelayError {
	return RelayError{Error: true, Message: message, Details: details}
}

// StatusMessage is the body of the liveness route.
type StatusMessage struct {
	Message string `json:"message"`
}

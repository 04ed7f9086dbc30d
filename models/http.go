package models

// BatchURLRequest is the body of POST /api/getBatchUploadUrl.
type BatchURLRequest struct {
	// MineruToken is the caller's OCR service token.
	MineruToken string `json:"mineruToken"`

	// FileName is optional; the relay falls back to [DefaultFileName].
	FileName string `json:"fileName,omitempty"`
}

// PollRequest is the body of POST /api/pollResults.
type PollRequest struct {
	MineruToken string `json:"mineruToken"`
	BatchID     string `json:"batchId"`
}

// ConvertRequest is the body of POST /proxy-pandoc and of the request sent
// on to the document conversion service.
type ConvertRequest struct {
	Markdown string `json:"markdown"`
}

// ZipRequest is the query of GET /proxy-zip.
type ZipRequest struct {
	// URL is the absolute address of the result archive.
	URL string
}

package models

// DefaultBinaryContentType is used when an upstream does not say what it sent.
const DefaultBinaryContentType = "application/octet-stream"

// BinaryPayload is a relayed binary response.
type BinaryPayload struct {
	ContentType        string
	ContentDisposition string
	Body               []byte
}

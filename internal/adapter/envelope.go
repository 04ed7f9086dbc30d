package adapter

import (
	"encoding/json"

	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/go-resty/resty/v2"
)

// allocationData is the `data` member of a successful batch URL envelope.
type allocationData struct {
	BatchID  string   `json:"batch_id"`
	FileURLs []string `json:"file_urls"`
}

// decodeEnvelope classifies an OCR service answer: non-2xx, unparsable body
// and non-success code all become errors; anything else is returned as is.
func decodeEnvelope(resp *resty.Response) (models.RemoteEnvelope, error) {
	if !resp.IsSuccess() {
		return models.RemoteEnvelope{}, rejectedByStatus(resp)
	}

	env, err := models.ParseRemoteEnvelope(resp.Body())
	if err != nil {
		return models.RemoteEnvelope{}, malformed("response is not a JSON envelope", err)
	}

	if !env.Succeeded() {
		return models.RemoteEnvelope{}, rejectedByEnvelope(env)
	}

	return env, nil
}

// decodeAllocation reads the batch id and the first upload URL out of a
// successful envelope. Only one file is ever requested per batch.
func decodeAllocation(env models.RemoteEnvelope) (models.BatchAllocation, error) {
	if !env.Succeeded() {
		return models.BatchAllocation{}, rejectedByEnvelope(env)
	}
	if len(env.Data) == 0 {
		return models.BatchAllocation{}, malformed("response has no data", nil)
	}

	var data allocationData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return models.BatchAllocation{}, malformed("response data has unexpected shape", err)
	}

	if data.BatchID == "" {
		return models.BatchAllocation{}, malformed("response has no batch_id", nil)
	}
	if len(data.FileURLs) == 0 || data.FileURLs[0] == "" {
		return models.BatchAllocation{}, malformed("response has no upload URL", nil)
	}

	return models.BatchAllocation{BatchID: data.BatchID, UploadURL: data.FileURLs[0]}, nil
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pdf-relay/models"
)

const (
	formFieldToken    = "mineruToken"
	formFieldFileName = "fileName"
	formFieldFile     = "pdfFile"

	// maxFormValueSize bounds non-file multipart fields.
	maxFormValueSize = 64 << 10
)

// decodeJSON reads a JSON body into dst. An empty body leaves dst zeroed so
// that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}
}

// bearerToken returns the token of an "Authorization: Bearer <token>"
// header, or "" when there is none.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// tokenOr returns token, falling back to the Authorization header.
func tokenOr(r *http.Request, token string) string {
	if strings.TrimSpace(token) != "" {
		return token
	}
	return bearerToken(r)
}

// readUpload streams a multipart/form-data body part by part into an
// UploadRequest. The document is read into memory up to maxUploadSize;
// nothing touches the disk. Unknown fields are skipped.
func readUpload(r *http.Request, maxUploadSize int64) (models.UploadRequest, error) {
	var (
		request       models.UploadRequest
		fieldFileName string
		partFileName  string
	)

	reader, err := r.MultipartReader()
	if err != nil {
		return request, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return request, wrapReadErr(err)
		}

		switch part.FormName() {
		case formFieldToken:
			value, err := readFormValue(part)
			if err != nil {
				return request, err
			}
			request.Token = value
		case formFieldFileName:
			value, err := readFormValue(part)
			if err != nil {
				return request, err
			}
			fieldFileName = value
		case formFieldFile:
			body, err := readFile(part, maxUploadSize)
			if err != nil {
				return request, err
			}
			request.FileBytes = body
			request.MimeType = partMediaType(part.Header.Get("Content-Type"))
			partFileName = part.FileName()
		}
		_ = part.Close()
	}

	// an explicit fileName field wins over the name of the file part
	request.FileName = fieldFileName
	if request.FileName == "" {
		request.FileName = partFileName
	}
	request.Token = tokenOr(r, request.Token)
	return request, nil
}

// readFile reads a file part; limit <= 0 means unlimited.
func readFile(part io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		body, err := io.ReadAll(part)
		if err != nil {
			return nil, wrapReadErr(err)
		}
		return body, nil
	}

	body, err := io.ReadAll(io.LimitReader(part, limit+1))
	if err != nil {
		return nil, wrapReadErr(err)
	}
	if int64(len(body)) > limit {
		return nil, ErrUploadTooLarge
	}
	return body, nil
}

func readFormValue(part io.Reader) (string, error) {
	value, err := io.ReadAll(io.LimitReader(part, maxFormValueSize))
	if err != nil {
		return "", wrapReadErr(err)
	}
	return strings.TrimSpace(string(value)), nil
}

// partMediaType drops parameters and the generic octet-stream type some
// browsers send for unknown files.
func partMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "application/octet-stream" {
		return ""
	}
	return mediaType
}

func wrapReadErr(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingToken    = errors.New("missing mineruToken")
	ErrMissingBatchID  = errors.New("missing batchId")
	ErrMissingFile     = errors.New("missing pdfFile")
	ErrMissingURL      = errors.New("missing url")
	ErrInvalidURL      = errors.New("url must be an absolute http(s) URL")
	ErrMissingMarkdown = errors.New("missing markdown")
)

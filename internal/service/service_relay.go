package service

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pdf-relay/internal/adapter"
	"github.com/MKhiriev/go-pdf-relay/internal/logger"
	"github.com/MKhiriev/go-pdf-relay/internal/validators"
	"github.com/MKhiriev/go-pdf-relay/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// maxTitleLen bounds the derived download file name.
const maxTitleLen = 80

type relayService struct {
	fetcher   adapter.BinaryFetcher
	converter adapter.DocumentConverter
	validator validators.Validator

	markdown goldmark.Markdown

	logger *logger.Logger
}

func NewRelayService(fetcher adapter.BinaryFetcher, converter adapter.DocumentConverter, validator validators.Validator, logger *logger.Logger) RelayService {
	return &relayService{
		fetcher:   fetcher,
		converter: converter,
		validator: validator,
		markdown:  goldmark.New(),
		logger:    logger,
	}
}

func (s *relayService) RelayZip(ctx context.Context, request models.ZipRequest) (models.BinaryPayload, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.BinaryPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	payload, err := s.fetcher.Fetch(ctx, request.URL)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error relaying archive")
		return models.BinaryPayload{}, fmt.Errorf("error relaying archive: %w", err)
	}

	return payload, nil
}

// RelayMarkdownConversion converts the markdown and, when the converter did
// not name the file, names it after the document's first heading.
func (s *relayService) RelayMarkdownConversion(ctx context.Context, request models.ConvertRequest) (models.BinaryPayload, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.BinaryPayload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	payload, err := s.converter.ConvertMarkdown(ctx, request.Markdown)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error converting markdown")
		return models.BinaryPayload{}, fmt.Errorf("error converting markdown: %w", err)
	}

	if payload.ContentDisposition == "" {
		if title := s.documentTitle(request.Markdown); title != "" {
			payload.ContentDisposition = mime.FormatMediaType("attachment", map[string]string{
				"filename": title + extensionFor(payload.ContentType),
			})
		}
	}

	return payload, nil
}

// documentTitle returns the plain text of the first heading, reduced to
// characters that are safe in a file name.
func (s *relayService) documentTitle(markdown string) string {
	source := []byte(markdown)
	doc := s.markdown.Parser().Parse(text.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		_ = ast.Walk(heading, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := child.(*ast.Text); ok && entering {
				sb.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					sb.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		})
		return ast.WalkStop, nil
	})

	return sanitizeFileName(sb.String())
}

func sanitizeFileName(title string) string {
	title = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, title)

	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, ". ")

	if runes := []rune(title); len(runes) > maxTitleLen {
		title = strings.TrimSpace(string(runes[:maxTitleLen]))
	}
	return title
}

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	extensions, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(extensions) == 0 {
		return ""
	}
	return extensions[0]
}

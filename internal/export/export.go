// Package export is the seam where generated letters leave the app. The only
// implementation is a placeholder that reports what a real exporter would do.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind names an export format.
type Kind string

const (
	DOCX Kind = "DOCX"
	PDF  Kind = "PDF"
)

// Kinds lists the supported formats in menu order.
var Kinds = []Kind{DOCX, PDF}

var ErrUnknownKind = errors.New("unknown export kind")

// ParseKind accepts "docx"/"pdf" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case DOCX:
		return DOCX, nil
	case PDF:
		return PDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Notice is the user-facing result of an export action.
type Notice struct {
	Kind    Kind
	Message string
	// Written is false for every export this package performs.
	Written bool
}

// Exporter turns preview text into a document.
type Exporter interface {
	Export(ctx context.Context, kind Kind, preview string) (Notice, error)
}

// Stub performs no export and writes nothing.
type Stub struct{}

func (Stub) Export(ctx context.Context, kind Kind, preview string) (Notice, error) {
	if err := ctx.Err(); err != nil {
		return Notice{}, err
	}
	if kind != DOCX && kind != PDF {
		return Notice{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return Notice{
		Kind:    kind,
		Message: fmt.Sprintf("%s export is a demo in this prototype. In production, connect DocxTemplater or a PDF service.", kind),
	}, nil
}

package trip

import (
	"strings"
	"time"

	"tripflow/internal/pkg/errs"
)

// Document is metadata of a file attached to a trip (delivery note, receipt,
// photo). The file itself lives elsewhere; only a non-empty id is required.
type Document struct {
	id         string
	name       string
	url        string
	uploadedAt time.Time
}

func NewDocument(id, name, url string, uploadedAt time.Time) (Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Document{}, errs.NewValueIsRequiredError("document id")
	}
	return Document{id: id, name: name, url: url, uploadedAt: uploadedAt}, nil
}

func (d Document) ID() string {
	return d.id
}

func (d Document) Name() string {
	return d.name
}

func (d Document) URL() string {
	return d.url
}

func (d Document) UploadedAt() time.Time {
	return d.uploadedAt
}

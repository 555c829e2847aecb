// Package content fetches the portfolio's JSON resources and decodes them
// into typed records.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Resource paths, relative to the site root
const (
	ProjectsResource   = "data/projects.json"
	EducationResource  = "data/education.json"
	ExperienceResource = "data/experience.json"
	detailsDir         = "data/details/"
)

var (
	// ErrTransport marks failures to reach the resource at all
	ErrTransport = errors.New("transport failure")
	// ErrMalformed marks bodies that could not be decoded into the expected record shape
	ErrMalformed = errors.New("malformed data")
	// ErrMissingID is returned when a detail page is requested without an id
	ErrMissingID = errors.New("no project id provided")
	// ErrInvalidID is returned for ids that cannot name a detail resource
	ErrInvalidID = errors.New("invalid project id")
)

// Source fetches raw resource bodies by relative path
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// StatusError reports a non-success response for a resource
type StatusError struct {
	Resource string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: status %d", e.Resource, e.Code)
}

// IsNotFound reports whether err is a 404 for some resource
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == 404
}

// DecodeError reports a body that was fetched but could not be decoded
type DecodeError struct {
	Resource  string
	MediaType string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed data in %s (%s): %v", e.Resource, e.MediaType, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

var errNull = errors.New("null where a record is required")

// validator is implemented by records with fields that must be present
type validator interface {
	Validate() error
}

// Decode unmarshals data into T. A null body is rejected, as is a record
// whose Validate fails. Failures carry the sniffed media type of the body,
// which usually explains them (an HTML error page served with 200).
func Decode[T any](resource string, data []byte) (T, error) {
	var v T
	if err := decode(data, &v); err != nil {
		var zero T
		return zero, malformed(resource, data, err)
	}
	return v, nil
}

// DecodeList unmarshals a JSON array into []E, applying the same checks as
// Decode to every element.
func DecodeList[E any](resource string, data []byte) ([]E, error) {
	var raw []json.RawMessage
	if err := decode(data, &raw); err != nil {
		return nil, malformed(resource, data, err)
	}
	list := make([]E, len(raw))
	for i, r := range raw {
		if err := decode(r, &list[i]); err != nil {
			return nil, malformed(resource, data, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return list, nil
}

func decode(data []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNull
	}
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	if r, ok := v.(validator); ok {
		return r.Validate()
	}
	return nil
}

func malformed(resource string, data []byte, err error) *DecodeError {
	return &DecodeError{
		Resource:  resource,
		MediaType: mimetype.Detect(data).String(),
		Err:       err,
	}
}

// Load fetches resource from src and decodes it into T
func Load[T any](ctx context.Context, src Source, resource string) (T, error) {
	data, err := src.Fetch(ctx, resource)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](resource, data)
}

// LoadList fetches resource from src and decodes it as a list of E
func LoadList[E any](ctx context.Context, src Source, resource string) ([]E, error) {
	data, err := src.Fetch(ctx, resource)
	if err != nil {
		return nil, err
	}
	return DecodeList[E](resource, data)
}

// DetailResource returns the resource path of the detail page for id
func DetailResource(id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}
	if id == "." || id == ".." || strings.ContainsAny(id, `/\?#%`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return detailsDir + id + ".json", nil
}

// Open returns an HTTPSource when remoteBase is set and a directory source
// rooted at siteDir otherwise.
func Open(siteDir, remoteBase string, timeout time.Duration) (Source, error) {
	if remoteBase != "" {
		return NewHTTPSource(remoteBase, timeout)
	}
	return NewDirSource(siteDir), nil
}

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mode selects what is extracted from a URL
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeVideo || m == ModeAudio
}

// ErrEmptyURL is returned when a request is made without a link
var ErrEmptyURL = errors.New("empty url")

// RequestIDPrefix prefixes every generated request id
const RequestIDPrefix = "dl-"

// DownloadRequest is created when a trigger is pressed and discarded once the
// download finishes
type DownloadRequest struct {
	ID        string
	URL       string
	Mode      Mode
	CreatedAt time.Time
}

// NewDownloadRequest validates the URL and builds a request for the given mode
func NewDownloadRequest(url string, mode Mode) (*DownloadRequest, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown download mode: %q", mode)
	}

	return &DownloadRequest{
		ID:        generateRequestID(),
		URL:       url,
		Mode:      mode,
		CreatedAt: time.Now(),
	}, nil
}

// generateRequestID returns a time ordered unique id
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}

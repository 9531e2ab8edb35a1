package models

import "fmt"

// VideoKind is the persisted discriminator of a lesson video reference
type VideoKind string

const (
	VideoKindEmbedded VideoKind = "embedded"
	VideoKindHosted   VideoKind = "hosted"
)

// VideoSource is a lesson video reference: either EmbeddedVideo or HostedVideo
type VideoSource interface {
	Kind() VideoKind
}

// EmbeddedVideo is an external video player URL (YouTube, Vimeo, ...)
type EmbeddedVideo struct {
	URL string
}

// Kind implements VideoSource
func (EmbeddedVideo) Kind() VideoKind { return VideoKindEmbedded }

// HostedVideo is a reference to a video asset managed by the media storage
type HostedVideo struct {
	AssetID string
}

// Kind implements VideoSource
func (HostedVideo) Kind() VideoKind { return VideoKindHosted }

// VideoResponse represents a playable video reference in API responses
type VideoResponse struct {
	Kind    VideoKind `json:"kind"`
	URL     string    `json:"url"`
	AssetID string    `json:"assetId,omitempty"`
}

// NewVideoSource builds a video reference from its persisted columns
//
// Returns an error if the kind is unknown or the column required by the kind is empty.
func NewVideoSource(kind VideoKind, url, assetID string) (VideoSource, error) {
	switch kind {
	case VideoKindEmbedded:
		if url == "" {
			return nil, fmt.Errorf("embedded video requires a url")
		}
		return EmbeddedVideo{URL: url}, nil
	case VideoKindHosted:
		if assetID == "" {
			return nil, fmt.Errorf("hosted video requires an asset id")
		}
		return HostedVideo{AssetID: assetID}, nil
	default:
		return nil, fmt.Errorf("unknown video kind: %q", kind)
	}
}

package initializr

import "errors"

// Sentinel errors for Initializr service operations.
var (
	// ErrMetadataFetch indicates the metadata request did not succeed.
	ErrMetadataFetch = errors.New("initializr: metadata fetch failed")

	// ErrDownload indicates the project generation request did not succeed.
	ErrDownload = errors.New("initializr: project download failed")

	// ErrExtraction indicates the downloaded archive could not be unpacked.
	ErrExtraction = errors.New("initializr: archive extraction failed")
)

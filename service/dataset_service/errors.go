package dataset_service

import "errors"

var (
	// ErrLoadFailed any fetch or parse failure while loading the datasets
	ErrLoadFailed = errors.New("could not load eligibility data")
	// ErrDataNotReady the datasets are not loaded yet
	ErrDataNotReady = errors.New("eligibility data is still loading")
	// ErrInvalidDocument a document is not the expected JSON shape
	ErrInvalidDocument = errors.New("invalid dataset document")
)

package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUpstreamFetch        = errors.New("upstream fetch failure")
	ErrGenerationFailure    = errors.New("generation failure")
	ErrStorageWrite         = errors.New("storage write failure")
	ErrPersistenceWrite     = errors.New("persistence write failure")
)

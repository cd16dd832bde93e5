package request

// Rate and URI are validated by the registry so callers get the
// registry's error codes rather than a generic binding failure.
type CreatorTermsRequest struct {
	Rate        int64  `json:"rate"`
	MetadataURI string `json:"metadata_uri"`
}

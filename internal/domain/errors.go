package domain

import "errors"

var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrFetch             = errors.New("fetch failed")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTruncatedData     = errors.New("truncated image data")
)

// Reason labels err with its taxonomy name for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, ErrFetch):
		return "fetch_error"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrTruncatedData):
		return "truncated_data"
	default:
		return "error"
	}
}

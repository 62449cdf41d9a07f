// Package fetcher retrieves page metadata from submitted tool websites.
package fetcher

import "errors"

var (
	// ErrInvalidURL indicates the URL is malformed or uses a forbidden scheme
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP indicates the hostname resolves to a private address
	ErrPrivateIP = errors.New("URL resolves to private IP")

	// ErrTimeout indicates the request exceeded its deadline
	ErrTimeout = errors.New("fetch timeout")

	// ErrBodyTooLarge indicates the response exceeded the size limit
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect limit was exceeded
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrNoMetadata indicates the page carried no usable title or description
	ErrNoMetadata = errors.New("no metadata found")
)

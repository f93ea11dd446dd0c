package client

import (
	"encoding/json"
	"net/url"

	internalhttp "github.com/bluewater-io/docean/v2/internal/http"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// decodeBody unmarshals a response body into v. An empty body (204 or
// bodyless 200) is not an error and leaves v untouched; a body that fails to
// parse is reported as a DecodeError.
func decodeBody(resp *internalhttp.Response, v interface{}) error {
	if len(resp.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &docean.DecodeError{Op: "decoding response body", Err: err}
	}

	return nil
}

// listValues converts list options to query values, tolerating nil.
func listValues(opts *docean.ListOptions) url.Values {
	if opts == nil {
		return nil
	}

	return opts.ToValues()
}

// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20
	}
	return n
}

// JSON decodes r.Body into dest and runs struct-tag validation.
// The body is capped at MAX_BODY_BYTES to prevent memory exhaustion.
// Returns (errs, nil) on validation failures and (nil, err) on malformed or
// oversized JSON.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors is the reverse of the server's error-to-status table.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	return statusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

// statusError returns nil for 2xx codes. detail is the plain-text body or
// any other context worth keeping.
func statusError(code int, detail string) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}

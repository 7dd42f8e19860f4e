package adapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

var errorsByStatus = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusTooManyRequests:     ErrRateLimited,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), kind: errorsByStatus[resp.StatusCode()]}
	// a body that is not an envelope leaves it zero
	_ = json.Unmarshal(resp.Body(), &apiErr.Envelope)

	if apiErr.StatusCode == http.StatusTooManyRequests {
		apiErr.RetryAfter, _ = strconv.Atoi(resp.Header().Get("Retry-After"))
	}

	return apiErr
}

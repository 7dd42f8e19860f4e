package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/validators"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// intParam parses an integer request parameter. An absent value yields def.
func intParam(raw string, def int64, loc ...string) (int64, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &validators.ValidationError{Fields: []validators.FieldError{{
			Loc:  loc,
			Msg:  "value is not a valid integer",
			Type: validators.TypeInteger,
		}}}
	}
	return v, nil
}

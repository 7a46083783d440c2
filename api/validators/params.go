package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ParseIDParam reads a numeric URL parameter.
func ParseIDParam(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid id parameter").
			WithDetails(map[string]any{"field": key})
	}
	return id, nil
}

// ParseQueryList reads a comma-separated query parameter into its non-empty
// parts. A repeated parameter contributes each occurrence.
func ParseQueryList(r *http.Request, key string) []string {
	var parts []string
	for _, raw := range r.URL.Query()[key] {
		for _, piece := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(piece); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}
	return parts
}

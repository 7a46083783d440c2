package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/marketconnect/backend/pkg/errors"
	"github.com/marketconnect/backend/pkg/logger"
)

// ErrorBody is the public error shape: an error message, the full mandatory
// field list on validation failures, and optional diagnostic details.
type ErrorBody struct {
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
	Details  any      `json:"details,omitempty"`
}

// WriteJSON serializes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

// WriteError maps any error onto the public error body and logs the chain.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if m := typed.Message(); m != "" {
		msg = m
	}

	body := ErrorBody{Error: msg}
	if typed.Code() == pkgerrors.CodeValidation {
		body.Required = typed.Required()
	}
	if meta.DetailsAllowed {
		body.Details = typed.Details()
		// store failures expose the underlying driver message, as the
		// legacy API did
		if body.Details == nil && typed.Code() == pkgerrors.CodeDependency {
			if cause := typed.Unwrap(); cause != nil {
				body.Details = cause.Error()
			}
		}
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		fields := map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		}
		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, body)
}

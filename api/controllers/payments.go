package controllers

import (
	"net/http"

	"github.com/marketconnect/backend/api/responses"
	"github.com/marketconnect/backend/api/validators"
	"github.com/marketconnect/backend/internal/payments"
	"github.com/marketconnect/backend/pkg/logger"
)

// VerifyPayment validates a gateway signature and records the payment on the
// order.
func VerifyPayment(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input payments.VerifyInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Verify(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithOrderID(r.Context(), result.OrderID), "payment verified")
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Payment verified successfully",
			"data":    result,
		})
	}
}

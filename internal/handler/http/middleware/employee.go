package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type employeeIDKey struct{}

// RequireEmployee resolves the employee_id claim once and stores it on the request context.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || validator.IsEmpty(employeeID) {
			response.HandleError(w, auth.ErrEmployeeClaimMissing)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithEmployeeID(r.Context(), employeeID)))
	})
}

func WithEmployeeID(ctx context.Context, employeeID string) context.Context {
	return context.WithValue(ctx, employeeIDKey{}, employeeID)
}

// EmployeeIDFromContext returns "" when RequireEmployee did not run.
func EmployeeIDFromContext(ctx context.Context) string {
	employeeID, _ := ctx.Value(employeeIDKey{}).(string)
	return employeeID
}

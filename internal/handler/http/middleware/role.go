package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
)

type contextKey string

const employeeIDKey contextKey = "employee_id"

func roleFromContext(r *http.Request) (jwt.Role, map[string]any, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", nil, false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", nil, false
	}
	return jwt.Role(role), claims, true
}

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if role != jwt.RoleAdmin {
			response.HandleError(w, auth.ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires the employee role and stores the token's employee id in the context.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, claims, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		employeeID, _ := claims["employee_id"].(string)
		if role != jwt.RoleEmployee || employeeID == "" {
			response.HandleError(w, auth.ErrEmployeeRequired)
			return
		}

		ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmployeeID returns the id stored by EmployeeOnly.
func EmployeeID(ctx context.Context) string {
	id, _ := ctx.Value(employeeIDKey).(string)
	return id
}

package api

import (
	"context"
	"net/http"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
)

const currentUserKey contextKey = "current_user"

// withSession resolves the persisted session identity and rejects
// requests that have none. The identity rides the request context for
// the handlers behind it.
func (h *Handlers) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok, err := h.sessions.Current(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		if !ok {
			writeError(w, http.StatusUnauthorized, "not_logged_in", "log in first")
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates the management surface to Admin sessions.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFrom(r.Context())
		if !ok || user.Role != clinic.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin_only", "this operation requires the Admin role")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFrom(ctx context.Context) (clinic.User, bool) {
	u, ok := ctx.Value(currentUserKey).(clinic.User)
	return u, ok
}

// canAccessPatient reports whether the session may read one patient's
// data: admins see everyone, a patient session only itself.
func canAccessPatient(user clinic.User, patientID string) bool {
	if user.Role == clinic.RoleAdmin {
		return true
	}
	return user.Role == clinic.RolePatient && user.PatientID == patientID
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

func roleToken(t *testing.T, ja *jwtauth.JWTAuth, role user.Role) string {
	t.Helper()
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return tokenString
}

func callGated(gate func(http.Handler) http.Handler, ja *jwtauth.JWTAuth, token string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(ja))
	r.With(gate).Post("/leave-requests", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/leave-requests", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoleGates(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)

	tests := []struct {
		name string
		gate func(http.Handler) http.Handler
		role user.Role
		want int
	}{
		{"staff gate allows staff", RequireStaff, user.RoleStaff, http.StatusCreated},
		{"staff gate blocks supervisor", RequireStaff, user.RoleSupervisor, http.StatusForbidden},
		{"staff gate blocks admin", RequireStaff, user.RoleAdmin, http.StatusForbidden},
		{"staff gate blocks hr", RequireStaff, user.RoleHR, http.StatusForbidden},
		{"supervisor gate allows supervisor", RequireSupervisor, user.RoleSupervisor, http.StatusCreated},
		{"supervisor gate allows admin", RequireSupervisor, user.RoleAdmin, http.StatusCreated},
		{"supervisor gate blocks staff", RequireSupervisor, user.RoleStaff, http.StatusForbidden},
		{"admin gate allows admin", RequireAdmin, user.RoleAdmin, http.StatusCreated},
		{"admin gate blocks supervisor", RequireAdmin, user.RoleSupervisor, http.StatusForbidden},
		{"hr gate allows hr", RequireHR, user.RoleHR, http.StatusCreated},
		{"hr gate allows admin", RequireHR, user.RoleAdmin, http.StatusCreated},
		{"hr gate blocks staff", RequireHR, user.RoleStaff, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callGated(tt.gate, ja, roleToken(t, ja, tt.role))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRoleGatesWithoutToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)

	rec := callGated(RequireStaff, ja, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

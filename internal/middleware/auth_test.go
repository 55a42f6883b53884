package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skyward/aerodrome/internal/auth"
	"skyward/aerodrome/internal/constants"
)

func passthrough(claimsSeen *auth.UserClaims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimsSeen != nil {
			*claimsSeen = auth.GetUserClaims(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := auth.MintToken("secret", "user-1", constants.RolePassenger, time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	var seen auth.UserClaims
	handler := AuthMiddleware("secret")(passthrough(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.UserID() != "user-1" {
		t.Errorf("claims not attached to context: %v", seen)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := AuthMiddleware("secret")(passthrough(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	handler := AuthMiddleware("secret")(passthrough(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestIsAdminMiddleware_PassengerForbidden(t *testing.T) {
	handler := IsAdminMiddleware()(passthrough(nil))

	claims := &auth.JWTClaims{UserUUID: "u1", RoleValue: constants.RolePassenger}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestIsAdminMiddleware_AdminAllowed(t *testing.T) {
	handler := IsAdminMiddleware()(passthrough(nil))

	claims := &auth.JWTClaims{UserUUID: "u1", RoleValue: constants.RoleAdmin}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestIsAdminMiddleware_NoClaims(t *testing.T) {
	handler := IsAdminMiddleware()(passthrough(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/airports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

package auth

import (
	"testing"
	"time"

	"skyward/aerodrome/internal/constants"
)

func TestMintAndParseToken(t *testing.T) {
	token, err := MintToken("secret", "user-1", constants.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID() != "user-1" {
		t.Errorf("user id round trip failed: %q", claims.UserID())
	}
	if !claims.IsAdmin() {
		t.Error("admin role lost in round trip")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := MintToken("secret", "user-1", constants.RolePassenger, time.Hour)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := MintToken("secret", "user-1", constants.RolePassenger, -time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.jwt"); err == nil {
		t.Error("garbage must not validate")
	}
}

func TestPassengerIsNotAdmin(t *testing.T) {
	claims := &JWTClaims{UserUUID: "u1", RoleValue: constants.RolePassenger}
	if claims.IsAdmin() {
		t.Error("passenger must not be admin")
	}
}

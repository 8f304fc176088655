package util

import (
	"strings"
	"testing"
	"time"

	"quizcraft_backend/internal/model"
)

func TestGenerateTestCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := GenerateTestCode()
		if len(code) != 8 || !strings.HasPrefix(code, "T-") {
			t.Fatalf("code %q does not match T-XXXXXX", code)
		}
		for _, ch := range code[2:] {
			if !strings.ContainsRune(testCodeCharset, ch) {
				t.Fatalf("code %q contains %q outside the charset", code, ch)
			}
		}
		seen[code] = true
	}
	if len(seen) < 150 {
		t.Fatalf("only %d distinct codes out of 200, generator looks degenerate", len(seen))
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "creator@example.com", Role: model.Creator}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "creator@example.com" || claims.Role != model.Creator {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := ParseJWT(token, "wrong-secret"); err == nil {
		t.Fatal("token must not verify under a different secret")
	}
}

func TestJWTExpiry(t *testing.T) {
	user := &model.User{Email: "creator@example.com", Role: model.Creator}
	user.ID = 1

	token, err := GenerateJWT(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "test-secret"); err == nil {
		t.Fatal("expired token must not parse")
	}
}

package helpers

import (
	"testing"
)

func TestSignAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("65f000000000000000000001", "amit@example.com", "user")
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "65f000000000000000000001" {
		t.Errorf("user id = %q", claims.UserID)
	}
	if claims.Email != "amit@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.IsAdmin() {
		t.Error("user role reported as admin")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := SignToken("65f000000000000000000001", "amit@example.com", "user")
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword(hash, "Str0ng!Pass") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password accepted")
	}
}

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!Pass", true},
		{"short1!A", true},
		{"alllowercase1!", false},
		{"NOLOWERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecial99", false},
		{"Ab1!", false},
	}

	for _, tc := range cases {
		if got := IsPasswordStrong(tc.password); got != tc.want {
			t.Errorf("IsPasswordStrong(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestStringTrim(t *testing.T) {
	cases := map[string]string{
		"  plain  ":   "plain",
		`"quoted"`:    "quoted",
		"'single'":    "single",
		` "mixed " `:  "mixed ",
		"no-trimming": "no-trimming",
	}

	for in, want := range cases {
		if got := StringTrim(in); got != want {
			t.Errorf("StringTrim(%q) = %q, want %q", in, got, want)
		}
	}
}

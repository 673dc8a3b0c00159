package validate

import "testing"

func TestCheckLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     Reason
	}{
		{"valid", "a@b.com", "whatever", OK},
		{"trims email", "  a@b.com  ", "whatever", OK},
		{"empty email", "", "whatever", MissingField},
		{"whitespace email", "   ", "whatever", MissingField},
		{"empty password", "a@b.com", "", MissingField},
		{"whitespace password", "a@b.com", "   ", MissingField},
		{"no at sign", "not-an-email", "whatever", InvalidEmail},
		{"missing domain", "a@", "whatever", InvalidEmail},
		{"missing local part", "@b.com", "whatever", InvalidEmail},
		{"spaces inside", "a b@c.com", "whatever", InvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := CheckLogin(tt.email, tt.password); got != tt.want {
				t.Errorf("CheckLogin(%q, %q) = %v, want %v", tt.email, tt.password, got, tt.want)
			}
		})
	}
}

func TestCheckLoginReturnsTrimmedEmail(t *testing.T) {
	email, reason := CheckLogin("  a@b.com ", "pw")
	if reason != OK {
		t.Fatalf("reason = %v, want OK", reason)
	}
	if email != "a@b.com" {
		t.Errorf("email = %q, want %q", email, "a@b.com")
	}
}

func TestCheckSignupPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Reason
	}{
		{"lower and upper", "Abcdef", OK},
		{"lower and digit", "abcde1", OK},
		{"upper and digit", "ABCDE1", OK},
		{"all three classes", "Abcdef1", OK},
		{"too short", "Abc1", WeakPassword},
		{"five chars two classes", "Abcde", WeakPassword},
		{"only lowercase", "abcdefgh", WeakPassword},
		{"only uppercase", "ABCDEFGH", WeakPassword},
		{"only digits", "12345678", WeakPassword},
		{"only symbols", "!!!!!!!!", WeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := CheckSignup("a@b.com", tt.password); got != tt.want {
				t.Errorf("CheckSignup(password=%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestCheckSignupEmailBeforeStrength(t *testing.T) {
	// A bad email reports InvalidEmail even when the password is also weak.
	if _, got := CheckSignup("nope", "weak"); got != InvalidEmail {
		t.Errorf("reason = %v, want InvalidEmail", got)
	}
}

func TestReasonMessage(t *testing.T) {
	if OK.Message() != "" {
		t.Error("OK should have no message")
	}
	for _, r := range []Reason{MissingField, InvalidEmail, WeakPassword} {
		if r.Message() == "" {
			t.Errorf("reason %v has empty message", r)
		}
	}
}

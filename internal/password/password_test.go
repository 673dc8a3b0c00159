package password

import "testing"

func TestHashVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("Abcdef1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Abcdef1" {
		t.Fatal("hash must not equal plaintext")
	}
	if !Verify("Abcdef1", hash) {
		t.Error("expected verify to succeed for matching password")
	}
	if Verify("abcdef1", hash) {
		t.Error("expected verify to fail for different password")
	}
}

func TestHashSaltedPerCall(t *testing.T) {
	h1, err := Hash("Abcdef1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := Hash("Abcdef1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("expected different hashes for the same input")
	}
	if !Verify("Abcdef1", h1) || !Verify("Abcdef1", h2) {
		t.Error("both hashes should verify against the original password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	cases := []string{"", "not-a-hash", "$2a$truncated", "$9z$10$unknownversion"}
	for _, h := range cases {
		if Verify("Abcdef1", h) {
			t.Errorf("Verify(%q) = true, want false", h)
		}
	}
}

package helper

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Kitchen123!")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "Kitchen123!" {
		t.Fatal("password stored in clear text")
	}

	if !VerifyPassword(hash, "Kitchen123!") {
		t.Error("expected the original password to verify")
	}
	if VerifyPassword(hash, "kitchen123!") {
		t.Error("expected a different password to be rejected")
	}
	if VerifyPassword("not-a-hash", "Kitchen123!") {
		t.Error("expected a malformed hash to be rejected")
	}
}

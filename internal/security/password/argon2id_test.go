package password

import (
	"strings"
	"testing"
)

// fast keeps the hash cost low for tests; Default is tuned for production.
var fast = Params{Memory: 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHashAndVerify(t *testing.T) {
	phc, err := Hash(fast, "correct horse")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Errorf("expected PHC prefix, got %q", phc)
	}
	if strings.Contains(phc, "correct horse") {
		t.Error("plaintext must not appear in the encoded hash")
	}
	if !Verify("correct horse", phc) {
		t.Error("expected matching password to verify")
	}
	if Verify("wrong horse", phc) {
		t.Error("expected mismatched password to fail")
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := Hash(fast, ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestHash_DistinctSalts(t *testing.T) {
	a, err := Hash(fast, "same password")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := Hash(fast, "same password")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a == b {
		t.Error("expected distinct hashes for the same password")
	}
	if !Verify("same password", a) || !Verify("same password", b) {
		t.Error("expected both hashes to verify")
	}
}

func TestVerify_MalformedPHC(t *testing.T) {
	cases := []string{
		"",
		"x",
		"$argon2id$v=19$m=1024,t=1,p=1$onlyfourparts",
		"$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$ZGs",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$ZGs",
		"$argon2id$v=19$m=oops$c2FsdA$ZGs",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$ZGs",
		"$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$!!!",
	}
	for _, phc := range cases {
		if Verify("anything", phc) {
			t.Errorf("expected malformed PHC %q to fail verification", phc)
		}
	}
}

package user

import "testing"

func TestSchemeFromName(t *testing.T) {
	if _, ok := SchemeFromName("bcrypt").(BcryptScheme); !ok {
		t.Error(`SchemeFromName("bcrypt") is not BcryptScheme`)
	}
	if _, ok := SchemeFromName("plain").(PlainScheme); !ok {
		t.Error(`SchemeFromName("plain") is not PlainScheme`)
	}
	if _, ok := SchemeFromName("lol").(PlainScheme); !ok {
		t.Error(`SchemeFromName("lol") did not default to PlainScheme`)
	}
}

func TestPlainScheme(t *testing.T) {
	scheme := PlainScheme{}
	stored, err := scheme.Hash("pwd")
	if err != nil {
		t.Fatalf("Hash() failed: %v", err)
	}
	if stored != "pwd" {
		t.Errorf("Hash() = %s, want pwd", stored)
	}
	if !scheme.Match(stored, "pwd") {
		t.Error("Match() rejected the right password")
	}
	if scheme.Match(stored, "nope") {
		t.Error("Match() accepted the wrong password")
	}
}

func TestBcryptScheme(t *testing.T) {
	scheme := BcryptScheme{}
	stored, err := scheme.Hash("pwd")
	if err != nil {
		t.Fatalf("Hash() failed: %v", err)
	}
	if stored == "pwd" {
		t.Error("Hash() returned the raw password")
	}
	if !scheme.Match(stored, "pwd") {
		t.Error("Match() rejected the right password")
	}
	if scheme.Match(stored, "nope") {
		t.Error("Match() accepted the wrong password")
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		username string
		ok       bool
	}{
		{"Alice", true},
		{"Mary-Jane O'Neil", true},
		{"user_42", true},
		{"  padded name  ", true},
		{"ab", false},
		{"", false},
		{"name!with@symbols", false},
		{strings.Repeat("a", 51), false},
	}
	for i, c := range cases {
		if got := IsValidUsername(c.username); got != c.ok {
			t.Errorf("case %d (%q): got %v, want %v", i, c.username, got, c.ok)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@x.com", true},
		{"first.last@sub.domain.org", true},
		{"noat.example.com", false},
		{"no domain@", false},
		{"a@b", false},
		{"", false},
	}
	for i, c := range cases {
		if got := IsValidEmail(c.email); got != c.ok {
			t.Errorf("case %d (%q): got %v, want %v", i, c.email, got, c.ok)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("12345") {
		t.Error("5 characters should be rejected")
	}
	if !IsValidPassword("123456") {
		t.Error("6 characters should be accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("secret1", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

package utils

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pink Floyd", "pink-floyd"},
		{"The Dark Side of the Moon", "the-dark-side-of-the-moon"},
		{"  AC/DC  ", "ac-dc"},
		{"Sgt. Pepper's", "sgt-pepper-s"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSha512String(t *testing.T) {
	// Same input must always produce the same digest, different inputs must not collide here
	a := Sha512String("password" + "salt1")
	b := Sha512String("password" + "salt1")
	c := Sha512String("password" + "salt2")
	if a != b {
		t.Errorf("hash is not deterministic")
	}
	if a == c {
		t.Errorf("different salts produced the same hash")
	}
	if len(a) != 128 {
		t.Errorf("expected 128 hex chars, got %d", len(a))
	}
}

func TestRandSalt(t *testing.T) {
	if RandSalt(60) == RandSalt(60) {
		t.Errorf("two salts came out identical")
	}
}

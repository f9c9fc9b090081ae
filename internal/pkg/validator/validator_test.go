package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{
		"9876543210",
		"+919876543210",
		"919876543210",
		"09876543210",
		"98765 43210",
		"98765-43210",
	}
	invalid := []string{
		"1234567890", // starts below 6
		"98765",      // too short
		"98765432101",
		"abcdefghij",
		"",
	}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-01"); !ok {
		t.Error("IsValidDate(2024-06-01) = false, want true")
	}
	for _, bad := range []string{"01-06-2024", "2024/06/01", "June 1, 2024", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+05:30"}
	for _, v := range valid {
		if _, ok := IsValidDateTime(v); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", v)
		}
	}
	if _, ok := IsValidDateTime("15 Jan 2024"); ok {
		t.Error("IsValidDateTime(15 Jan 2024) = true, want false")
	}
}

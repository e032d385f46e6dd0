package validator

import (
	"testing"
	"time"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-09"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "24-01", "2024/01", ""}
	for _, m := range valid {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Errorf("IsValidDate(2024-02-29) = false, want true")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Errorf("IsValidDate(2023-02-29) = true, want false")
	}
}

func TestParseDateTimeIn(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	got, ok := ParseDateTimeIn("2024-03-01 08:00:00", loc)
	if !ok {
		t.Fatalf("ParseDateTimeIn returned !ok")
	}
	want := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTimeIn = %v, want %v", got.UTC(), want)
	}

	got, ok = ParseDateTimeIn("2024-03-01T08:00:00Z", loc)
	if !ok || !got.Equal(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDateTimeIn RFC3339 = %v, %v", got, ok)
	}

	if _, ok := ParseDateTimeIn("01/03/2024 08:00", loc); ok {
		t.Errorf("ParseDateTimeIn accepted an unsupported layout")
	}
}

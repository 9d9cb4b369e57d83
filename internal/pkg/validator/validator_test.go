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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", "not-a-date", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	cases := []struct {
		lat, lon float64
		okLat    bool
		okLon    bool
	}{
		{0, 0, true, true},
		{90, 180, true, true},
		{-90, -180, true, true},
		{90.01, 0, false, true},
		{0, -180.01, true, false},
	}
	for _, c := range cases {
		if got := IsValidLatitude(c.lat); got != c.okLat {
			t.Errorf("IsValidLatitude(%v) = %v, want %v", c.lat, got, c.okLat)
		}
		if got := IsValidLongitude(c.lon); got != c.okLon {
			t.Errorf("IsValidLongitude(%v) = %v, want %v", c.lon, got, c.okLon)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"present", "absent"}
	if !IsInSlice("present", slice) {
		t.Error("IsInSlice(\"present\") = false, want true")
	}
	if IsInSlice("late", slice) {
		t.Error("IsInSlice(\"late\") = true, want false")
	}
}

package types

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Mainly clear"},
		{2, "Partly cloudy"},
		{3, "Overcast"},
		{45, "Fog"},
		{48, "Depositing rime fog"},
		{51, "Light drizzle"},
		{53, "Moderate drizzle"},
		{55, "Dense drizzle"},
		{61, "Slight rain"},
		{63, "Moderate rain"},
		{65, "Heavy rain"},
		{71, "Slight snow fall"},
		{80, "Rain showers"},
		{95, "Thunderstorm"},
		{99, "Thunderstorm with heavy hail"},
		{4, UnknownWeather},
		{-1, UnknownWeather},
		{1000, UnknownWeather},
	}

	for _, tt := range tests {
		if got := Describe(tt.code); got != tt.want {
			t.Errorf("Describe(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDescribe_NeverEmpty(t *testing.T) {
	for code := -5; code <= 120; code++ {
		if Describe(code) == "" {
			t.Errorf("Describe(%d) returned empty string", code)
		}
	}
}

func TestNewWeather(t *testing.T) {
	w := NewWeather(3)
	if w.Code != 3 || w.Description != "Overcast" {
		t.Errorf("NewWeather(3) = %+v", w)
	}
	if Overcast.String() != "Overcast" {
		t.Errorf("Overcast.String() = %q", Overcast.String())
	}
}

func TestLocation_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"full", Location{Name: "Denver", Admin1: "Colorado", Country: "United States"}, "Denver, Colorado, United States"},
		{"repeated region", Location{Name: "New York", Admin1: "New York", Country: "United States"}, "New York, United States"},
		{"name only", Location{Name: "Paris"}, "Paris"},
		{"blank parts", Location{Name: "Tokyo", Admin1: " ", Country: "Japan"}, "Tokyo, Japan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

package timezone

import (
	"errors"
	"testing"
)

type stubFinder struct {
	name   string
	calls  int
	gotLng float64
	gotLat float64
}

func (f *stubFinder) GetTimezoneName(lng float64, lat float64) string {
	f.calls++
	f.gotLng, f.gotLat = lng, lat
	return f.name
}

func TestService_GetTimezone(t *testing.T) {
	finder := &stubFinder{name: "America/Denver"}
	svc := NewServiceWithFinder(finder)

	tz, err := svc.GetTimezone(39.74, -104.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tz != "America/Denver" {
		t.Errorf("timezone = %q, want America/Denver", tz)
	}
	// tzf takes longitude first
	if finder.gotLng != -104.99 || finder.gotLat != 39.74 {
		t.Errorf("finder called with lng=%v lat=%v", finder.gotLng, finder.gotLat)
	}
}

func TestService_GetTimezone_NoMatch(t *testing.T) {
	svc := NewServiceWithFinder(&stubFinder{})

	if _, err := svc.GetTimezone(0, 0); err == nil {
		t.Fatal("expected error for empty timezone name")
	}
}

func TestService_FinderBuiltOnce(t *testing.T) {
	builds := 0
	finder := &stubFinder{name: "Europe/Paris"}
	svc := &service{newFinder: func() (Finder, error) {
		builds++
		return finder, nil
	}}

	for i := 0; i < 3; i++ {
		if _, err := svc.GetTimezone(48.85, 2.35); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if builds != 1 {
		t.Errorf("finder built %d times, want 1", builds)
	}
	if finder.calls != 3 {
		t.Errorf("finder queried %d times, want 3", finder.calls)
	}
}

func TestService_FinderInitError(t *testing.T) {
	svc := &service{newFinder: func() (Finder, error) {
		return nil, errors.New("corrupt data")
	}}

	_, err := svc.GetTimezone(1, 1)
	if err == nil {
		t.Fatal("expected init error")
	}
}

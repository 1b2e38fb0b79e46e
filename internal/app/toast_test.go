package app

import (
	"strings"
	"testing"
	"time"
)

func newToastModel(at time.Time) *Model {
	m := &Model{now: func() time.Time { return at }}
	return m
}

func TestToastExpiresAfterDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newToastModel(start)

	m.showInfoToast("saved")
	if !m.toastActive(start) {
		t.Fatalf("toast should be visible right after showing")
	}
	if !m.toastActive(start.Add(toastDuration - time.Millisecond)) {
		t.Fatalf("toast should still be visible just before expiry")
	}
	if m.toastActive(start.Add(toastDuration)) {
		t.Fatalf("toast should expire after its duration")
	}
}

func TestBlankToastIsIgnored(t *testing.T) {
	m := newToastModel(time.Now())
	m.showErrorToast("   ")
	if m.toastActive(m.now()) {
		t.Fatalf("blank messages must not raise a toast")
	}
}

func TestToastLineTruncatesToWidth(t *testing.T) {
	start := time.Now()
	m := newToastModel(start)
	m.showInfoToast(strings.Repeat("x", 200))

	line := m.toastLine(40)
	if line == "" {
		t.Fatalf("active toast should render")
	}
	if m.toastLine(0) != "" {
		t.Fatalf("zero width renders nothing")
	}
}

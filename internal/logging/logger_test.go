package logging

import "testing"

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", " WARN ", "error"} {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q): %v", level, err)
		}
		logger.Sync()
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty"); err == nil {
		t.Fatal("expected error")
	}
}

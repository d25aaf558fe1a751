package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"
	"github.com/stockpilot/stockpilot-go/internal/store"
)

func newUIStore(t *testing.T, path string) (*store.UIStore, *notify.Bus) {
	t.Helper()
	state, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	bus := notify.NewBus()
	return store.NewUIStore(state, bus, observability.NewMetrics()), bus
}

func TestUIStore_DarkModePersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	ui, _ := newUIStore(t, path)
	if ui.DarkMode() {
		t.Fatal("expected light theme by default")
	}
	ui.ToggleDarkMode()

	// A second store over the same file is a fresh process start.
	ui2, _ := newUIStore(t, path)
	if !ui2.DarkMode() {
		t.Error("expected dark mode to survive restart")
	}
}

func TestUIStore_LocaleDefaultsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")

	ui, _ := newUIStore(t, path)
	if ui.Locale() != "en" {
		t.Errorf("expected default locale 'en', got '%s'", ui.Locale())
	}
	ui.SetLocale("ru")

	ui2, _ := newUIStore(t, path)
	if ui2.Locale() != "ru" {
		t.Errorf("expected locale 'ru' after restart, got '%s'", ui2.Locale())
	}
}

func TestUIStore_LastNotificationWins(t *testing.T) {
	ui, _ := newUIStore(t, filepath.Join(t.TempDir(), "state.yaml"))

	ui.ShowSuccess("first")
	ui.ShowError("second")

	n, visible := ui.Current()
	if !visible {
		t.Fatal("expected a visible notification")
	}
	if n.Message != "second" || n.Severity != notify.SeverityError {
		t.Errorf("expected the later notification to win, got %+v", n)
	}

	ui.Dismiss()
	if _, visible := ui.Current(); visible {
		t.Error("expected no visible notification after dismiss")
	}
}

func TestUIStore_ZeroDurationGetsDefault(t *testing.T) {
	ui, bus := newUIStore(t, filepath.Join(t.TempDir(), "state.yaml"))

	var got notify.Notification
	bus.Subscribe(notify.TopicNotification, func(ev notify.Event) {
		got = ev.Payload.(notify.Notification)
	})

	ui.Show("saved", notify.SeverityInfo, 0)
	if got.Duration != notify.DefaultDuration {
		t.Errorf("expected default duration %v, got %v", notify.DefaultDuration, got.Duration)
	}

	ui.Show("long", notify.SeverityInfo, 10*time.Second)
	if got.Duration != 10*time.Second {
		t.Errorf("expected explicit duration kept, got %v", got.Duration)
	}
}

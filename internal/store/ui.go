package store

import (
	"sync"
	"time"

	"github.com/stockpilot/stockpilot-go/internal/infra/observability"
	"github.com/stockpilot/stockpilot-go/internal/notify"
	"github.com/stockpilot/stockpilot-go/internal/storage"
)

// UIStore tracks presentation preferences and the single transient
// notification slot. Show overwrites whatever is currently displayed:
// last write wins, no queue.
type UIStore struct {
	mu          sync.Mutex
	darkMode    bool
	locale      string
	sidebarOpen bool
	current     notify.Notification
	visible     bool

	state   *storage.Store
	bus     *notify.Bus
	metrics *observability.Metrics
}

// NewUIStore rehydrates preferences from persisted state.
func NewUIStore(state *storage.Store, bus *notify.Bus, metrics *observability.Metrics) *UIStore {
	locale := state.Get(storage.KeyLocale)
	if locale == "" {
		locale = "en"
	}
	return &UIStore{
		darkMode:    state.Get(storage.KeyDarkMode) == "true",
		locale:      locale,
		sidebarOpen: true,
		state:       state,
		bus:         bus,
		metrics:     metrics,
	}
}

// DarkMode reports the current theme choice.
func (u *UIStore) DarkMode() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.darkMode
}

// ToggleDarkMode flips the theme and persists the choice immediately.
func (u *UIStore) ToggleDarkMode() {
	u.mu.Lock()
	u.darkMode = !u.darkMode
	v := "false"
	if u.darkMode {
		v = "true"
	}
	u.mu.Unlock()

	_ = u.state.Set(storage.KeyDarkMode, v)
	u.changed()
}

// Locale returns the current locale code.
func (u *UIStore) Locale() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.locale
}

// SetLocale applies and persists the locale immediately, no confirmation
// round-trip.
func (u *UIStore) SetLocale(locale string) {
	u.mu.Lock()
	u.locale = locale
	u.mu.Unlock()

	_ = u.state.Set(storage.KeyLocale, locale)
	u.changed()
}

// SidebarOpen reports layout-shell sidebar visibility.
func (u *UIStore) SidebarOpen() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sidebarOpen
}

// ToggleSidebar flips sidebar visibility. Not persisted.
func (u *UIStore) ToggleSidebar() {
	u.mu.Lock()
	u.sidebarOpen = !u.sidebarOpen
	u.mu.Unlock()
	u.changed()
}

// Show displays a notification, overwriting any visible one. A zero
// duration gets the default auto-dismiss.
func (u *UIStore) Show(message string, severity notify.Severity, duration time.Duration) {
	if duration <= 0 {
		duration = notify.DefaultDuration
	}
	n := notify.Notification{Message: message, Severity: severity, Duration: duration}

	u.mu.Lock()
	u.current = n
	u.visible = true
	u.mu.Unlock()

	u.metrics.IncrNotification(string(severity))
	u.bus.Publish(notify.TopicNotification, n)
}

// Current returns the active notification and whether one is visible.
func (u *UIStore) Current() (notify.Notification, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.current, u.visible
}

// Dismiss hides the active notification.
func (u *UIStore) Dismiss() {
	u.mu.Lock()
	u.visible = false
	u.mu.Unlock()
	u.changed()
}

func (u *UIStore) ShowSuccess(message string) {
	u.Show(message, notify.SeveritySuccess, 0)
}

func (u *UIStore) ShowError(message string) {
	u.Show(message, notify.SeverityError, 0)
}

func (u *UIStore) ShowWarning(message string) {
	u.Show(message, notify.SeverityWarning, 0)
}

func (u *UIStore) ShowInfo(message string) {
	u.Show(message, notify.SeverityInfo, 0)
}

func (u *UIStore) changed() {
	u.bus.Publish(notify.TopicStateChanged, "ui")
}

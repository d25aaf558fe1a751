package notify_test

import (
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/notify"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := notify.NewBus()

	var got []notify.Event
	bus.Subscribe(notify.TopicStateChanged, func(ev notify.Event) {
		got = append(got, ev)
	})

	bus.Publish(notify.TopicStateChanged, "products")
	bus.Publish(notify.TopicStateChanged, "orders")

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Payload != "products" || got[1].Payload != "orders" {
		t.Errorf("unexpected payloads: %+v", got)
	}
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := notify.NewBus()

	calls := 0
	bus.Subscribe(notify.TopicAuthExpired, func(notify.Event) { calls++ })

	bus.Publish(notify.TopicStateChanged, "products")
	if calls != 0 {
		t.Errorf("expected no delivery on other topic, got %d", calls)
	}
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := notify.NewBus()

	calls := 0
	unsub := bus.Subscribe(notify.TopicNotification, func(notify.Event) { calls++ })

	bus.Publish(notify.TopicNotification, nil)
	unsub()
	bus.Publish(notify.TopicNotification, nil)

	if calls != 1 {
		t.Errorf("expected 1 delivery, got %d", calls)
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := notify.NewBus()
	bus.Publish(notify.TopicNotification, notify.Notification{Message: "nobody listens"})
}

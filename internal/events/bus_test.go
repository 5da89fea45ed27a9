package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()
	received := make(chan NodeConfigLoadedEvent, 1)

	unsub := bus.Subscribe(func(e NodeConfigLoadedEvent) {
		received <- e
	})
	defer unsub()

	ev := NodeConfigLoadedEvent{
		NodeID:    "vibelight_kitchen",
		Path:      "/etc/vibelight/node.toml",
		LEDCount:  60,
		Timestamp: "2026-01-27T10:30:00Z",
	}
	bus.Publish(ev)

	got := <-received
	if got != ev {
		t.Errorf("received %+v, want %+v", got, ev)
	}
}

func TestBus_MultipleSubscribers(_ *testing.T) {
	bus := New()
	received1 := make(chan NodeConfigFailedEvent, 1)
	received2 := make(chan NodeConfigFailedEvent, 1)

	unsub1 := bus.Subscribe(func(e NodeConfigFailedEvent) { received1 <- e })
	defer unsub1()
	unsub2 := bus.Subscribe(func(e NodeConfigFailedEvent) { received2 <- e })
	defer unsub2()

	bus.Publish(NodeConfigFailedEvent{Path: "node.toml", Error: "boom"})

	<-received1
	<-received2
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()
	received := make(chan NodeConfigFailedEvent, 1)

	unsub := bus.Subscribe(func(e NodeConfigFailedEvent) { received <- e })

	bus.Publish(NodeConfigFailedEvent{Path: "a.toml"})
	<-received

	unsub()

	bus.Publish(NodeConfigFailedEvent{Path: "b.toml"})
	select {
	case <-received:
		t.Fatal("Should not have received event after unsubscribe")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestBus_TypeSafety(t *testing.T) {
	bus := New()

	loaded := make(chan bool, 1)
	failed := make(chan bool, 1)

	unsub1 := bus.Subscribe(func(NodeConfigLoadedEvent) { loaded <- true })
	defer unsub1()
	unsub2 := bus.Subscribe(func(NodeConfigFailedEvent) { failed <- true })
	defer unsub2()

	bus.Publish(NodeConfigLoadedEvent{NodeID: "vibelight_a"})
	<-loaded

	select {
	case <-failed:
		t.Fatal("failed subscriber should NOT receive NodeConfigLoadedEvent")
	case <-time.After(10 * time.Millisecond):
	}

	bus.Publish(NodeConfigFailedEvent{Error: "bad"})
	<-failed

	select {
	case <-loaded:
		t.Fatal("loaded subscriber should NOT receive NodeConfigFailedEvent")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestBus_UnknownHandler(_ *testing.T) {
	bus := New()
	unsub := bus.Subscribe(func(string) {})
	unsub()
}

func TestBus_ThreadSafety(_ *testing.T) {
	bus := New()
	var wg sync.WaitGroup
	numGoroutines := 10
	eventsPerGoroutine := 100
	expected := numGoroutines * eventsPerGoroutine

	receivedCh := make(chan bool, expected)

	unsub := bus.Subscribe(func(NodeConfigLoadedEvent) { receivedCh <- true })
	defer unsub()

	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range eventsPerGoroutine {
				bus.Publish(NodeConfigLoadedEvent{
					NodeID:    "vibelight_a",
					Timestamp: time.Now().Format(time.RFC3339),
				})
			}
		}()
	}

	wg.Wait()

	for range expected {
		<-receivedCh
	}
}

func TestEventJSONSerialization(t *testing.T) {
	data, err := json.Marshal(NodeConfigFailedEvent{
		Path:      "/etc/vibelight/node.toml",
		Error:     "led.count: must be positive",
		Timestamp: "2026-01-27T10:30:00Z",
	})
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	for _, key := range []string{"path", "error", "timestamp"} {
		if _, ok := result[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}

func TestSubscribeToChannel(t *testing.T) {
	bus := New()
	ch := make(chan any, 10)

	unsub := SubscribeToChannel[NodeConfigLoadedEvent](bus, ch)
	defer unsub()

	bus.Publish(NodeConfigLoadedEvent{NodeID: "vibelight_desk"})

	received := <-ch
	ev, ok := received.(NodeConfigLoadedEvent)
	if !ok {
		t.Fatalf("Expected NodeConfigLoadedEvent, got %T", received)
	}
	if ev.NodeID != "vibelight_desk" {
		t.Errorf("NodeID = %s", ev.NodeID)
	}
}

func TestSubscribeToChannel_NonBlocking(_ *testing.T) {
	bus := New()
	ch := make(chan any)

	unsub := SubscribeToChannel[NodeConfigFailedEvent](bus, ch)
	defer unsub()

	done := make(chan bool, 1)
	go func() {
		bus.Publish(NodeConfigFailedEvent{Error: "x"})
		done <- true
	}()

	<-done
}

package chat

import (
	"context"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := &Client{
		UserID: 42,
		Send:   make(chan []byte, 10),
	}
	hub.Register(client)

	data := []byte(`{"type":"message","content":"hello"}`)
	hub.Broadcast([]int64{42}, data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.Unregister(client)

	if _, ok := <-client.Send; ok {
		t.Fatal("send channel should be closed after unregister")
	}
}

func TestHubCallsReturnAfterShutdown(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := &Client{UserID: 7, Send: make(chan []byte, 1)}
	hub.Register(client)
	cancel()

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("send channel should be closed on shutdown")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for shutdown")
	}

	// a connection racing the shutdown must not hang on the hub channels
	returned := make(chan struct{})
	go func() {
		late := &Client{UserID: 8, Send: make(chan []byte, 1)}
		hub.Register(late)
		hub.Broadcast([]int64{8}, []byte("late"))
		hub.Unregister(late)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after shutdown")
	}
}

func TestHubBroadcastSkipsOtherUsers(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	target := &Client{UserID: 1, Send: make(chan []byte, 10)}
	other := &Client{UserID: 2, Send: make(chan []byte, 10)}
	hub.Register(target)
	hub.Register(other)

	hub.Broadcast([]int64{1}, []byte("only for user 1"))

	select {
	case <-target.Send:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}

	select {
	case got := <-other.Send:
		t.Fatalf("user 2 should not receive anything, got %s", got)
	case <-time.After(50 * time.Millisecond):
	}
}

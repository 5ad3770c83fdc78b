package leads

import (
	"encoding/json"
	"testing"
	"time"

	"planetholiday/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// create fake client
	client := &Client{
		Send: make(chan []byte, 10),
	}

	// register client
	hub.register <- client

	// broadcast a lead
	lead := models.BookingLead{
		ID:       "1756700000000000000",
		LeadData: models.LeadData{Name: "Jo", Email: "jo@example.com"},
		Status:   models.LeadPending,
	}
	hub.BroadcastLead(lead)

	select {
	case got := <-client.Send:
		var decoded models.BookingLead
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("unmarshal broadcast: %v", err)
		}
		if decoded.ID != lead.ID || decoded.Name != "Jo" {
			t.Fatalf("unexpected broadcast payload: %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	// unregister client
	hub.unregister <- client
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// slow client: its buffer is already full and nothing drains it
	slow := &Client{Send: make(chan []byte, 1)}
	slow.Send <- []byte("backlog")
	hub.register <- slow

	// a second client proves when the broadcast has been delivered; both
	// sends happen in the same hub iteration
	witness := &Client{Send: make(chan []byte, 1)}
	hub.register <- witness

	hub.BroadcastLead(models.BookingLead{ID: "1"})

	select {
	case <-witness.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}

	// the slow client was dropped: the backlog is still readable, then the
	// closed channel shows through
	if got, ok := <-slow.Send; !ok || string(got) != "backlog" {
		t.Fatalf("expected buffered backlog, got %q (open=%v)", got, ok)
	}
	if _, ok := <-slow.Send; ok {
		t.Fatal("expected closed channel for slow client")
	}
}

package mq

import (
	"context"
	"encoding/json"
	"log"

	"planetholiday/rdx"
)

const channel = "content-events"

// Event describes a content mutation so cache entries can be dropped.
type Event struct {
	EntityType string `json:"entity_type"` // tour, destination, article, lead
	Method     string `json:"method"`      // POST, PUT, DELETE
	EntityID   string `json:"entity_id"`
}

// Emit publishes a content-change event to Redis. Failures are logged,
// never propagated; a stale cache entry expires on its own TTL anyway.
func Emit(ctx context.Context, eventName string, content Event) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartCacheWorker subscribes to content events and invalidates the list
// caches for the touched entity type.
func StartCacheWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[CacheWorker] Listening for content events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CacheWorker] Failed to parse event: %v", err)
			continue
		}
		rdx.RdxDel(
			event.EntityType+":featured",
			event.EntityType+":published",
		)
	}
}

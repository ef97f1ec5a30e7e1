package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const levelEventsChannel = "level_events"

type LevelUpdatedEvent struct {
	Type        string `json:"type"`
	LevelNumber int    `json:"levelNumber"`
	UpdatedBy   string `json:"updatedBy"`
}

// Notifier fans level-change events out to every connected editor.
// Events go through redis pub/sub so editors connected to another
// instance see them too. Implements level.Notifier.
type Notifier struct {
	db *redis.Client
}

func NewNotifier(db *redis.Client) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) LevelUpdated(levelNumber int, updatedBy string) {
	event := LevelUpdatedEvent{
		Type:        "LEVEL_UPDATED",
		LevelNumber: levelNumber,
		UpdatedBy:   updatedBy,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Error encoding level event:", err)
		return
	}
	if err := n.db.Publish(ctx, levelEventsChannel, payload).Err(); err != nil {
		log.Println("Error publishing level event:", err)
	}
}

// SubscribeEvents forwards published level events to the local clients.
func (n *Notifier) SubscribeEvents() error {
	sub := n.db.Subscribe(ctx, levelEventsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		log.Println("error subscribing to level events:", err)
		return err
	}

	ch := sub.Channel()
	log.Printf("Subscribed to %s channel", levelEventsChannel)
	go func() {
		for msg := range ch {
			var event LevelUpdatedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Println("Error decoding level event:", err)
				continue
			}
			broadcast(event)
		}
	}()

	return nil
}

func broadcast(event LevelUpdatedEvent) {
	for _, client := range allClients() {
		client.ConnMu.Lock()
		if err := client.Conn.WriteJSON(event); err != nil {
			log.Println("Error sending event to", client.ID, ":", err)
		}
		client.ConnMu.Unlock()
	}
}

package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"mess_finder/constants"
	"mess_finder/database"
	"mess_finder/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// Real-time sync of the public listing grid: every booking or moderation
// change is published on one Redis channel and fanned out to every
// connected client, which keeps multiple browser tabs consistent without
// polling.
const seatChannel = "seats:updates"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func SeatWebsocket(c *websocket.Conn) {
	defer func() {
		mu.Lock()
		delete(clients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	clients[c] = true
	mu.Unlock()

	// First frame: the current public grid snapshot.
	var seats model.Seats
	database.DB.Where("status = ? AND vacant_seats > 0", constants.SEAT_STATUS_PUBLISHED).
		Order("id DESC").Find(&seats)
	c.WriteJSON(seats)

	pubsub := redisClient.Subscribe(context.Background(), seatChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients, conn)
			}
		}
		mu.Unlock()
	}
}

// BroadcastSeatChange publishes a changed listing to every subscriber.
func BroadcastSeatChange(seat model.Seat) {
	payload, err := json.Marshal(map[string]any{
		"id":          seat.ID,
		"slug":        seat.Slug,
		"title":       seat.Title,
		"status":      seat.Status,
		"vacantSeats": seat.VacantSeats,
		"totalSeats":  seat.TotalSeats,
	})
	if err != nil {
		log.Printf("could not marshal seat update: %v", err)
		return
	}

	if err := redisClient.Publish(context.Background(), seatChannel, payload).Err(); err != nil {
		log.Printf("could not publish seat update: %v", err)
	}
}

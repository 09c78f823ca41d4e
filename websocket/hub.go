package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/mbugua512/skillswap/database"
	"github.com/mbugua512/skillswap/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type MessagePayload struct {
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

// RunHub delivers chat messages to connected participants and keeps the
// conversation preview fields current.
func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			now := time.Now()
			err := database.DB.Model(&models.Conversation{}).
				Where("id = ?", message.ConversationID).
				Updates(map[string]interface{}{
					"last_message":    message.Content,
					"last_message_at": now,
				}).Error
			if err != nil {
				log.Printf("Error updating conversation preview for %s: %v", message.ConversationID, err)
			}

			var participantIDs []uuid.UUID
			err = database.DB.
				Table("conversation_participants").
				Where("conversation_id = ?", message.ConversationID).
				Pluck("user_id", &participantIDs).Error
			if err != nil {
				log.Printf("Error fetching participant IDs for conversation %s: %v", message.ConversationID, err)
				continue
			}

			clientsMu.RLock()
			var stale []uuid.UUID
			for _, participantID := range participantIDs {
				if participantID == message.SenderID {
					continue
				}
				if conn, ok := clients[participantID]; ok {
					if err := conn.WriteJSON(message); err != nil {
						log.Printf("Error sending message to client %s: %v", participantID, err)
						conn.Close()
						stale = append(stale, participantID)
					}
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, id := range stale {
					delete(clients, id)
				}
				clientsMu.Unlock()
			}
		}
	}
}

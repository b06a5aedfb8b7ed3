package chat

import (
	"fmt"
	"time"

	"healthflow/internal/domain/timeline"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message es un turno de la conversación. La lista la mantiene el cliente; acá no se persiste.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func NewMessage(role Role, content string, now time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: now.UTC(),
	}
}

// DescribeEvent es el mensaje que se muestra en el chat al seleccionar un evento.
func DescribeEvent(e timeline.Event) string {
	dates := e.Date.Human()
	if e.HasEndDate() {
		dates += " - " + e.EndDate.Human()
	}
	return fmt.Sprintf("📋 **%s**\n\n%s\n\n📅 Date: %s\n\n💊 Type: %s", e.Title, e.Description, dates, e.Type)
}

package conversation

import (
	"sync"
	"time"

	"trial-monitor/internal/model"
)

const (
	// DefaultWindow is how many turns are kept per sender.
	DefaultWindow = 10
)

// Turn is one utterance in a sender's conversation.
type Turn struct {
	Role model.Role
	Text string
	At   time.Time
}

// UserTurn returns a user authored turn.
func UserTurn(text string) Turn {
	return Turn{Role: model.RoleUser, Text: text}
}

// ModelTurn returns an assistant authored turn.
func ModelTurn(text string) Turn {
	return Turn{Role: model.RoleModel, Text: text}
}

// entry is the history of one sender.
type entry struct {
	mu    sync.Mutex
	turns []Turn
}

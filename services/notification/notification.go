package notification

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service pushes a text message to connected dashboard clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BroadcastJSON encodes v and sends it through svc.
func BroadcastJSON(ctx context.Context, svc Service, v interface{}) error {
	if svc == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return svc.SendMessage(string(b))
}

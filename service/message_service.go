package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/FlavioLombardi95/dist-gestionale/generator"
	"github.com/FlavioLombardi95/dist-gestionale/models"
)

// MessageService wraps the generator engine for the catalog layer: it
// parses the style, fills in safe defaults for missing fields and logs
// one line per generated message.
type MessageService struct {
	engine *generator.Engine

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMessageService creates the service around an engine and a seeded
// random source.
func NewMessageService(engine *generator.Engine, rng *rand.Rand) *MessageService {
	return &MessageService{engine: engine, rng: rng}
}

// Generate produces a message for the request's item. A missing id gets
// a fresh uuid and a missing name a generic placeholder, so the call
// always returns a usable sentence.
func (s *MessageService) Generate(req models.GenerateRequest) models.GeneratedMessage {
	item := req.Item
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Name == "" {
		item.Name = "articolo"
	}

	style := generator.ParseStyle(req.Style)

	s.mu.Lock()
	message := s.engine.Generate(item, style, s.rng)
	s.mu.Unlock()

	log.Info().
		Str("item", item.ID).
		Str("style", string(style)).
		Int("chars", len(message)).
		Msg("✅ Messaggio generato")

	return models.GeneratedMessage{
		ItemID:    item.ID,
		Style:     string(style),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

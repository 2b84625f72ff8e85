package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/StudyGarden_Go/internal/domain"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Common event types
const (
	ReviewProcessed Type = "review.processed"
	RewardGranted   Type = "reward.granted"
	ItemEvolved     Type = "garden.item_evolved"
	ItemDied        Type = "garden.item_died"
	ThemeUnlocked   Type = "shop.theme_unlocked"
)

// Event represents a generic event in the engine
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// ReviewProcessedPayloadV1 is the typed payload for processed review events
type ReviewProcessedPayloadV1 struct {
	Outcome         domain.Outcome `json:"outcome"`
	Streak          int            `json:"streak"`
	LifetimeCorrect int            `json:"lifetime_correct"`
	Grants          []domain.Grant `json:"grants"`
	Timestamp       int64          `json:"timestamp"`
}

// ItemLifecyclePayloadV1 is the typed payload for evolution and death events
type ItemLifecyclePayloadV1 struct {
	ItemID    string          `json:"item_id"`
	Kind      domain.ItemKind `json:"kind"`
	Col       int             `json:"col"`
	Row       int             `json:"row"`
	Timestamp int64           `json:"timestamp"`
}

// ThemeUnlockedPayloadV1 is the typed payload for theme unlock events
type ThemeUnlockedPayloadV1 struct {
	Theme     string `json:"theme"`
	Price     int    `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewReviewProcessedEvent creates a new review processed event
func NewReviewProcessedEvent(res domain.ReviewResult, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReviewProcessed,
		Payload: ReviewProcessedPayloadV1{
			Outcome:         res.Outcome,
			Streak:          res.Streak,
			LifetimeCorrect: res.LifetimeCorrect,
			Grants:          res.Grants,
			Timestamp:       at.Unix(),
		},
	}
}

// NewItemEvolvedEvent creates a new item evolved event
func NewItemEvolvedEvent(item *domain.Item, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemEvolved,
		Payload: ItemLifecyclePayloadV1{
			ItemID:    item.ID,
			Kind:      item.Kind,
			Col:       item.Origin.Col,
			Row:       item.Origin.Row,
			Timestamp: at.Unix(),
		},
	}
}

// NewItemDiedEvent creates a new item died event
func NewItemDiedEvent(item *domain.Item, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDied,
		Payload: ItemLifecyclePayloadV1{
			ItemID:    item.ID,
			Kind:      item.Kind,
			Col:       item.Origin.Col,
			Row:       item.Origin.Row,
			Timestamp: at.Unix(),
		},
	}
}

// NewThemeUnlockedEvent creates a new theme unlocked event
func NewThemeUnlockedEvent(theme string, price int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ThemeUnlocked,
		Payload: ThemeUnlockedPayloadV1{
			Theme:     theme,
			Price:     price,
			Timestamp: at.Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// the engine has no background workers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("encountered %d errors while handling event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

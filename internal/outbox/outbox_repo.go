package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/google/uuid"
)

const outboxKey = "outbox"

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

// Event is an outbox row. Writes to the domain state and the event append go
// through the same store, so a persisted order implies a persisted event.
type Event struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	EventType     string          `json:"eventType"`
	Payload       json.RawMessage `json:"payload"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	SentAt        *time.Time      `json:"sentAt,omitempty"`
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) load(ctx context.Context) ([]Event, error) {
	var events []Event
	if _, err := storage.LoadJSON(ctx, r.store, outboxKey, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) Append(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	events, err := r.load(ctx)
	if err != nil {
		return err
	}

	events = append(events, Event{
		ID:            uuid.NewString(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       raw,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	})

	return storage.SaveJSON(ctx, r.store, outboxKey, events)
}

func (r *repository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	events, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := []Event{}
	for _, e := range events {
		if e.Status != StatusPending {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *repository) MarkSent(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, StatusSent)
}

func (r *repository) MarkFailed(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, StatusFailed)
}

func (r *repository) setStatus(ctx context.Context, id, status string) error {
	events, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range events {
		if events[i].ID == id {
			events[i].Status = status
			if status == StatusSent {
				now := time.Now()
				events[i].SentAt = &now
			}
			return storage.SaveJSON(ctx, r.store, outboxKey, events)
		}
	}
	return nil
}

// Package rabbitmq — публикация событий "коллекция изменилась" для внешних
// потребителей (синхронизация, аналитика).
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"rent-records-service/internal/constants"
	"rent-records-service/internal/core/port"
	"rent-records-service/pkg/rabbitmq"
)

// changeEvent — тело события. Потребителю достаточно знать, что и с какой
// записью произошло; сами данные он перечитывает через API.
type changeEvent struct {
	Action     string    `json:"action"`
	LandlordID string    `json:"landlordId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ChangeNotifierAdapter реализует ChangeNotifierPort поверх pkg/rabbitmq.
type ChangeNotifierAdapter struct {
	publisher *rabbitmq.Publisher
}

func NewChangeNotifierAdapter(publisher *rabbitmq.Publisher) (*ChangeNotifierAdapter, error) {
	if publisher == nil {
		return nil, fmt.Errorf("publisher cannot be nil")
	}
	return &ChangeNotifierAdapter{publisher: publisher}, nil
}

func (a *ChangeNotifierAdapter) RecordChanged(ctx context.Context, action port.ChangeAction, landlordID string) error {
	body, err := json.Marshal(changeEvent{
		Action:     string(action),
		LandlordID: landlordID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	return a.publisher.Publish(ctx, constants.RoutingKeyRecordChanged, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

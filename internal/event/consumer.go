// Package event keeps the catalog snapshot current by consuming product
// change events from the external catalog system.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealradar/dealradar/internal/catalog"
	"github.com/dealradar/dealradar/internal/domain"
	pkgkafka "github.com/dealradar/dealradar/pkg/kafka"
)

// Kafka topics for catalog change events.
const (
	TopicProductCreated = "catalog.product.created"
	TopicProductUpdated = "catalog.product.updated"
	TopicProductDeleted = "catalog.product.deleted"
)

// productDeletedData is the payload of a product.deleted event.
type productDeletedData struct {
	ID string `json:"id"`
}

// Consumer applies catalog change events to the store.
type Consumer struct {
	store  *catalog.Store
	logger *slog.Logger
}

// NewConsumer creates an event consumer over the given store.
func NewConsumer(store *catalog.Store, logger *slog.Logger) *Consumer {
	return &Consumer{
		store:  store,
		logger: logger,
	}
}

// Handle dispatches an event based on its type. Unknown types are logged
// and dropped, not failed, so mixed-topic groups don't stall.
func (c *Consumer) Handle(ctx context.Context, event *pkgkafka.Event) error {
	switch event.EventType {
	case TopicProductCreated, TopicProductUpdated:
		return c.handleUpsert(ctx, event)
	case TopicProductDeleted:
		return c.handleDelete(ctx, event)
	default:
		c.logger.WarnContext(ctx, "unknown event type received",
			slog.String("event_type", event.EventType),
			slog.String("event_id", event.EventID),
		)
		return nil
	}
}

// handleUpsert inserts or updates a product in the snapshot. Updated
// products keep their catalog position so result tie order stays stable.
func (c *Consumer) handleUpsert(ctx context.Context, event *pkgkafka.Event) error {
	var p domain.Product
	if err := event.UnmarshalData(&p); err != nil {
		return fmt.Errorf("unmarshal %s data: %w", event.EventType, err)
	}
	if p.ID == "" {
		return fmt.Errorf("%s event without product id", event.EventType)
	}

	c.store.Upsert(p)

	c.logger.InfoContext(ctx, "catalog product upserted",
		slog.String("product_id", p.ID),
		slog.String("event_type", event.EventType),
	)

	return nil
}

// handleDelete removes a product from the snapshot.
func (c *Consumer) handleDelete(ctx context.Context, event *pkgkafka.Event) error {
	var data productDeletedData
	if err := event.UnmarshalData(&data); err != nil {
		return fmt.Errorf("unmarshal product.deleted data: %w", err)
	}
	if data.ID == "" {
		return fmt.Errorf("product.deleted event without product id")
	}

	c.store.Delete(data.ID)

	c.logger.InfoContext(ctx, "catalog product deleted",
		slog.String("product_id", data.ID),
	)

	return nil
}

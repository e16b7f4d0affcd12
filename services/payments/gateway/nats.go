package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arshalif/cashi/internal/pkg/constants"
	"github.com/arshalif/cashi/internal/pkg/models"
)

// PublishPaymentProcessed emits an event for a recorded payment
func (g *PaymentGW) PublishPaymentProcessed(ctx context.Context, event *models.PaymentProcessedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment processed event: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectPaymentProcessed, data); err != nil {
		return fmt.Errorf("failed to publish payment processed event: %w", err)
	}

	return nil
}

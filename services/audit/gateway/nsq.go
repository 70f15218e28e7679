// Package gateway publishes audit entries to the message queue.
package gateway

import (
	"context"

	"github.com/prasetyadi/temanku/internal/pkg/models"
	"github.com/prasetyadi/temanku/internal/pkg/nsq"
)

// AuditGateway publishes audit entries to the audit topic for the consumer
// to persist.
type AuditGateway struct {
	producer *nsq.Producer
	topic    string
}

func NewAuditGateway(producer *nsq.Producer, topic string) *AuditGateway {
	return &AuditGateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishAuditLog enqueues one entry.
func (g *AuditGateway) PublishAuditLog(_ context.Context, entry *models.AuditLog) error {
	return g.producer.Publish(g.topic, entry)
}

package domain

import (
	"context"

	"github.com/OliveiraNt/kafka-shell/internal/config"
)

// ClientFactory creates Kafka clients from configuration.
type ClientFactory interface {
	CreateClient(cfg config.ClusterConfig) (KafkaClient, error)
}

// KafkaClient defines operations for interacting with a Kafka cluster.
type KafkaClient interface {
	Metadata(ctx context.Context) (*Metadata, error)
	CreateTopic(ctx context.Context, req CreateTopicRequest) (*CreateTopicResult, error)
	Close()
}

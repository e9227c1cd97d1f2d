package kafka

import (
	"github.com/OliveiraNt/kafka-shell/internal/config"
	"github.com/OliveiraNt/kafka-shell/internal/domain"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Factory creates Kafka clients from configuration.
type Factory struct {
	opts []kgo.Opt
}

// NewFactory creates a new client factory. The given options are applied to
// every client it builds.
func NewFactory(opts ...kgo.Opt) *Factory {
	return &Factory{opts: opts}
}

// CreateClient creates a new Kafka client from configuration.
func (f *Factory) CreateClient(cfg config.ClusterConfig) (domain.KafkaClient, error) {
	return NewClient(cfg, f.opts...)
}

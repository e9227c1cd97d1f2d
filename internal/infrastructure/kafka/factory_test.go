package kafka

import (
	"testing"

	"github.com/OliveiraNt/kafka-shell/internal/config"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestFactory_CreateClient(t *testing.T) {
	f := NewFactory()
	c, err := f.CreateClient(config.ClusterConfig{Name: "dev", Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if c == nil {
		t.Fatalf("client should not be nil")
	}
	c.Close()
}

func TestFactory_CreateClientWithOptions(t *testing.T) {
	utils.InitLogger()
	f := NewFactory(kgo.WithLogger(NewClientLogger(utils.Logger)))
	c, err := f.CreateClient(config.ClusterConfig{Name: "dev", Brokers: []string{"localhost:9092"}})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	c.Close()
}

func TestFactory_CreateClientError(t *testing.T) {
	f := NewFactory()
	if _, err := f.CreateClient(config.ClusterConfig{Name: "dev"}); err == nil {
		t.Fatalf("expected error without brokers")
	}
}

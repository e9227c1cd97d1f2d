package testutil

import (
	"context"

	"github.com/OliveiraNt/kafka-shell/internal/config"
	"github.com/OliveiraNt/kafka-shell/internal/domain"
)

// FakeKafkaClient is a test double implementing domain.KafkaClient with configurable responses.
type FakeKafkaClient struct {
	Meta         *domain.Metadata
	CreateResult *domain.CreateTopicResult
	Err          error

	Created []domain.CreateTopicRequest
	Closed  int
}

func NewFakeKafkaClient() *FakeKafkaClient {
	return &FakeKafkaClient{Meta: &domain.Metadata{}}
}

func (f *FakeKafkaClient) Metadata(_ context.Context) (*domain.Metadata, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Meta, nil
}

func (f *FakeKafkaClient) CreateTopic(_ context.Context, req domain.CreateTopicRequest) (*domain.CreateTopicResult, error) {
	f.Created = append(f.Created, req)
	if f.Err != nil {
		return nil, f.Err
	}
	if f.CreateResult != nil {
		return f.CreateResult, nil
	}
	return &domain.CreateTopicResult{
		Topic:             req.Name,
		NumPartitions:     req.NumPartitions,
		ReplicationFactor: req.ReplicationFactor,
	}, nil
}

func (f *FakeKafkaClient) Close() { f.Closed++ }

// FakeFactory returns a FakeKafkaClient for any config.
type FakeFactory struct {
	Client  domain.KafkaClient
	Err     error
	Configs []config.ClusterConfig
}

func (f *FakeFactory) CreateClient(cfg config.ClusterConfig) (domain.KafkaClient, error) {
	f.Configs = append(f.Configs, cfg)
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Client != nil {
		return f.Client, nil
	}
	return NewFakeKafkaClient(), nil
}

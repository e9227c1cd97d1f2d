package application

import (
	"context"
	"fmt"

	"github.com/OliveiraNt/kafka-shell/internal/config"
	"github.com/OliveiraNt/kafka-shell/internal/domain"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
)

// ClusterService exposes the cluster operations of the shell. Every call
// builds its own client from the immutable configuration and closes it
// before returning, so no state survives between two commands.
type ClusterService struct {
	cfg     config.ClusterConfig
	factory domain.ClientFactory
}

// NewClusterService creates a new cluster service.
func NewClusterService(cfg config.ClusterConfig, factory domain.ClientFactory) (*ClusterService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidClusterConfig, err)
	}
	return &ClusterService{cfg: cfg, factory: factory}, nil
}

// CheckClient builds and discards a client so that configuration problems
// such as unreadable certificates surface at startup.
func (s *ClusterService) CheckClient() error {
	client, err := s.factory.CreateClient(s.cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClusterConfig, err)
	}
	client.Close()
	return nil
}

func (s *ClusterService) withClient(fn func(domain.KafkaClient) error) error {
	client, err := s.factory.CreateClient(s.cfg)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer client.Close()
	return fn(client)
}

func (s *ClusterService) metadata(ctx context.Context) (*domain.Metadata, error) {
	var meta *domain.Metadata
	err := s.withClient(func(c domain.KafkaClient) error {
		var err error
		meta, err = c.Metadata(ctx)
		return err
	})
	if err != nil {
		utils.Logger.Error("fetch metadata failed", "cluster", s.cfg.Name, "err", err)
		return nil, fmt.Errorf("fetch metadata: %w", err)
	}
	utils.Logger.Debug("metadata fetched", "cluster", s.cfg.Name, "brokers", len(meta.Cluster.Brokers), "topics", len(meta.Topics))
	return meta, nil
}

// ListBrokers returns the cluster identity and its brokers in the order
// reported by the client.
func (s *ClusterService) ListBrokers(ctx context.Context) (*domain.Cluster, error) {
	meta, err := s.metadata(ctx)
	if err != nil {
		return nil, err
	}
	return &meta.Cluster, nil
}

// ListTopics returns the topics of the cluster with their partition counts.
func (s *ClusterService) ListTopics(ctx context.Context) ([]domain.TopicSummary, error) {
	meta, err := s.metadata(ctx)
	if err != nil {
		return nil, err
	}
	return meta.Topics, nil
}

// CreateTopic validates and submits a topic creation request. A returned
// error means the request was rejected as a whole; otherwise the result
// tells whether the broker created the topic.
func (s *ClusterService) CreateTopic(ctx context.Context, req domain.CreateTopicRequest) (*domain.CreateTopicResult, error) {
	if req.Name == "" {
		return nil, ErrInvalidTopicName
	}
	if req.NumPartitions <= 0 {
		return nil, ErrInvalidPartitionCount
	}
	if req.ReplicationFactor <= 0 {
		return nil, ErrInvalidReplicationFactor
	}

	var res *domain.CreateTopicResult
	err := s.withClient(func(c domain.KafkaClient) error {
		var err error
		res, err = c.CreateTopic(ctx, req)
		return err
	})
	if err != nil {
		utils.Logger.Error("create topic failed", "cluster", s.cfg.Name, "topic", req.Name, "err", err)
		return nil, fmt.Errorf("create topic %s: %w", req.Name, err)
	}

	if res.Created() {
		utils.Logger.Info("topic created", "cluster", s.cfg.Name, "topic", req.Name)
	} else {
		utils.Logger.Warn("topic rejected", "cluster", s.cfg.Name, "topic", req.Name, "err", res.Err)
	}
	return res, nil
}

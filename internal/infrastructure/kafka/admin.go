package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OliveiraNt/kafka-shell/internal/domain"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
)

// RequestTimeout bounds every metadata and topic creation request.
const RequestTimeout = 30 * time.Second

var errClientClosed = errors.New("kafka client is not initialized")

// AdminAPI is the subset of *kadm.Client used by Admin.
type AdminAPI interface {
	Metadata(ctx context.Context, topics ...string) (kadm.Metadata, error)
	CreateTopics(ctx context.Context, partitions int32, replicationFactor int16, configs map[string]*string, topics ...string) (kadm.CreateTopicResponses, error)
}

type Admin struct {
	client AdminAPI
}

// NewAdmin creates a new Admin
func NewAdmin(client AdminAPI) *Admin {
	return &Admin{client: client}
}

// Metadata requests brokers and all topics. Brokers keep the order returned
// by the client; topics come back as a map and are emitted sorted by name.
// A topic carrying an error code is kept, with the code as its status.
func (a *Admin) Metadata(ctx context.Context) (*domain.Metadata, error) {
	cctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	meta, err := a.client.Metadata(cctx)
	if err != nil {
		return nil, err
	}

	brokers := make([]domain.Broker, 0, len(meta.Brokers))
	for _, b := range meta.Brokers {
		rack := ""
		if b.Rack != nil {
			rack = *b.Rack
		}
		brokers = append(brokers, domain.Broker{
			ID:   b.NodeID,
			Host: b.Host,
			Port: b.Port,
			Rack: rack,
		})
	}

	topics := make([]domain.TopicSummary, 0, len(meta.Topics))
	for _, t := range meta.Topics.Sorted() {
		summary := domain.TopicSummary{
			Name:       t.Topic,
			Partitions: len(t.Partitions),
			Internal:   t.IsInternal,
		}
		if t.Err != nil {
			utils.Logger.Warn("topic metadata error", "topic", t.Topic, "err", t.Err)
			summary.Status = topicStatus(t.Err)
		}
		topics = append(topics, summary)
	}

	return &domain.Metadata{
		Cluster: domain.Cluster{
			ID:         meta.Cluster,
			Controller: meta.Controller,
			Brokers:    brokers,
		},
		Topics: topics,
	}, nil
}

// topicStatus returns the Kafka error name for broker errors and the full
// message otherwise.
func topicStatus(err error) string {
	var ke *kerr.Error
	if errors.As(err, &ke) {
		return ke.Message
	}
	return err.Error()
}

// CreateTopic submits a creation request for a single topic. An error means
// the request itself failed; the broker's verdict on the topic is carried by
// the returned result.
func (a *Admin) CreateTopic(ctx context.Context, req domain.CreateTopicRequest) (*domain.CreateTopicResult, error) {
	cctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := a.client.CreateTopics(cctx, req.NumPartitions, req.ReplicationFactor, nil, req.Name)
	if err != nil {
		return nil, err
	}

	r, ok := resp[req.Name]
	if !ok {
		return nil, fmt.Errorf("no creation response for topic %q", req.Name)
	}

	return &domain.CreateTopicResult{
		Topic:             req.Name,
		NumPartitions:     req.NumPartitions,
		ReplicationFactor: req.ReplicationFactor,
		Err:               r.Err,
	}, nil
}

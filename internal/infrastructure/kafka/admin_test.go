package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OliveiraNt/kafka-shell/internal/domain"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
)

// fakeAdmin implements AdminAPI for tests.
type fakeAdmin struct {
	meta      kadm.Metadata
	metaErr   error
	created   kadm.CreateTopicResponses
	createErr error

	deadline     time.Time
	partitions   int32
	replication  int16
	createdNames []string
}

func (f *fakeAdmin) Metadata(ctx context.Context, _ ...string) (kadm.Metadata, error) {
	f.deadline, _ = ctx.Deadline()
	return f.meta, f.metaErr
}

func (f *fakeAdmin) CreateTopics(ctx context.Context, partitions int32, replicationFactor int16, _ map[string]*string, topics ...string) (kadm.CreateTopicResponses, error) {
	f.deadline, _ = ctx.Deadline()
	f.partitions = partitions
	f.replication = replicationFactor
	f.createdNames = topics
	return f.created, f.createErr
}

func TestAdminMetadata(t *testing.T) {
	utils.InitLogger()
	rack := "r1"
	fake := &fakeAdmin{meta: kadm.Metadata{
		Cluster:    "cluster-1",
		Controller: 2,
		Brokers: kadm.BrokerDetails{
			{NodeID: 2, Host: "b", Port: 9093, Rack: &rack},
			{NodeID: 1, Host: "a", Port: 9092},
		},
		Topics: kadm.TopicDetails{
			"orders":             {Topic: "orders", Partitions: kadm.PartitionDetails{0: {}, 1: {}, 2: {}}},
			"audit":              {Topic: "audit", Partitions: kadm.PartitionDetails{0: {}}},
			"__consumer_offsets": {Topic: "__consumer_offsets", IsInternal: true, Partitions: kadm.PartitionDetails{0: {}}},
			"broken":             {Topic: "broken", Err: errors.New("unauthorized")},
			"fresh":              {Topic: "fresh", Err: kerr.LeaderNotAvailable, Partitions: kadm.PartitionDetails{0: {}, 1: {}}},
		},
	}}

	start := time.Now()
	meta, err := NewAdmin(fake).Metadata(context.Background())
	require.NoError(t, err)

	require.WithinDuration(t, start.Add(RequestTimeout), fake.deadline, 5*time.Second)
	require.Equal(t, "cluster-1", meta.Cluster.ID)
	require.Equal(t, int32(2), meta.Cluster.Controller)

	// brokers keep the client order
	require.Equal(t, []domain.Broker{
		{ID: 2, Host: "b", Port: 9093, Rack: "r1"},
		{ID: 1, Host: "a", Port: 9092},
	}, meta.Cluster.Brokers)

	// topics sorted by name, errored topics kept with their status
	require.Equal(t, []domain.TopicSummary{
		{Name: "__consumer_offsets", Partitions: 1, Internal: true},
		{Name: "audit", Partitions: 1},
		{Name: "broken", Status: "unauthorized"},
		{Name: "fresh", Partitions: 2, Status: "LEADER_NOT_AVAILABLE"},
		{Name: "orders", Partitions: 3},
	}, meta.Topics)
}

func TestAdminMetadataError(t *testing.T) {
	utils.InitLogger()
	fake := &fakeAdmin{metaErr: errors.New("unreachable")}
	_, err := NewAdmin(fake).Metadata(context.Background())
	require.EqualError(t, err, "unreachable")
}

func TestAdminCreateTopic(t *testing.T) {
	utils.InitLogger()

	t.Run("created", func(t *testing.T) {
		fake := &fakeAdmin{created: kadm.CreateTopicResponses{"orders": {Topic: "orders"}}}
		res, err := NewAdmin(fake).CreateTopic(context.Background(), domain.CreateTopicRequest{
			Name: "orders", NumPartitions: 3, ReplicationFactor: 2,
		})
		require.NoError(t, err)
		require.True(t, res.Created())
		require.Equal(t, "orders", res.Topic)
		require.Equal(t, int32(3), res.NumPartitions)
		require.Equal(t, int16(2), res.ReplicationFactor)
		require.Equal(t, []string{"orders"}, fake.createdNames)
		require.Equal(t, int32(3), fake.partitions)
		require.Equal(t, int16(2), fake.replication)
		require.False(t, fake.deadline.IsZero())
	})

	t.Run("rejected for the topic", func(t *testing.T) {
		topicErr := errors.New("topic already exists")
		fake := &fakeAdmin{created: kadm.CreateTopicResponses{"orders": {Topic: "orders", Err: topicErr}}}
		res, err := NewAdmin(fake).CreateTopic(context.Background(), domain.CreateTopicRequest{Name: "orders", NumPartitions: 1, ReplicationFactor: 1})
		require.NoError(t, err)
		require.False(t, res.Created())
		require.ErrorIs(t, res.Err, topicErr)
	})

	t.Run("request failed", func(t *testing.T) {
		fake := &fakeAdmin{createErr: context.DeadlineExceeded}
		_, err := NewAdmin(fake).CreateTopic(context.Background(), domain.CreateTopicRequest{Name: "orders", NumPartitions: 1, ReplicationFactor: 1})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("missing response", func(t *testing.T) {
		fake := &fakeAdmin{created: kadm.CreateTopicResponses{}}
		_, err := NewAdmin(fake).CreateTopic(context.Background(), domain.CreateTopicRequest{Name: "orders", NumPartitions: 1, ReplicationFactor: 1})
		require.Error(t, err)
	})
}

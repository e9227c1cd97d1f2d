package domain

// TopicSummary is the name and partition count of a topic. Status holds the
// error code the broker attached to the topic, empty when there is none.
type TopicSummary struct {
	Name       string
	Partitions int
	Internal   bool
	Status     string
}

// CreateTopicRequest holds the parameters of a topic creation.
type CreateTopicRequest struct {
	Name              string
	NumPartitions     int32
	ReplicationFactor int16
}

// CreateTopicResult is the per-topic outcome of an accepted creation request.
// Err is nil when the broker created the topic.
type CreateTopicResult struct {
	Topic             string
	NumPartitions     int32
	ReplicationFactor int16
	Err               error
}

// Created reports whether the topic was created.
func (r CreateTopicResult) Created() bool {
	return r.Err == nil
}

package application

import "errors"

var (
	// ErrInvalidClusterConfig is returned when cluster configuration is invalid
	ErrInvalidClusterConfig = errors.New("invalid cluster configuration")

	// ErrInvalidTopicName is returned when a topic name is empty
	ErrInvalidTopicName = errors.New("topic name must not be empty")

	// ErrInvalidPartitionCount is returned when the partition count is not positive
	ErrInvalidPartitionCount = errors.New("partition count must be positive")

	// ErrInvalidReplicationFactor is returned when the replication factor is not positive
	ErrInvalidReplicationFactor = errors.New("replication factor must be positive")
)

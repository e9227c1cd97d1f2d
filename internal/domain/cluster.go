// Package domain defines the entities exchanged between the shell, the
// application layer and the Kafka client adapter: brokers, topics, metadata
// snapshots and topic creation requests, as well as the client abstractions
// used to reach a cluster.
package domain

import (
	"net"
	"strconv"
)

// Broker is a node of the cluster as reported by a metadata request.
type Broker struct {
	ID   int32
	Host string
	Port int32
	Rack string
}

// Addr returns the host:port address of the broker.
func (b Broker) Addr() string {
	return net.JoinHostPort(b.Host, strconv.Itoa(int(b.Port)))
}

// Cluster identifies a cluster and lists its brokers.
type Cluster struct {
	ID string
	// Controller is the id of the controller broker, -1 when unknown.
	Controller int32
	Brokers    []Broker
}

// IsController reports whether b is the controller of the cluster.
func (c Cluster) IsController(b Broker) bool {
	return c.Controller >= 0 && b.ID == c.Controller
}

// Metadata is a point-in-time snapshot of the cluster.
type Metadata struct {
	Cluster Cluster
	Topics  []TopicSummary
}

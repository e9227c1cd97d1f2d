package shell

import (
	"context"
	"math"

	"github.com/OliveiraNt/kafka-shell/internal/domain"
)

const helpCommand = "help"

const (
	defaultPartitions  = 1
	defaultReplication = 1
)

func builtinCommands() []Command {
	return []Command{
		{Name: "lb", Usage: "to list brokers", Run: listBrokers},
		{Name: "lt", Usage: "to list topics", Run: listTopics},
		{Name: "ct", Usage: "to create topic", Run: createTopic},
		{Name: helpCommand, Aliases: []string{DefaultCommand}, Usage: "to display help", Run: printHelp},
		{Name: "exit", Usage: "quit shell", Run: exitShell, Exit: true},
	}
}

func listBrokers(ctx context.Context, s *Shell) error {
	cluster, err := s.gateway.ListBrokers(ctx)
	if err != nil {
		return err
	}
	s.render.Brokers(cluster)
	return nil
}

func listTopics(ctx context.Context, s *Shell) error {
	topics, err := s.gateway.ListTopics(ctx)
	if err != nil {
		return err
	}
	s.render.Topics(topics)
	return nil
}

func createTopic(ctx context.Context, s *Shell) error {
	name, err := askNonEmpty(ctx, s.prompter, s.render, "Topic name")
	if err != nil {
		return err
	}
	partitions, err := askPositiveInt(ctx, s.prompter, s.render, "Partitions number", defaultPartitions, math.MaxInt32)
	if err != nil {
		return err
	}
	replication, err := askPositiveInt(ctx, s.prompter, s.render, "Replication factor", defaultReplication, math.MaxInt16)
	if err != nil {
		return err
	}

	req := domain.CreateTopicRequest{
		Name:              name,
		NumPartitions:     int32(partitions),
		ReplicationFactor: int16(replication),
	}
	s.render.CreateTopicRequest(req)

	res, err := s.gateway.CreateTopic(ctx, req)
	if err != nil {
		return err
	}
	s.render.CreateTopicResult(res)
	return nil
}

func printHelp(_ context.Context, s *Shell) error {
	s.render.Help(s.commands)
	return nil
}

func exitShell(_ context.Context, s *Shell) error {
	s.render.Goodbye()
	return nil
}

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/OliveiraNt/kafka-shell/internal/domain"
)

const wavingHand = "\U0001F44B"

// Renderer formats command results for the operator.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

func (r *Renderer) println(s string) {
	fmt.Fprintln(r.out, s)
}

// Brokers prints the cluster id and one line per broker in the given order.
// The controller is marked.
func (r *Renderer) Brokers(cluster *domain.Cluster) {
	if cluster.ID != "" {
		r.println("Cluster: " + cluster.ID)
	}
	r.println(r.styles.Header.Render("Brokers:"))
	for _, b := range cluster.Brokers {
		line := fmt.Sprintf("  Id: %d  Host: %s", b.ID, b.Addr())
		if b.Rack != "" {
			line += "  Rack: " + b.Rack
		}
		if cluster.IsController(b) {
			line += "  (controller)"
		}
		r.println(line)
	}
}

// Topics prints one line per topic in the given order.
func (r *Renderer) Topics(topics []domain.TopicSummary) {
	r.println(r.styles.Header.Render("Topics:"))
	for _, t := range topics {
		line := fmt.Sprintf("  Name: %s  Partitions: %d", t.Name, t.Partitions)
		if t.Internal {
			line += "  (internal)"
		}
		if t.Status != "" {
			line += "  " + r.styles.Failure.Render("("+t.Status+")")
		}
		r.println(line)
	}
}

// CreateTopicRequest echoes the request about to be submitted.
func (r *Renderer) CreateTopicRequest(req domain.CreateTopicRequest) {
	r.println(fmt.Sprintf("Create topic %s %d:%d", req.Name, req.NumPartitions, req.ReplicationFactor))
}

// CreateTopicResult prints whether the broker created the topic.
func (r *Renderer) CreateTopicResult(res *domain.CreateTopicResult) {
	if res.Created() {
		r.println(r.styles.Success.Render(fmt.Sprintf("Topic created : %s (partitions=%d, replication=%d)",
			res.Topic, res.NumPartitions, res.ReplicationFactor)))
		return
	}
	r.println(r.styles.Failure.Render(fmt.Sprintf("Topic %s not created : %v", res.Topic, res.Err)))
}

// Help lists the commands with their keywords.
func (r *Renderer) Help(commands []Command) {
	r.println(r.styles.Header.Render("Type commands : "))
	for _, c := range commands {
		keys := append([]string{c.Name}, c.Aliases...)
		r.println(fmt.Sprintf("%s : %s", strings.Join(keys, " | "), c.Usage))
	}
}

// Error reports a failed command.
func (r *Renderer) Error(err error) {
	r.println(r.styles.Failure.Render("error: " + err.Error()))
}

// Notice prints a hint, such as why an answer was refused.
func (r *Renderer) Notice(msg string) {
	r.println(r.styles.Notice.Render(msg))
}

// Goodbye prints the farewell line.
func (r *Renderer) Goodbye() {
	r.println(fmt.Sprintf("Goodbye %s !", wavingHand))
}

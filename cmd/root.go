// Package cmd provides the kafka-shell command line. It parses the startup
// flags, resolves the cluster configuration and runs the interactive shell
// against it.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/OliveiraNt/kafka-shell/internal/application"
	"github.com/OliveiraNt/kafka-shell/internal/config"
	"github.com/OliveiraNt/kafka-shell/internal/infrastructure/kafka"
	"github.com/OliveiraNt/kafka-shell/internal/shell"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/twmb/franz-go/pkg/kgo"
)

// NewRootCmd builds the kafka-shell command.
func NewRootCmd() *cobra.Command {
	var opts config.Options

	root := &cobra.Command{
		Use:           "kafka-shell",
		Short:         "Interactive shell for kafka.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	bindFlags(root.Flags(), &opts)
	return root
}

func bindFlags(flags *pflag.FlagSet, opts *config.Options) {
	flags.StringArrayVarP(&opts.Brokers, "brokers", "b", nil, "bootstrap servers as host:port (repeatable or comma separated)")
	flags.CountVarP(&opts.Verbose, "verbose", "v", "verbose mode (-v, -vv, -vvv)")
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML file with cluster profiles (default $KAFKA_SHELL_CONFIG, then config.yml in ., $XDG_CONFIG_HOME/kafka-shell, ~/.config/kafka-shell or /etc/kafka-shell)")
	flags.StringVar(&opts.Cluster, "cluster", "", "cluster profile to use from the config file")
	flags.StringVar(&opts.ClientID, "client-id", "", "client id sent to the brokers")
}

// Execute runs the root command and exits the process on failure. An
// interrupt or termination signal ends the shell.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		utils.Logger.Fatal("kafka-shell terminated", "err", err)
	}
}

func configPath() string {
	if p := os.Getenv("KAFKA_SHELL_CONFIG"); p != "" {
		return p
	}
	return config.FindConfigPath()
}

func run(ctx context.Context, opts config.Options, in io.Reader, out io.Writer) error {
	utils.SetVerbosity(opts.Verbose)

	if opts.ConfigPath == "" {
		opts.ConfigPath = configPath()
	}
	if opts.ConfigPath != "" {
		utils.Logger.Debug("using config file", "path", opts.ConfigPath)
	}

	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	utils.Logger.Info("bootstrap servers", "cluster", cfg.Name, "brokers", cfg.Brokers, "auth", cfg.GetAuthType())

	var clientOpts []kgo.Opt
	if opts.Verbose >= utils.ClientLogVerbosity {
		clientOpts = append(clientOpts, kgo.WithLogger(kafka.NewClientLogger(utils.Logger)))
	}

	svc, err := application.NewClusterService(cfg, kafka.NewFactory(clientOpts...))
	if err != nil {
		return err
	}
	if err := svc.CheckClient(); err != nil {
		return err
	}

	styles := shell.PlainStyles()
	if isTerminal(out) {
		styles = shell.DefaultStyles()
	}

	label := "kafka"
	if opts.Cluster != "" {
		label += ":" + cfg.Name
	}

	sh := shell.New(svc,
		shell.NewLinePrompter(in, out, styles),
		shell.NewRenderer(out, styles),
		shell.WithLabel(label),
	)
	return sh.Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

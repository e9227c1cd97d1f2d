package config

import (
	"errors"
	"fmt"
)

// Options holds the startup settings collected from the command line.
type Options struct {
	Brokers    []string
	Verbose    int
	ConfigPath string
	Cluster    string
	ClientID   string
}

// Resolve builds the cluster configuration the shell connects with. A
// profile read from ConfigPath is the base; brokers and client id given on
// the command line take precedence over the profile. When brokers are given
// and no profile is selected, a file holding several profiles is ignored.
func (o Options) Resolve() (ClusterConfig, error) {
	var cfg ClusterConfig
	cliBrokers := NormalizeBrokers(o.Brokers)
	if o.ConfigPath != "" {
		file, err := ReadConfig(o.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", o.ConfigPath, err)
		}
		cfg, err = file.Profile(o.Cluster)
		if errors.Is(err, ErrAmbiguousProfile) && len(cliBrokers) > 0 {
			cfg, err = ClusterConfig{}, nil
		}
		if err != nil {
			return cfg, fmt.Errorf("select cluster %q: %w", o.Cluster, err)
		}
	} else if o.Cluster != "" {
		return cfg, fmt.Errorf("select cluster %q: %w", o.Cluster, ErrClusterProfileNotFound)
	}

	if len(cliBrokers) > 0 {
		cfg.Brokers = cliBrokers
	} else {
		cfg.Brokers = NormalizeBrokers(cfg.Brokers)
	}
	if o.ClientID != "" {
		cfg.ClientID = o.ClientID
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package config

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoBrokers is returned when no bootstrap server is configured.
	ErrNoBrokers = errors.New("no bootstrap servers configured")

	// ErrClusterProfileNotFound is returned when the requested profile is not in the config file.
	ErrClusterProfileNotFound = errors.New("cluster profile not found")

	// ErrAmbiguousProfile is returned when the config file holds several profiles and none was selected.
	ErrAmbiguousProfile = errors.New("config file holds several clusters, select one with --cluster")
)

// ClusterConfig holds cluster connectivity and security configuration.
type ClusterConfig struct {
	Name     string      `yaml:"name"`
	Brokers  []string    `yaml:"brokers"`
	ClientID string      `yaml:"client_id,omitempty"`
	TLS      *TLSConfig  `yaml:"tls,omitempty"`
	SASL     *SASLConfig `yaml:"sasl,omitempty"`
	AWS      *AWSConfig  `yaml:"aws,omitempty"`
}

// TLSConfig holds TLS related fields.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled,omitempty"`
	CAFile             string `yaml:"ca_file,omitempty"`
	CertFile           string `yaml:"cert_file,omitempty"`
	KeyFile            string `yaml:"key_file,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`
}

// SASLConfig holds SASL configuration. Credentials may be provided inline or via env var names.
type SASLConfig struct {
	Mechanism   string `yaml:"mechanism,omitempty"` // PLAIN, SCRAM-SHA-256, SCRAM-SHA-512
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	UsernameEnv string `yaml:"username_env,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty"`
}

// AWSConfig holds AWS MSK IAM settings.
type AWSConfig struct {
	IAM             bool   `yaml:"iam,omitempty"`
	AccessKeyEnv    string `yaml:"access_key_env,omitempty"`
	SecretKeyEnv    string `yaml:"secret_key_env,omitempty"`
	SessionTokenEnv string `yaml:"session_token_env,omitempty"`
}

// FileConfig is the layout of the YAML cluster profile file.
type FileConfig struct {
	Clusters []ClusterConfig `yaml:"clusters"`
}

// ReadConfig reads and decodes a YAML cluster profile file.
func ReadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Profile returns the cluster profile with the given name. An empty name
// selects the only profile of a single-cluster file.
func (f FileConfig) Profile(name string) (ClusterConfig, error) {
	if name == "" {
		switch len(f.Clusters) {
		case 0:
			return ClusterConfig{}, nil
		case 1:
			return f.Clusters[0], nil
		default:
			return ClusterConfig{}, ErrAmbiguousProfile
		}
	}
	for _, c := range f.Clusters {
		if c.Name == name {
			return c, nil
		}
	}
	return ClusterConfig{}, ErrClusterProfileNotFound
}

// NormalizeBrokers splits comma separated entries, trims blanks and drops
// duplicates while keeping the order the addresses were given in.
func NormalizeBrokers(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, entry := range in {
		for _, addr := range strings.Split(entry, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			if _, ok := seen[addr]; ok {
				continue
			}
			seen[addr] = struct{}{}
			out = append(out, addr)
		}
	}
	return out
}

// Validate checks that the configuration can be used to build a client.
func (c *ClusterConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return ErrNoBrokers
	}
	return nil
}

// GetAuthType returns a human-readable authentication type based on the cluster config
func (c *ClusterConfig) GetAuthType() string {
	if c.AWS != nil && c.AWS.IAM {
		return "AWS IAM"
	}

	if c.SASL != nil && c.SASL.Mechanism != "" {
		if c.TLS != nil && c.TLS.Enabled {
			return "SASL/" + c.SASL.Mechanism + " + TLS"
		}
		return "SASL/" + c.SASL.Mechanism
	}

	if c.TLS != nil && c.TLS.Enabled {
		if c.TLS.CertFile != "" && c.TLS.KeyFile != "" {
			return "mTLS"
		}
		return "TLS"
	}

	return "PLAINTEXT"
}

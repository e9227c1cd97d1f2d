package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		path := writeFile(t, "config.yml", `clusters:
  - name: dev
    brokers:
      - localhost:9092
      - localhost:9093
    client_id: shell-dev
  - name: prod
    brokers:
      - kafka1.prod:9092
    tls:
      enabled: true
      ca_file: /path/to/ca.pem
    sasl:
      mechanism: SCRAM-SHA-256
      username: admin
      password: secret
`)

		cfg, err := ReadConfig(path)
		if err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}
		if len(cfg.Clusters) != 2 {
			t.Fatalf("expected 2 clusters, got %d", len(cfg.Clusters))
		}
		if cfg.Clusters[0].Name != "dev" {
			t.Errorf("expected cluster name 'dev', got '%s'", cfg.Clusters[0].Name)
		}
		if len(cfg.Clusters[0].Brokers) != 2 {
			t.Errorf("expected 2 brokers, got %d", len(cfg.Clusters[0].Brokers))
		}
		if cfg.Clusters[0].ClientID != "shell-dev" {
			t.Errorf("expected client_id 'shell-dev', got '%s'", cfg.Clusters[0].ClientID)
		}
		if cfg.Clusters[1].TLS == nil || !cfg.Clusters[1].TLS.Enabled {
			t.Error("expected TLS enabled on prod")
		}
		if cfg.Clusters[1].SASL == nil || cfg.Clusters[1].SASL.Mechanism != "SCRAM-SHA-256" {
			t.Error("expected SCRAM-SHA-256 on prod")
		}
	})

	t.Run("config with AWS IAM", func(t *testing.T) {
		path := writeFile(t, "aws.yml", `clusters:
  - name: msk
    brokers:
      - b-1.msk.amazonaws.com:9098
    aws:
      iam: true
`)
		cfg, err := ReadConfig(path)
		if err != nil {
			t.Fatalf("ReadConfig() error = %v", err)
		}
		if cfg.Clusters[0].AWS == nil || !cfg.Clusters[0].AWS.IAM {
			t.Error("expected AWS IAM enabled")
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		if _, err := ReadConfig("/nonexistent/path/config.yml"); err == nil {
			t.Error("expected error for non-existent file, got nil")
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeFile(t, "invalid.yml", `clusters:
  - name: dev
    brokers: [invalid yaml structure
`)
		if _, err := ReadConfig(path); err == nil {
			t.Error("expected error for invalid YAML, got nil")
		}
	})
}

func TestFileConfigProfile(t *testing.T) {
	two := FileConfig{Clusters: []ClusterConfig{
		{Name: "dev", Brokers: []string{"dev:9092"}},
		{Name: "prod", Brokers: []string{"prod:9092"}},
	}}

	tests := []struct {
		name    string
		file    FileConfig
		profile string
		want    string
		wantErr error
	}{
		{name: "named profile", file: two, profile: "prod", want: "prod"},
		{name: "unknown profile", file: two, profile: "qa", wantErr: ErrClusterProfileNotFound},
		{name: "several profiles without name", file: two, wantErr: ErrAmbiguousProfile},
		{name: "single profile without name", file: FileConfig{Clusters: two.Clusters[:1]}, want: "dev"},
		{name: "empty file", file: FileConfig{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.file.Profile(tt.profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Profile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Profile() error = %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("Profile() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestNormalizeBrokers(t *testing.T) {
	got := NormalizeBrokers([]string{"h1:9092, h2:9092", " ", "h1:9092", "h3:9092"})
	want := []string{"h1:9092", "h2:9092", "h3:9092"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeBrokers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeBrokers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetAuthType(t *testing.T) {
	tests := []struct {
		name     string
		config   ClusterConfig
		expected string
	}{
		{name: "PLAINTEXT - no auth", config: ClusterConfig{}, expected: "PLAINTEXT"},
		{
			name:     "TLS only",
			config:   ClusterConfig{TLS: &TLSConfig{Enabled: true, CAFile: "ca.pem"}},
			expected: "TLS",
		},
		{
			name: "mTLS - with client certs",
			config: ClusterConfig{TLS: &TLSConfig{
				Enabled:  true,
				CertFile: "client.pem",
				KeyFile:  "client-key.pem",
			}},
			expected: "mTLS",
		},
		{
			name:     "SASL/PLAIN",
			config:   ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}},
			expected: "SASL/PLAIN",
		},
		{
			name: "SASL/PLAIN + TLS",
			config: ClusterConfig{
				TLS:  &TLSConfig{Enabled: true},
				SASL: &SASLConfig{Mechanism: "PLAIN"},
			},
			expected: "SASL/PLAIN + TLS",
		},
		{name: "AWS IAM", config: ClusterConfig{AWS: &AWSConfig{IAM: true}}, expected: "AWS IAM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.config.GetAuthType(); result != tt.expected {
				t.Errorf("GetAuthType() = %v, want %v", result, tt.expected)
			}
		})
	}
}

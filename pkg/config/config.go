package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for optional environment variables
const (
	DefaultRepoDir        = "/data/repo"
	DefaultExposedDomain  = "localhost"
	DefaultListenAddr     = "[::]:50051"
	DefaultPrivateKeyFile = "/data/ssh_host_key"
	DefaultGatewayAddr    = "[::]:2222"
)

// Manager holds the configuration for the manager process
type Manager struct {
	// RepoDir is the working tree the challenge repository is synced into
	RepoDir string

	// GitURL and GitBranch identify the challenge repository
	GitURL    string
	GitBranch string

	// ExposedDomain is the public wildcard domain instances are served under
	ExposedDomain string

	// ListenAddr is the gRPC listen address
	ListenAddr string

	// HMACSecret keys per-instance password derivation. When empty,
	// derivation falls back to flag material and a warning is logged.
	HMACSecret string

	// DisableDNSChecks drops DNS-name inspection from egress policies
	DisableDNSChecks bool
}

// Gateway holds the configuration for the SSH gateway process
type Gateway struct {
	// PrivateKeyFile is where the Ed25519 host key is persisted
	PrivateKeyFile string

	// ListenAddr is the SSH listen address
	ListenAddr string
}

// ManagerFromEnv builds the manager configuration from the process
// environment. GIT_URL and GIT_BRANCH are required.
func ManagerFromEnv() (*Manager, error) {
	gitURL := os.Getenv("GIT_URL")
	if gitURL == "" {
		return nil, fmt.Errorf("GIT_URL must be set")
	}
	gitBranch := os.Getenv("GIT_BRANCH")
	if gitBranch == "" {
		return nil, fmt.Errorf("GIT_BRANCH must be set")
	}

	return &Manager{
		RepoDir:          envOr("REPO_DIR", DefaultRepoDir),
		GitURL:           gitURL,
		GitBranch:        gitBranch,
		ExposedDomain:    envOr("EXPOSED_DOMAIN", DefaultExposedDomain),
		ListenAddr:       envOr("LISTEN_ADDR", DefaultListenAddr),
		HMACSecret:       os.Getenv("HMAC_SECRET_KEY"),
		DisableDNSChecks: envBool("INSECURE_FORCE_DISABLE_DNS_CHECKS"),
	}, nil
}

// GatewayFromEnv builds the SSH gateway configuration from the process
// environment.
func GatewayFromEnv() (*Gateway, error) {
	return &Gateway{
		PrivateKeyFile: envOr("PRIVATE_KEY_FILE", DefaultPrivateKeyFile),
		ListenAddr:     envOr("LISTEN_ADDR", DefaultGatewayAddr),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Any non-empty, non-parseable value counts as set
		return true
	}
	return b
}

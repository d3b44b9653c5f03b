package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the git directory
const FileName = "trail.yml"

// RepoConfig represents the repository configuration as stored on disk
type RepoConfig struct {
	BranchUpdateCommand *string `yaml:"branchUpdateCommand,omitempty"`
	ImpactWorkers       *int    `yaml:"impactWorkers,omitempty"`
	CommandTimeout      *string `yaml:"commandTimeout,omitempty"`
	LogFile             *string `yaml:"logFile,omitempty"`
}

// Settings are the effective values after defaults and environment overrides
type Settings struct {
	// BranchUpdateCommand is the exec command used to move branches; empty means `git branch -f`
	BranchUpdateCommand string
	// ImpactWorkers is the pool size for impact queries; zero means one per CPU
	ImpactWorkers  int
	CommandTimeout time.Duration
	LogFile        string
}

// Path returns the config file location for a git directory
func Path(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(gitDir string) (*RepoConfig, error) {
	data, err := os.ReadFile(Path(gitDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Config doesn't exist - return default
			return &RepoConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(gitDir string, config *RepoConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(Path(gitDir), data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load returns the effective settings for a repository.
// Environment variables override the file.
func Load(gitDir string) (*Settings, error) {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return nil, err
	}

	settings := &Settings{}
	if config.BranchUpdateCommand != nil {
		settings.BranchUpdateCommand = *config.BranchUpdateCommand
	}
	if config.ImpactWorkers != nil {
		settings.ImpactWorkers = *config.ImpactWorkers
	}
	if config.CommandTimeout != nil && *config.CommandTimeout != "" {
		timeout, err := time.ParseDuration(*config.CommandTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid commandTimeout %q: %w", *config.CommandTimeout, err)
		}
		settings.CommandTimeout = timeout
	}
	if config.LogFile != nil {
		settings.LogFile = *config.LogFile
	}

	if err := applyEnv(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func applyEnv(settings *Settings) error {
	if cmd := os.Getenv("TRAIL_BRANCH_UPDATE_COMMAND"); cmd != "" {
		settings.BranchUpdateCommand = cmd
	}
	if workersStr := os.Getenv("TRAIL_IMPACT_WORKERS"); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil || workers < 0 {
			return fmt.Errorf("invalid TRAIL_IMPACT_WORKERS %q", workersStr)
		}
		settings.ImpactWorkers = workers
	}
	if timeoutStr := os.Getenv("TRAIL_COMMAND_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("invalid TRAIL_COMMAND_TIMEOUT %q: %w", timeoutStr, err)
		}
		settings.CommandTimeout = timeout
	}
	if logFile := os.Getenv("TRAIL_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}
	return nil
}

// Set updates a single key in the repository configuration
func Set(gitDir, key, value string) error {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return err
	}

	switch key {
	case "branchUpdateCommand":
		config.BranchUpdateCommand = &value
	case "impactWorkers":
		workers, err := strconv.Atoi(value)
		if err != nil || workers < 0 {
			return fmt.Errorf("impactWorkers must be a non-negative integer, got %q", value)
		}
		config.ImpactWorkers = &workers
	case "commandTimeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("commandTimeout must be a duration such as 30s: %w", err)
		}
		config.CommandTimeout = &value
	case "logFile":
		config.LogFile = &value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return SaveRepoConfig(gitDir, config)
}

// Get returns the stored value of a key, or "" when it is unset
func Get(gitDir, key string) (string, error) {
	config, err := GetRepoConfig(gitDir)
	if err != nil {
		return "", err
	}

	switch key {
	case "branchUpdateCommand":
		return deref(config.BranchUpdateCommand), nil
	case "impactWorkers":
		if config.ImpactWorkers == nil {
			return "", nil
		}
		return strconv.Itoa(*config.ImpactWorkers), nil
	case "commandTimeout":
		return deref(config.CommandTimeout), nil
	case "logFile":
		return deref(config.LogFile), nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Keys lists the settable configuration keys
func Keys() []string {
	return []string{"branchUpdateCommand", "commandTimeout", "impactWorkers", "logFile"}
}

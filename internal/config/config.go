package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
)

// DefaultFileName is the config file looked for in the working directory
const DefaultFileName = ".tasklist.toml"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Tasks      []Task     `toml:"tasks"`
	UISettings UISettings `toml:"ui"`
}

// Task is the on-disk form of a task
type Task struct {
	Title string `toml:"title"`
	Done  bool   `toml:"done"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDone       bool `toml:"show_done"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Service handles configuration management
type Service interface {
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus eventbus.EventBus
}

// NewService creates a new config service
func NewService() Service {
	return &service{}
}

// NewServiceWithBus creates a config service that announces loads and saves
// on the event bus
func NewServiceWithBus(bus eventbus.EventBus) Service {
	return &service{bus: bus}
}

// Default returns the configuration used when no file exists yet
func Default() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			ShowDone:       true,
			AutosaveOnExit: true,
		},
	}
}

// LoadFromPath loads the configuration from the given file. A missing file
// is not an error; the default configuration is returned instead.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		s.notifyLoaded(path, cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	s.notifyLoaded(path, &cfg)
	return &cfg, nil
}

// SaveToPath writes the configuration to the given file
func (s *service) SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(domain.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (s *service) notifyLoaded(path string, cfg *Config) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(domain.ConfigLoadedEvent{
		Path:  path,
		Tasks: TasksFromConfig(cfg),
	})
}

// TasksFromConfig converts the on-disk task entries to domain tasks
func TasksFromConfig(cfg *Config) []domain.Task {
	tasks := make([]domain.Task, len(cfg.Tasks))
	for i, t := range cfg.Tasks {
		tasks[i] = domain.Task{Title: t.Title, Done: t.Done}
	}
	return tasks
}

// TasksToConfig replaces cfg's task entries with the given domain tasks
func TasksToConfig(cfg *Config, tasks []domain.Task) {
	entries := make([]Task, len(tasks))
	for i, t := range tasks {
		entries[i] = Task{Title: t.Title, Done: t.Done}
	}
	cfg.Tasks = entries
}

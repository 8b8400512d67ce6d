package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"selectlist/internal/config"
	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "file", "", "Path to the task list file")
	flag.StringVar(&configPath, "f", "", "Path to the task list file (shorthand)")
	flag.Parse()

	if configPath == "" && flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}
	if configPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(cwd, config.DefaultFileName)
	}
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("tasklist.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewServiceWithBus(bus)
	cfg, err := configSvc.LoadFromPath(absPath)
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", absPath, err)
		os.Exit(1)
	}
	log.Printf("Loaded %d tasks from %s", len(cfg.Tasks), absPath)

	// Persist every change to the list as it happens
	bus.Subscribe(domain.EventTasksChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.TasksChangedEvent); ok {
			saveTasks(bus, configSvc, cfg, absPath, event.Tasks)
		}
	})
	bus.Subscribe(domain.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ConfigSavedEvent); ok {
			log.Printf("Saved %s", event.Path)
		}
	})
	bus.Subscribe(domain.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(domain.EventFocusChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.FocusChangedEvent); ok {
			log.Printf("Focus moved from %d to %d", event.OldIndex, event.NewIndex)
		}
	})

	// Create the UI model and run it
	model := ui.NewModel(bus, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)
	quitOnInterrupt(ctx, p.Quit)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Stop the dispatcher before the final save: the save-on-change
	// subscriber mutates cfg on the dispatcher goroutine, and a queued
	// event must not race the write below.
	bus.Close()

	// Final save so edits in flight are not lost
	if cfg.UISettings.AutosaveOnExit {
		saveTasks(bus, configSvc, cfg, absPath, model.Tasks())
	}
}

// quitOnInterrupt requests a clean program quit once ctx is cancelled, so a
// signal takes the same exit path as pressing q.
func quitOnInterrupt(ctx context.Context, quit func()) {
	go func() {
		<-ctx.Done()
		quit()
	}()
}

// saveTasks persists the given snapshot, reporting failures on the bus
func saveTasks(bus eventbus.EventBus, svc config.Service, cfg *config.Config, path string, tasks []domain.Task) {
	config.TasksToConfig(cfg, tasks)
	if err := svc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save tasks: %v", err)
		bus.Publish(domain.ErrorEvent{Message: "failed to save tasks", Err: err})
	}
}

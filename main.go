package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"storyseek/internal/app"
	"storyseek/internal/eventbus"
	"storyseek/internal/ui"
)

// statusEvents are the domain events the status bar reacts to
var statusEvents = []eventbus.EventType{
	eventbus.EventFetchSucceeded,
	eventbus.EventFetchFailed,
	eventbus.EventStoryRemoved,
	eventbus.EventError,
}

func main() {
	opts, err := app.ParseFlags(flag.CommandLine, os.Args[1:], true)
	if err != nil {
		os.Exit(2)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Buffer status events from the start so nothing published during setup is lost.
	// The bus is never blocked by a slow UI.
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range statusEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
	}

	// Load configuration, writing defaults on first run
	cfg, configSvc := app.LoadConfig(opts, bus, true)

	// Set up logging
	closeLog := app.SetupLogging(cfg.LogFile)
	defer closeLog()
	log.Printf("Using config %s, endpoint %s", configSvc.Path(), cfg.Endpoint)

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

	core := app.New(cfg, opts, bus, app.NewClient(cfg))

	uiModel := ui.NewModel(ctx, cfg, ui.Services{
		Bus:     bus,
		Terms:   core.Terms,
		Query:   core.Query,
		Stories: core.Stories,
		Fetcher: core.Fetcher,
	})

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Start forwarding events to UI in background until shutdown
	go forwardEvents(ctx, eventChan, p.Send)

	if os.Getenv("STORYSEEK_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	_, err = p.Run()
	interrupted := ctx.Err() != nil
	cancel()
	if err != nil && !interrupted {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// forwardEvents hands bus events to the UI until ctx is done
func forwardEvents(ctx context.Context, events <-chan eventbus.DomainEvent, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			send(ui.EventMsg{Event: event})
		}
	}
}

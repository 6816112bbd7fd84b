package app

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"storyseek/internal/config"
	"storyseek/internal/eventbus"
	"storyseek/internal/fetch"
	"storyseek/internal/hn"
	"storyseek/internal/query"
	"storyseek/internal/stories"
	"storyseek/internal/termstore"
)

// Options are the command line settings shared by the binaries
type Options struct {
	ConfigPath string
	Term       string
	TermSet    bool // -term was given, even if empty
	Endpoint   string
	NoPersist  bool
}

// ParseFlags registers the shared flags on fs and parses args. withPersist controls
// whether -no-persist is offered.
func ParseFlags(fs *flag.FlagSet, args []string, withPersist bool) (Options, error) {
	var opts Options
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to a config file (.toml, .yaml or .yml)")
	fs.StringVar(&opts.Term, "term", "", "Search term to start with, replacing the saved one")
	fs.StringVar(&opts.Endpoint, "endpoint", "", "Search endpoint prefix the term is appended to")
	if withPersist {
		fs.BoolVar(&opts.NoPersist, "no-persist", false, "Keep the search term in memory only")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "term" {
			opts.TermSet = true
		}
	})
	return opts, nil
}

// LoadConfig loads the configuration named by opts, falling back to defaults on any
// error. With create set, a missing config file is written out with the defaults.
func LoadConfig(opts Options, bus eventbus.EventBus, create bool) (*config.Config, config.ConfigService) {
	var svc config.ConfigService
	if opts.ConfigPath != "" {
		svc = config.NewConfigServiceForPath(opts.ConfigPath, bus)
	} else {
		svc = config.NewConfigServiceWithBus(bus)
	}

	_, statErr := os.Stat(svc.Path())
	missing := os.IsNotExist(statErr)

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		if bus != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "could not load config, using defaults", Err: err})
		}
		// Use default config
		cfg = config.DefaultConfig()
	} else if missing && create {
		if err := svc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		} else {
			log.Printf("Config saved to %s", svc.Path())
		}
	}

	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	return cfg, svc
}

// SetupLogging sends the standard logger to path. When the file cannot be opened
// logging is discarded, since the terminal belongs to the UI.
func SetupLogging(path string) func() {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			log.SetOutput(logFile)
			return func() { _ = logFile.Close() }
		}
	}
	log.SetOutput(io.Discard)
	return func() {}
}

// App holds the wired core components
type App struct {
	Terms   *termstore.Store
	Query   *query.Builder
	Stories *stories.Store
	Fetcher *fetch.Orchestrator
}

// New wires the term store, query builder, stories store and orchestrator. The committed
// query starts from the persisted term, or from -term when given.
func New(cfg *config.Config, opts Options, bus eventbus.EventBus, client hn.Client) *App {
	var kv termstore.KV
	if opts.NoPersist {
		kv = termstore.NewMemoryKV()
	} else {
		kv = termstore.NewFileKV(cfg.StateFile)
	}

	terms := termstore.NewWithBus(kv, termstore.DefaultKey, cfg.DefaultTerm, bus)
	if opts.TermSet {
		terms.SetValue(opts.Term)
	}

	store := stories.NewStore(bus)
	return &App{
		Terms:   terms,
		Query:   query.NewBuilderWithBus(cfg.Endpoint, terms.Value(), bus),
		Stories: store,
		Fetcher: fetch.NewOrchestrator(client, store, bus),
	}
}

// NewClient creates the HTTP search client honouring the configured timeout
func NewClient(cfg *config.Config) *hn.HTTPClient {
	return hn.NewHTTPClient(time.Duration(cfg.RequestTimeout))
}

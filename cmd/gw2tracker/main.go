package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/gw2tracker/pkg/catalog"
	"github.com/umputun/gw2tracker/pkg/config"
	"github.com/umputun/gw2tracker/pkg/domain"
	"github.com/umputun/gw2tracker/pkg/gw2api"
	"github.com/umputun/gw2tracker/pkg/itemdb"
	"github.com/umputun/gw2tracker/pkg/repository"
	"github.com/umputun/gw2tracker/pkg/scheduler"
	"github.com/umputun/gw2tracker/pkg/tracker"
	"github.com/umputun/gw2tracker/pkg/userdata"
	"github.com/umputun/gw2tracker/pkg/viewmodel"
	"github.com/umputun/gw2tracker/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults are used if not set"`
	Data    string `short:"d" long:"data" env:"DATA_DIR" description:"data directory, overrides storage.data_dir"`
	Locale  string `long:"locale" env:"LOCALE" description:"item database locale, overrides tracker.locale"`
	Listen  string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides server.listen"`
	Rebuild bool   `long:"rebuild" description:"rebuild item database for the locale and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting gw2tracker version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// app holds everything wired together by setup
type app struct {
	repos     *repository.Repositories
	events    *tracker.EventsController
	dungeons  *tracker.DungeonsController
	itemsVM   *viewmodel.ItemsViewModel
	eventsVM  *viewmodel.EventsViewModel
	dungeonVM *viewmodel.DungeonsViewModel
	settingVM *viewmodel.SettingsViewModel
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	if opts.Rebuild {
		return rebuild(ctx, a.itemsVM, cfg.Locale(), os.Stdout)
	}

	sched := scheduler.NewScheduler(scheduler.Params{
		Resetters: []scheduler.Resetter{a.events, a.dungeons},
		Warmups:   a.events,
		Interval:  cfg.Tracker.ResetCheckInterval,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:   cfg,
		Events:   a.eventsVM,
		Dungeons: a.dungeonVM,
		Items:    a.itemsVM,
		Settings: a.settingVM,
		Version:  revision,
		Debug:    opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	a.itemsVM.CancelCommand()
	a.itemsVM.Wait()
	return nil
}

// loadConfig reads config file if set, applies defaults and command line overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Data != "" {
		cfg.Storage.DataDir = opts.Data
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Locale != "" {
		locale, err := domain.ParseLocale(opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("locale option: %w", err)
		}
		cfg.Tracker.Locale = string(locale)
	}
	return cfg, nil
}

// setup makes stores, controllers and view-models
func setup(ctx context.Context, cfg *config.Config) (*app, error) {
	cat, err := loadCatalog(cfg.Tracker.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("[INFO] catalog: %d events, %d dungeons", len(cat.Events()), len(cat.Dungeons()))

	if err := os.MkdirAll(cfg.Storage.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to make data dir: %w", err)
	}
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	eventsUD, err := userdata.LoadEventsUserData(userdata.NewFileStore(cfg.UserDataPath("events")))
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	dungeonsUD, err := userdata.LoadDungeonsUserData(userdata.NewFileStore(cfg.UserDataPath("dungeons")))
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}

	itemStore := itemdb.NewFileStore(cfg.ItemsDir())
	itemsDB := itemdb.NewDatabase(itemStore)
	switch {
	case !itemsDB.HasData(cfg.Locale()):
		log.Printf("[INFO] no item database for %s yet, run with --rebuild or POST /api/v1/items/rebuild", cfg.Locale())
	default:
		if err := itemsDB.Load(cfg.Locale()); err != nil {
			log.Printf("[WARN] item database for %s is not loaded: %v", cfg.Locale(), err)
		}
	}
	builder := itemdb.NewBuilder(itemdb.BuilderParams{
		Client: gw2api.New(gw2api.Params{
			Endpoint:  cfg.API.Endpoint,
			Timeout:   cfg.API.Timeout,
			UserAgent: cfg.API.UserAgent,
		}),
		Store:    itemStore,
		Database: itemsDB,
		PageSize: cfg.API.PageSize,
		Workers:  cfg.API.Workers,
	})

	events := tracker.NewEventsController(cat.Events(), eventsUD)
	dungeons := tracker.NewDungeonsController(cat.Dungeons(), dungeonsUD, repos.Run)

	return &app{
		repos:     repos,
		events:    events,
		dungeons:  dungeons,
		itemsVM:   viewmodel.NewItemsViewModel(builder, itemsDB, repos.Setting),
		eventsVM:  viewmodel.NewEventsViewModel(events),
		dungeonVM: viewmodel.NewDungeonsViewModel(dungeons),
		settingVM: viewmodel.NewSettingsViewModel(eventsUD, dungeonsUD),
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// rebuild runs item database rebuild in foreground and prints progress to out
func rebuild(ctx context.Context, vm *viewmodel.ItemsViewModel, locale domain.Locale, out io.Writer) error {
	var mu sync.Mutex
	lastPercent := -1
	vm.Subscribe(func(property string) {
		if property != viewmodel.PropProgress {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		p := vm.Progress()
		if p.TotalPages == 0 || p.Percent() == lastPercent {
			return
		}
		lastPercent = p.Percent()
		_, _ = fmt.Fprintf(out, "\rrebuilding %s item database: %3d%% (%d/%d pages)",
			locale, p.Percent(), p.CompletedPages, p.TotalPages)
	})

	st := time.Now()
	if err := vm.RebuildCommand(ctx, locale); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("rebuild canceled: %w", err)
		}
		return fmt.Errorf("failed to start rebuild: %w", err)
	}
	p := vm.Wait()
	_, _ = fmt.Fprintln(out)
	if p.LastError != "" {
		return fmt.Errorf("rebuild failed: %s", p.LastError)
	}
	_, _ = fmt.Fprintf(out, "%s item database rebuilt: %d items in %v\n", locale, p.Items, time.Since(st).Round(time.Millisecond))
	return nil
}

// SetupLog configures lgr and the std logger
func SetupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

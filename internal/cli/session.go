package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/panels/internal/config"
	"github.com/rileyhilliard/panels/internal/dashboard"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/logger"
	"github.com/rileyhilliard/panels/internal/monitor"
	"github.com/rileyhilliard/panels/internal/ui"
	"github.com/rileyhilliard/panels/internal/world"
	"golang.org/x/term"
)

// session is a loaded config and world with the dashboard built over it.
type session struct {
	cfg        *config.Config
	configPath string
	worldPath  string
	world      *world.World
	scheduler  *host.ManualScheduler
	dash       *dashboard.Dashboard
}

// loadConfig finds, loads and validates the config, and applies its color mode.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}

	if noColor {
		ui.DisableColors()
	} else {
		ui.ApplyColorMode(cfg.Output.Color, term.IsTerminal(int(os.Stdout.Fd())))
	}
	return cfg, path, nil
}

// commandLogger returns the logger handed to the dashboard. Info and debug
// output is only shown with --verbose.
func commandLogger() logger.Logger {
	l := logger.NewEnvLogger("[dashboard]")
	if verbose {
		return l
	}
	return logger.Quiet(l)
}

// worldPathFor picks the --world override or the configured world.
func worldPathFor(cfg *config.Config, override string) string {
	if override != "" {
		return config.ExpandTilde(override)
	}
	return cfg.World
}

// dashboardOptions builds dashboard options for a world.
func dashboardOptions(cfg *config.Config, w *world.World, sched *host.ManualScheduler) dashboard.Options {
	return dashboard.Options{
		Inventory: w,
		Scheduler: sched,
		Glyphs:    cfg.Glyphs.Glyphs(),
		Prefixes:  cfg.Prefixes,
		Logger:    commandLogger(),
	}
}

// openSession loads everything render and watch need.
func openSession(flags WorldFlags) (*session, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}

	worldPath := worldPathFor(cfg, flags.World)
	w, err := world.Load(worldPath)
	if err != nil {
		return nil, err
	}

	sched := &host.ManualScheduler{}
	dash, err := dashboard.New(w.Entities(), dashboardOptions(cfg, w, sched))
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:        cfg,
		configPath: path,
		worldPath:  worldPath,
		world:      w,
		scheduler:  sched,
		dash:       dash,
	}, nil
}

// screens lists every surface the dashboard writes to, in provider order.
func (s *session) screens() []monitor.Screen {
	var out []monitor.Screen
	for _, p := range s.dash.Providers() {
		e := s.world.Entity(p.Name())
		if e == nil {
			continue
		}
		for i, surface := range e.Screens() {
			out = append(out, monitor.Screen{
				Title:  fmt.Sprintf("%s #%d", p.Name(), i),
				Source: surface,
			})
		}
	}
	return out
}

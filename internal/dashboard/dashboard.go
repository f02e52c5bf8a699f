// Package dashboard builds panels from entity configuration text and drives
// their refresh.
//
// New scans the entities once: every entity whose configuration text starts
// with a recognized prefix becomes a Provider, and its directives are routed
// to the targeted surface and column as they are parsed. Any fatal parse
// error aborts construction entirely. Tick then refreshes every provider.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panels/internal/command"
	"github.com/rileyhilliard/panels/internal/errors"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/logger"
	"github.com/rileyhilliard/panels/internal/panel"
	"github.com/rileyhilliard/panels/internal/textfmt"
	"github.com/rileyhilliard/panels/internal/util"
)

// DefaultPrefixes mark configuration text meant for this renderer.
var DefaultPrefixes = []string{"display", "config", "panel"}

// Options carries the collaborators and settings used during construction.
type Options struct {
	Inventory host.InventorySource
	Scheduler host.Scheduler
	Glyphs    textfmt.Glyphs
	Prefixes  []string
	Logger    logger.Logger
}

// Dashboard is the fixed set of providers discovered at startup.
type Dashboard struct {
	providers []*panel.Provider
	skipped   []string
	log       logger.Logger
}

// Eligible reports whether entity's configuration text starts with one of prefixes.
func Eligible(entity host.SurfaceEntity, prefixes []string) bool {
	data := entity.CustomData()
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(data, p) {
			return true
		}
	}
	return false
}

// New builds a dashboard from every eligible entity. Once every entity has
// parsed, the scheduler (if any) is set to the last rate a config directive
// requested, or coarse. A failed New leaves the scheduler untouched.
func New(entities []host.SurfaceEntity, opts Options) (*Dashboard, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Prefixes == nil {
		opts.Prefixes = DefaultPrefixes
	}
	if opts.Glyphs == (textfmt.Glyphs{}) {
		opts.Glyphs = textfmt.DefaultGlyphs()
	}

	d := &Dashboard{log: opts.Logger}
	b := builder{
		factory: command.NewFactory(opts.Glyphs, opts.Inventory),
		log:     opts.Logger,
	}
	rate := host.RateCoarse
	if opts.Scheduler != nil {
		b.rate = &rate
	}

	for _, entity := range entities {
		if !Eligible(entity, opts.Prefixes) {
			continue
		}
		if entity.SurfaceCount() == 0 {
			opts.Logger.Warn("skipping %q: it has no text surfaces", entity.Name())
			d.skipped = append(d.skipped, entity.Name())
			continue
		}

		p := panel.NewProvider(entity, opts.Glyphs.Separator)
		if err := b.build(p, entity.CustomData()); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Can't parse the panel configuration of '%s'", entity.Name()),
				"Write each line as: directive -key value[,value...] with every key at most once.")
		}

		d.providers = append(d.providers, p)
		opts.Logger.Info("%s: %s", p.Name(), util.Count(p.SurfaceCount(), "surface", "surfaces"))
	}

	if opts.Scheduler != nil {
		opts.Scheduler.SetRate(rate)
	}
	return d, nil
}

// Providers returns the providers in discovery order.
func (d *Dashboard) Providers() []*panel.Provider {
	return append([]*panel.Provider(nil), d.providers...)
}

// Len returns the number of providers.
func (d *Dashboard) Len() int {
	return len(d.providers)
}

// Skipped returns the names of eligible entities that had no surfaces.
func (d *Dashboard) Skipped() []string {
	return append([]string(nil), d.skipped...)
}

// Tick refreshes every provider once, in discovery order.
func (d *Dashboard) Tick() {
	for _, p := range d.providers {
		p.Update()
	}
}

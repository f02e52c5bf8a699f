package dashboard

import (
	"github.com/rileyhilliard/panels/internal/command"
	"github.com/rileyhilliard/panels/internal/directive"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/logger"
	"github.com/rileyhilliard/panels/internal/panel"
)

// cursor is the parse position within one provider: the targeted surface
// and, per surface, the targeted column. Steps return a new cursor.
type cursor struct {
	surface int
	columns []int
}

func newCursor(surfaces int) cursor {
	return cursor{columns: make([]int, surfaces)}
}

func (c cursor) column() int {
	return c.columns[c.surface]
}

func (c cursor) withSurface(surface int) cursor {
	return cursor{surface: surface, columns: c.columns}
}

func (c cursor) withColumn(column int) cursor {
	cols := append([]int(nil), c.columns...)
	cols[c.surface] = column
	return cursor{surface: c.surface, columns: cols}
}

// builder routes parsed directives into a provider.
type builder struct {
	factory command.Factory
	rate    *host.Rate // requested refresh rate; nil without a scheduler
	log     logger.Logger
}

// build parses text and applies every directive to p in order.
func (b builder) build(p *panel.Provider, text string) error {
	directives, err := directive.Parse(text)
	if err != nil {
		return err
	}

	cur := newCursor(p.SurfaceCount())
	for _, d := range directives {
		if cur, err = b.apply(p, cur, d); err != nil {
			return &directive.LineError{Line: d.Line, Text: d.Name, Err: err}
		}
	}
	return nil
}

// apply performs one directive and returns the cursor for the next one.
func (b builder) apply(p *panel.Provider, cur cursor, d directive.Directive) (cursor, error) {
	switch d.Tag {
	case directive.TagConfig:
		b.configure(d)
		return cur, nil

	case directive.TagDisplay:
		id, err := d.Args.Int("id", 0)
		if err != nil {
			return cur, err
		}
		return cur.withSurface(p.SelectSurface(id)), nil

	case directive.TagColumn:
		id, err := d.Args.Int("id", 0)
		if err != nil {
			return cur, err
		}
		return cur.withColumn(p.SelectColumn(cur.surface, id)), nil

	case directive.TagLabel, directive.TagLine, directive.TagInventory:
		cmd, err := b.factory.New(d)
		if err != nil {
			return cur, err
		}
		p.AddCommand(cur.surface, cur.column(), cmd)
		return cur, nil

	default:
		b.log.Debug("%s: ignoring unknown directive %q on line %d", p.Name(), d.Name, d.Line)
		return cur, nil
	}
}

// configure records a config directive's refresh rate. New applies it once
// every entity has parsed.
func (b builder) configure(d directive.Directive) {
	if b.rate == nil || !d.Args.Has("update") {
		return
	}
	raw := d.Args.Get("update", "")
	rate, ok := host.ParseRate(raw)
	if !ok {
		b.log.Warn("unknown update rate %q on line %d, using %s", raw, d.Line, rate)
	}
	*b.rate = rate
}

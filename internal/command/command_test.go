package command

import (
	"math"
	"strings"
	"testing"

	"github.com/rileyhilliard/panels/internal/directive"
	hosttest "github.com/rileyhilliard/panels/internal/host/testing"
	"github.com/rileyhilliard/panels/internal/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, line string) directive.Directive {
	t.Helper()
	d, ok, err := directive.ParseLine(line)
	require.NoError(t, err)
	require.True(t, ok)
	return d
}

func runOnce(c Command) []string {
	var buf Buffer
	c.Run(&buf)
	return buf.Lines()
}

func TestBuffer(t *testing.T) {
	var b Buffer
	assert.Equal(t, 0, b.LineCount())

	b.AppendLine("one")
	b.AppendLine("two")
	assert.Equal(t, 2, b.LineCount())
	assert.Equal(t, "one\ntwo\n", b.String())

	line, ok := b.Line(1)
	assert.True(t, ok)
	assert.Equal(t, "two", line)
	_, ok = b.Line(2)
	assert.False(t, ok)
	_, ok = b.Line(-1)
	assert.False(t, ok)

	b.Reset()
	assert.Equal(t, 0, b.LineCount())
	assert.Empty(t, b.Lines())
}

func TestFactory_New(t *testing.T) {
	f := NewFactory(textfmt.DefaultGlyphs(), hosttest.Inventories{})

	tests := []struct {
		line string
		want interface{}
	}{
		{"label -name Hi", &Label{}},
		{"line -width 0.3", &Rule{}},
		{"rule", &Rule{}},
		{"inventory -name Ore -blocks Cargo", &Capacity{}},
		{"capacity -name Ore", &Capacity{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := f.New(mustParse(t, tt.line))
			require.NoError(t, err)
			assert.IsType(t, tt.want, cmd)
		})
	}
}

func TestFactory_NewRejectsNonCommands(t *testing.T) {
	f := NewFactory(textfmt.DefaultGlyphs(), nil)

	for _, line := range []string{"display -id 0", "column -id 1", "config -update 10", "sparkle"} {
		_, err := f.New(mustParse(t, line))
		assert.Error(t, err, line)
	}
}

func TestLabel_Configure(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"center", "label -name Hi -align center", 10, "   Hi     "},
		{"default is left justified", "label -name Hi", 6, "Hi    "},
		{"explicit left", "label -name Hi -align left", 6, "Hi    "},
		{"right", "label -name Hi -align right", 6, "    Hi"},
		{"truncated", "label -name HelloWorld", 5, "Hello"},
		{"centered then truncated", "label -name HelloWorld -align center", 5, "Hello"},
		{"right then truncated", "label -name HelloWorld -align right", 5, "Hello"},
		{"no name", "label", 4, "    "},
		{"unknown alignment falls back to left", "label -name Hi -align middle", 4, "Hi  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel(mustParse(t, tt.line).Args)
			l.Configure(tt.width)

			assert.Equal(t, []string{tt.want}, runOnce(l))
		})
	}
}

func TestLabel_ReconfigureShrinks(t *testing.T) {
	l := NewLabel(mustParse(t, "label -name Hi -align center").Args)

	l.Configure(10)
	assert.Equal(t, []string{"   Hi     "}, runOnce(l))

	l.Configure(4)
	assert.Equal(t, []string{"Hi  "}, runOnce(l))

	assert.NotPanics(t, func() { l.Configure(1) })
	assert.Equal(t, []string{"H"}, runOnce(l))

	assert.NotPanics(t, func() { l.Configure(0) })
	assert.Equal(t, []string{""}, runOnce(l))
}

func TestRule_Configure(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"default half", "line", 10, "  ─────   "},
		{"quarter rounds half up", "line -width 0.25", 10, "   ───    "},
		{"full width", "line -width 1", 4, "────"},
		{"over full is truncated", "line -width 2", 4, "────"},
		{"zero", "line -width 0", 4, "    "},
		{"huge ratio clamps to width", "line -width 1e17", 6, "──────"},
		{"billion ratio clamps to width", "line -width 1e9", 3, "───"},
		{"infinite ratio clamps to width", "line -width Inf", 4, "────"},
		{"nan draws nothing", "line -width NaN", 4, "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRule(mustParse(t, tt.line).Args, '─')
			require.NoError(t, err)
			r.Configure(tt.width)

			got := runOnce(r)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
			assert.LessOrEqual(t, textfmt.Len(got[0]), tt.width)
		})
	}
}

func TestRuleLength(t *testing.T) {
	tests := []struct {
		name  string
		width int
		ratio float64
		want  int
	}{
		{"half", 10, 0.5, 5},
		{"rounds half up", 10, 0.25, 3},
		{"negative ratio", 10, -0.5, 0},
		{"negative infinity", 10, math.Inf(-1), 0},
		{"positive infinity", 10, math.Inf(1), 10},
		{"nan", 10, math.NaN(), 0},
		{"huge", 40, 1e17, 40},
		{"zero width", 0, 1e17, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ruleLength(tt.width, tt.ratio))
		})
	}
}

func TestNewRule_RejectsNonNumericWidth(t *testing.T) {
	_, err := NewRule(mustParse(t, "line -width wide").Args, '─')

	require.Error(t, err)
	assert.ErrorIs(t, err, directive.ErrUnparsableNumber)
}

func TestConfigure_Idempotent(t *testing.T) {
	src := hosttest.Inventories{{Label: "Cargo 1", Max: 10e6, Current: 4e6}}
	f := NewFactory(textfmt.DefaultGlyphs(), src)

	for _, line := range []string{
		"label -name Status -align center",
		"line -width 0.6",
		"inventory -name Ore -blocks Cargo",
	} {
		t.Run(line, func(t *testing.T) {
			cmd, err := f.New(mustParse(t, line))
			require.NoError(t, err)

			cmd.Configure(13)
			first := runOnce(cmd)
			cmd.Configure(13)
			assert.Equal(t, first, runOnce(cmd))
		})
	}
}

func TestCapacity_Run(t *testing.T) {
	src := hosttest.Inventories{
		{Label: "Large Cargo A", Max: 60e6, Current: 20e6},
		{Label: "Large Cargo B", Max: 40e6, Current: 17450000},
		{Label: "Refinery", Max: 500e6, Current: 500e6},
	}

	c, err := NewCapacity(mustParse(t, "inventory -name Ore -blocks Cargo").Args, src, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(20)

	lines := runOnce(c)

	require.Len(t, lines, 2)
	assert.Equal(t, "Ore          62.5 kL", lines[0])
	assert.Equal(t, "[■■■■■········]  37%", lines[1])
	assert.Equal(t, 2, c.Sources())
	assert.InDelta(t, 100.0, c.MaxVolume(), 1e-9)
	assert.InDelta(t, 37.45, c.CurrentVolume(), 1e-9)
}

func TestCapacity_MultipleFilters(t *testing.T) {
	src := hosttest.Inventories{
		{Label: "Cargo", Max: 1e6},
		{Label: "Hydrogen Tank", Max: 2e6},
		{Label: "Drill", Max: 4e6},
	}

	c, err := NewCapacity(mustParse(t, "inventory -blocks Cargo, Tank").Args, src, textfmt.DefaultGlyphs())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Sources())
	assert.InDelta(t, 3.0, c.MaxVolume(), 1e-9)
}

func TestCapacity_MaxFixedAtConstruction(t *testing.T) {
	inv := &hosttest.FakeInventory{Label: "Cargo", Max: 10e6, Current: 1e6}
	c, err := NewCapacity(mustParse(t, "inventory -name X -blocks Cargo").Args, hosttest.Inventories{inv}, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(20)

	inv.Max = 99e6
	inv.Current = 5e6
	runOnce(c)

	assert.InDelta(t, 10.0, c.MaxVolume(), 1e-9)
	assert.InDelta(t, 5.0, c.CurrentVolume(), 1e-9)
}

func TestCapacity_NoBlocksMatchesNothing(t *testing.T) {
	src := hosttest.Inventories{{Label: "Cargo", Max: 10e6, Current: 5e6}}

	c, err := NewCapacity(mustParse(t, "inventory -name Empty").Args, src, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(14)

	lines := runOnce(c)

	assert.Equal(t, 0, c.Sources())
	assert.Equal(t, "Empty   0.0 kL", lines[0])
	assert.Equal(t, "[·······]   0%", lines[1])
}

func TestCapacity_NilSource(t *testing.T) {
	c, err := NewCapacity(mustParse(t, "inventory -blocks Cargo").Args, nil, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(10)

	assert.NotPanics(t, func() { runOnce(c) })
}

func TestCapacity_RatioView(t *testing.T) {
	src := hosttest.Inventories{{Label: "Cargo", Max: 100e6, Current: 37450000}}

	c, err := NewCapacity(mustParse(t, "inventory -name Ore -blocks Cargo -show ratio").Args, src, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(24)

	lines := runOnce(c)
	assert.Equal(t, "Ore"+strings.Repeat(" ", 6)+"37.5 / 100.0 kL", lines[0])
}

func TestCapacity_InvalidView(t *testing.T) {
	_, err := NewCapacity(mustParse(t, "inventory -show pie").Args, nil, textfmt.DefaultGlyphs())

	require.Error(t, err)
	assert.ErrorIs(t, err, directive.ErrMalformedArgument)
}

func TestCapacity_TruncatesToWidth(t *testing.T) {
	src := hosttest.Inventories{{Label: "Cargo", Max: 10e6, Current: 5e6}}

	c, err := NewCapacity(mustParse(t, "inventory -name Very Long Gauge Name -blocks Cargo").Args, src, textfmt.DefaultGlyphs())
	require.NoError(t, err)
	c.Configure(6)

	lines := runOnce(c)
	require.Len(t, lines, 2)
	assert.Equal(t, "Very L", lines[0])
	assert.Equal(t, 6, textfmt.Len(lines[1]))
}

func TestCommands_String(t *testing.T) {
	assert.Equal(t, `label "Hi" (center)`, NewLabel(mustParse(t, "label -name Hi -align center").Args).String())

	r, err := NewRule(mustParse(t, "line -width 0.25").Args, '─')
	require.NoError(t, err)
	assert.Equal(t, "line 0.25", r.String())
}

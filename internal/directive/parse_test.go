package directive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantTag  Tag
		wantKeys []string
		wantArgs map[string][]string
	}{
		{
			name:     "bare directive",
			line:     "column",
			wantTag:  TagColumn,
			wantKeys: nil,
		},
		{
			name:     "label with alignment",
			line:     "label -name Hi -align center",
			wantTag:  TagLabel,
			wantKeys: []string{"name", "align"},
			wantArgs: map[string][]string{"name": {"Hi"}, "align": {"center"}},
		},
		{
			name:     "values keep inner spaces",
			line:     "label -name Ore Storage",
			wantTag:  TagLabel,
			wantKeys: []string{"name"},
			wantArgs: map[string][]string{"name": {"Ore Storage"}},
		},
		{
			name:     "comma separated values are trimmed",
			line:     "  inventory -name Ore -blocks Cargo ,  Refinery,,Drill  ",
			wantTag:  TagInventory,
			wantKeys: []string{"name", "blocks"},
			wantArgs: map[string][]string{"name": {"Ore"}, "blocks": {"Cargo", "Refinery", "Drill"}},
		},
		{
			name:     "rule alias",
			line:     "rule -width 0.75",
			wantTag:  TagLine,
			wantKeys: []string{"width"},
			wantArgs: map[string][]string{"width": {"0.75"}},
		},
		{
			name:     "capacity alias",
			line:     "capacity -blocks Tank",
			wantTag:  TagInventory,
			wantKeys: []string{"blocks"},
		},
		{
			name:     "unknown directive is returned, not rejected",
			line:     "sparkle -level 9000",
			wantTag:  TagUnknown,
			wantKeys: []string{"level"},
		},
		{
			name:     "repeated dashes collapse",
			line:     "display --id 1",
			wantTag:  TagDisplay,
			wantKeys: []string{"id"},
			wantArgs: map[string][]string{"id": {"1"}},
		},
		{
			name:     "carriage return is whitespace",
			line:     "display -id 2\r",
			wantTag:  TagDisplay,
			wantKeys: []string{"id"},
			wantArgs: map[string][]string{"id": {"2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok, err := ParseLine(tt.line)

			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantTag, d.Tag)
			assert.Equal(t, tt.wantKeys, d.Args.Keys())
			for key, want := range tt.wantArgs {
				assert.Equal(t, want, d.Args.Values(key), "values for %q", key)
			}
		})
	}
}

func TestParseLine_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "-", " - - "} {
		_, ok, err := ParseLine(line)
		require.NoError(t, err, "line %q", line)
		assert.False(t, ok, "line %q should be skipped", line)
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"key without value", "label -name", ErrMalformedArgument},
		{"key with trailing space only", "label -name   ", ErrMalformedArgument},
		{"whitespace-only argument", "label - -name Hi", ErrMalformedArgument},
		{"duplicate key", "label -name A -name B", ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ParseLine(tt.line)

			require.Error(t, err)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParse(t *testing.T) {
	text := "display -id 0\n\ncolumn -id 0\n   \nlabel -name Hi -align center\n"

	got, err := Parse(text)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, TagDisplay, got[0].Tag)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, TagColumn, got[1].Tag)
	assert.Equal(t, 3, got[1].Line)
	assert.Equal(t, TagLabel, got[2].Tag)
	assert.Equal(t, 5, got[2].Line)
	assert.Equal(t, "Hi", got[2].Args.Get("name", ""))
}

func TestParse_ErrorCarriesLine(t *testing.T) {
	_, err := Parse("display -id 0\nlabel -name A -name B\nlabel -name C")

	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.Equal(t, "label -name A -name B", lineErr.Text)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
	}{
		{"config", TagConfig},
		{"display", TagDisplay},
		{"column", TagColumn},
		{"label", TagLabel},
		{"line", TagLine},
		{"rule", TagLine},
		{"inventory", TagInventory},
		{"capacity", TagInventory},
		{"Label", TagUnknown},
		{"", TagUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTag(tt.input))
		})
	}
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "line", TagLine.String())
	assert.Equal(t, "inventory", TagInventory.String())
	assert.Equal(t, "unknown", TagUnknown.String())
}

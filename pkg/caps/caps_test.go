package caps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectColorDepth(t *testing.T) {
	tests := []struct {
		name     string
		terminal bool
		env      map[string]string
		expected ColorDepth
	}{
		{
			name:     "no color wins over everything",
			terminal: true,
			env: map[string]string{
				"NO_COLOR":  "",
				"COLORTERM": "truecolor",
				"TERM":      "xterm-kitty",
			},
			expected: DepthNone,
		},
		{
			name:     "force color zero",
			terminal: true,
			env:      map[string]string{"FORCE_COLOR": "0", "COLORTERM": "truecolor"},
			expected: DepthNone,
		},
		{
			name:     "force color false",
			terminal: true,
			env:      map[string]string{"FORCE_COLOR": "false"},
			expected: DepthNone,
		},
		{
			name:     "force color one",
			terminal: true,
			env:      map[string]string{"FORCE_COLOR": "1", "COLORTERM": "truecolor"},
			expected: DepthBasic,
		},
		{
			name:     "force color two",
			terminal: true,
			env:      map[string]string{"FORCE_COLOR": "2"},
			expected: Depth256,
		},
		{
			name:     "force color three",
			terminal: false,
			env:      map[string]string{"FORCE_COLOR": "3"},
			expected: DepthTrueColor,
		},
		{
			name:     "force color unrecognized truthy defaults to basic",
			terminal: true,
			env:      map[string]string{"FORCE_COLOR": "yes", "COLORTERM": "truecolor"},
			expected: DepthBasic,
		},
		{
			name:     "not a terminal",
			terminal: false,
			env:      map[string]string{"TERM": "xterm-256color"},
			expected: DepthNone,
		},
		{
			name:     "dumb terminal",
			terminal: true,
			env:      map[string]string{"TERM": "dumb"},
			expected: DepthNone,
		},
		{
			name:     "colorterm truecolor",
			terminal: true,
			env:      map[string]string{"COLORTERM": "truecolor", "TERM": "xterm-256color"},
			expected: DepthTrueColor,
		},
		{
			name:     "colorterm 24bit",
			terminal: true,
			env:      map[string]string{"COLORTERM": "24bit"},
			expected: DepthTrueColor,
		},
		{
			name:     "truecolor marker beats 256 substring",
			terminal: true,
			env:      map[string]string{"TERM": "xterm-kitty"},
			expected: DepthTrueColor,
		},
		{
			name:     "wezterm TERM",
			terminal: true,
			env:      map[string]string{"TERM": "wezterm"},
			expected: DepthTrueColor,
		},
		{
			name:     "xterm-256color on a tty",
			terminal: true,
			env:      map[string]string{"TERM": "xterm-256color"},
			expected: Depth256,
		},
		{
			name:     "iTerm program",
			terminal: true,
			env:      map[string]string{"TERM_PROGRAM": "iTerm.app"},
			expected: DepthTrueColor,
		},
		{
			name:     "apple terminal capped at 256",
			terminal: true,
			env:      map[string]string{"TERM_PROGRAM": "Apple_Terminal"},
			expected: Depth256,
		},
		{
			name:     "modern program list",
			terminal: true,
			env:      map[string]string{"TERM_PROGRAM": "Hyper"},
			expected: DepthTrueColor,
		},
		{
			name:     "kitty window id marker",
			terminal: true,
			env:      map[string]string{"KITTY_WINDOW_ID": "1"},
			expected: DepthTrueColor,
		},
		{
			name:     "generic xterm is basic",
			terminal: true,
			env:      map[string]string{"TERM": "xterm"},
			expected: DepthBasic,
		},
		{
			name:     "ci indicator",
			terminal: true,
			env:      map[string]string{"GITHUB_ACTIONS": "true"},
			expected: DepthBasic,
		},
		{
			name:     "windows terminal session",
			terminal: true,
			env:      map[string]string{"WT_SESSION": "abc"},
			expected: DepthTrueColor,
		},
		{
			name:     "bare terminal defaults to basic",
			terminal: true,
			env:      map[string]string{},
			expected: DepthBasic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColorDepth(tt.terminal, MapEnviron(tt.env))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectCursorControl(t *testing.T) {
	assert.False(t, DetectCursorControl(false, MapEnviron(map[string]string{"TERM": "xterm"})))
	assert.False(t, DetectCursorControl(true, MapEnviron(map[string]string{"TERM": "dumb"})))
	assert.True(t, DetectCursorControl(true, MapEnviron(map[string]string{"TERM": "xterm"})))
	assert.True(t, DetectCursorControl(true, MapEnviron(map[string]string{})))
}

func TestDetectRawInput(t *testing.T) {
	assert.True(t, DetectRawInput(true, true))
	assert.False(t, DetectRawInput(true, false))
	assert.False(t, DetectRawInput(false, true))
	assert.False(t, DetectRawInput(false, false))
}

func TestDetectUnicode(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{"utf8 in LANG", map[string]string{"LANG": "en_US.UTF-8"}, true},
		{"utf8 in LC_ALL", map[string]string{"LC_ALL": "C.utf8"}, true},
		{"utf8 in LC_CTYPE", map[string]string{"LC_CTYPE": "pt_BR.UTF-8"}, true},
		{"modern program", map[string]string{"TERM_PROGRAM": "WezTerm"}, true},
		{"kitty marker", map[string]string{"KITTY_WINDOW_ID": "3"}, true},
		{"windows terminal", map[string]string{"WT_SESSION": "s"}, true},
		{"tmux TERM", map[string]string{"TERM": "tmux-256color"}, true},
		{"posix locale no hints", map[string]string{"LANG": "C"}, false},
		{"empty environment", map[string]string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectUnicode(MapEnviron(tt.env)))
		})
	}
}

func TestDetectExtendedUnderline(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{"ghostty TERM", map[string]string{"TERM": "xterm-ghostty"}, true},
		{"kitty TERM", map[string]string{"TERM": "xterm-kitty"}, true},
		{"wezterm TERM", map[string]string{"TERM": "wezterm"}, true},
		{"iTerm program", map[string]string{"TERM": "xterm", "TERM_PROGRAM": "iTerm.app"}, true},
		{
			name: "apple terminal excluded despite ambiguous TERM",
			env:  map[string]string{"TERM": "xterm", "TERM_PROGRAM": "Apple_Terminal"},
		},
		{"kitty window marker", map[string]string{"KITTY_WINDOW_ID": "9"}, true},
		{"plain xterm", map[string]string{"TERM": "xterm"}, false},
		{"empty environment", map[string]string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectExtendedUnderline(MapEnviron(tt.env)))
		})
	}
}

func TestParseColorDepth(t *testing.T) {
	tests := []struct {
		input    string
		expected ColorDepth
		ok       bool
	}{
		{"none", DepthNone, true},
		{"basic", DepthBasic, true},
		{"16", DepthBasic, true},
		{"256", Depth256, true},
		{"truecolor", DepthTrueColor, true},
		{"24bit", DepthTrueColor, true},
		{"TRUECOLOR", DepthTrueColor, true},
		{"millions", DepthNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseColorDepth(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestColorDepthString(t *testing.T) {
	assert.Equal(t, "none", DepthNone.String())
	assert.Equal(t, "basic", DepthBasic.String())
	assert.Equal(t, "256", Depth256.String())
	assert.Equal(t, "truecolor", DepthTrueColor.String())
}

func TestMapEnvironPresence(t *testing.T) {
	env := MapEnviron(map[string]string{"NO_COLOR": ""})

	// A key set to the empty string still counts as present.
	_, ok := env("NO_COLOR")
	assert.True(t, ok)
	_, ok = env("FORCE_COLOR")
	assert.False(t, ok)
}

package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termstyle/pkg/ansi"
	"github.com/arthur-debert/termstyle/pkg/caps"
	"github.com/arthur-debert/termstyle/pkg/errors"
)

func TestChainImmutability(t *testing.T) {
	base := New(caps.DepthTrueColor)
	bold := base.Bold()
	assert.Equal(t, 0, base.Len(), "appending must not alter the parent")
	assert.Equal(t, 1, bold.Len())

	// Two siblings built from the same parent must not alias each other.
	red := bold.Red()
	blue := bold.Blue()
	assert.Equal(t, "\x1b[1m\x1b[31mx\x1b[0m", red.Render("x"))
	assert.Equal(t, "\x1b[1m\x1b[34mx\x1b[0m", blue.Render("x"))
	assert.Equal(t, "\x1b[1mx\x1b[0m", bold.Render("x"))
}

func TestRenderBoldRedTruecolor(t *testing.T) {
	out := New(caps.DepthTrueColor).Bold().Red().Render("hello")

	assert.Equal(t, "hello", ansi.StripANSI(out))
	boldIdx := strings.Index(out, "\x1b[1m")
	redIdx := strings.Index(out, "\x1b[31m")
	require.GreaterOrEqual(t, boldIdx, 0, "bold code present")
	require.GreaterOrEqual(t, redIdx, 0, "red code present")
	assert.Less(t, boldIdx, redIdx, "attribute order preserved")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m"))
	assert.Equal(t, 1, strings.Count(out, "\x1b[0m"), "single trailing full reset")
}

func TestRenderDepthNonePassthrough(t *testing.T) {
	c := New(caps.DepthNone).Bold().Red().RGB(1, 2, 3).BgYellow()
	for _, text := range []string{"", "hello", "already\x1b[1mstyled\x1b[0m"} {
		assert.Equal(t, text, c.Render(text), "no escape bytes at depth none")
	}
}

func TestRenderEmptyChainIsIdentity(t *testing.T) {
	c := New(caps.DepthTrueColor)
	assert.Equal(t, "hello", c.Render("hello"))
	assert.Equal(t, "", c.Render(""))
}

func TestRenderEmptyString(t *testing.T) {
	out := New(caps.DepthTrueColor).Bold().Render("")
	assert.Equal(t, "", ansi.StripANSI(out))
}

func TestColorDegradation(t *testing.T) {
	t.Run("truecolor emits 24-bit sequence", func(t *testing.T) {
		out := New(caps.DepthTrueColor).RGB(255, 0, 0).Render("x")
		assert.Contains(t, out, "38;2;255;0;0")
	})

	t.Run("basic depth degrades rgb to 16-color code", func(t *testing.T) {
		out := New(caps.DepthBasic).RGB(255, 0, 0).Render("x")
		assert.NotContains(t, out, "38;2")
		assert.NotContains(t, out, "38;5")
		assert.Equal(t, "x", ansi.StripANSI(out))
		assert.NotEqual(t, "x", out, "still produces a basic color")
	})

	t.Run("256 depth degrades rgb to palette index", func(t *testing.T) {
		out := New(caps.Depth256).RGB(255, 135, 0).Render("x")
		assert.Contains(t, out, "38;5;")
		assert.NotContains(t, out, "38;2")
	})

	t.Run("ansi256 at 256 depth", func(t *testing.T) {
		out := New(caps.Depth256).ANSI256(196).Render("x")
		assert.Contains(t, out, "38;5;196")
	})
}

func TestBackgroundColors(t *testing.T) {
	out := New(caps.DepthTrueColor).BgRed().Render("x")
	assert.Contains(t, out, "\x1b[41m")

	out = New(caps.DepthTrueColor).BgRGB(0, 255, 0).Render("x")
	assert.Contains(t, out, "48;2;0;255;0")
}

func TestModifierParams(t *testing.T) {
	tests := []struct {
		name  string
		chain Chain
		code  string
	}{
		{"bold", New(caps.DepthBasic).Bold(), "\x1b[1m"},
		{"dim", New(caps.DepthBasic).Dim(), "\x1b[2m"},
		{"italic", New(caps.DepthBasic).Italic(), "\x1b[3m"},
		{"underline", New(caps.DepthBasic).Underline(), "\x1b[4m"},
		{"strikethrough", New(caps.DepthBasic).Strikethrough(), "\x1b[9m"},
		{"inverse", New(caps.DepthBasic).Inverse(), "\x1b[7m"},
		{"hidden", New(caps.DepthBasic).Hidden(), "\x1b[8m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.chain.Render("x"), tt.code)
		})
	}
}

func TestHex(t *testing.T) {
	c, err := Hex("#ff8800")
	require.NoError(t, err)
	out := New(caps.DepthTrueColor).Foreground(c).Render("x")
	assert.Contains(t, out, "38;2;255;136;0")

	c, err = Hex("FF8800")
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", c.name)

	for _, bad := range []string{"", "#ff880", "#ff88001", "red", "#gg0000"} {
		_, err := Hex(bad)
		assert.Error(t, err, bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor), bad)
	}
}

func TestParseAttribute(t *testing.T) {
	t.Run("valid tokens", func(t *testing.T) {
		tests := []struct {
			token    string
			rendered string
		}{
			{"bold", "\x1b[1m"},
			{"BOLD", "\x1b[1m"},
			{"faint", "\x1b[2m"},
			{"reverse", "\x1b[7m"},
			{"red", "\x1b[31m"},
			{"bright-cyan", "\x1b[96m"},
			{"gray", "\x1b[90m"},
			{"bg-red", "\x1b[41m"},
			{"bg-bright-blue", "\x1b[104m"},
			{"#ff0000", "38;2;255;0;0"},
			{"bg-#00ff00", "48;2;0;255;0"},
			{"rgb(1, 2, 3)", "38;2;1;2;3"},
			{"ansi256(42)", "38;5;42"},
			{"bg-ansi256(42)", "48;5;42"},
		}

		for _, tt := range tests {
			attr, err := ParseAttribute(tt.token)
			require.NoError(t, err, tt.token)
			out := New(caps.DepthTrueColor).With(attr).Render("x")
			assert.Contains(t, out, tt.rendered, tt.token)
		}
	})

	t.Run("invalid tokens", func(t *testing.T) {
		tests := []struct {
			token string
			code  errors.ErrorCode
		}{
			{"sparkle", errors.ErrInvalidAttribute},
			{"", errors.ErrInvalidAttribute},
			// Color-shaped tokens keep the underlying color error even
			// without a bg- prefix.
			{"rgb(256,0,0)", errors.ErrInvalidColor},
			{"ansi256(300)", errors.ErrInvalidColor},
			{"#12345", errors.ErrInvalidColor},
			{"#gg0000", errors.ErrInvalidColor},
			{"bg-rgb(0,0,999)", errors.ErrInvalidColor},
			{"bg-chartreuse-ish", errors.ErrInvalidColor},
			{"bg-#12345", errors.ErrInvalidColor},
		}

		for _, tt := range tests {
			_, err := ParseAttribute(tt.token)
			require.Error(t, err, tt.token)
			assert.True(t, errors.IsErrorCode(err, tt.code),
				"token %q: got code %s", tt.token, errors.GetErrorCode(err))
		}
	})
}

func TestAttributeString(t *testing.T) {
	assert.Equal(t, "bold", Mod(ModBold).String())
	assert.Equal(t, "red", Foreground(Red).String())
	assert.Equal(t, "bg-red", Background(Red).String())
	assert.Equal(t, "#ff8800", Foreground(RGB(255, 136, 0)).String())
}

func TestProfileMapping(t *testing.T) {
	assert.NotEqual(t, Profile(caps.DepthBasic), Profile(caps.DepthTrueColor))
	assert.Equal(t, Profile(caps.DepthNone), Profile(caps.ColorDepth(99)))
}

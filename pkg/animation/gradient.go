// Package animation implements the colour-cycling gradient title.
package animation

import (
	"fmt"
	"math"
	"strings"

	"DesiresAfterDuties/pkg/ui"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the sequence of colours the title cycles through.
var DefaultPalette = []string{"#FF5F6D", "#FFC371", "#47CACC", "#6366F1", "#C026D3"}

// DefaultStep is the fraction of the gradient the colours move per frame.
const DefaultStep = 0.02

// Gradient colours text with a palette whose phase advances every frame.
// It is not safe for concurrent use; the host mutates it from its event
// loop only.
type Gradient struct {
	palette []colorful.Color
	offset  float64
	step    float64
	tier    ui.Tier
}

// NewGradient parses a palette of hex colours. An empty palette uses
// DefaultPalette.
func NewGradient(hexes ...string) (*Gradient, error) {
	if len(hexes) == 0 {
		hexes = DefaultPalette
	}
	palette := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("parse palette colour %q: %w", h, err)
		}
		palette = append(palette, c)
	}
	return &Gradient{palette: palette, step: DefaultStep}, nil
}

// SetStep sets how far the gradient moves per Advance.
func (g *Gradient) SetStep(step float64) {
	if step > 0 {
		g.step = step
	}
}

// SetTier sets the title size tier used by Render.
func (g *Gradient) SetTier(tier ui.Tier) {
	g.tier = tier
}

// Tier returns the current title size tier.
func (g *Gradient) Tier() ui.Tier {
	return g.tier
}

// Offset returns the current phase in [0, 1).
func (g *Gradient) Offset() float64 {
	return g.offset
}

// Advance moves the gradient one frame.
func (g *Gradient) Advance() {
	g.offset = wrap(g.offset + g.step)
}

// ColorAt returns the colour at position pos (0..1) along the text,
// including the current phase. The palette wraps so the cycle is seamless.
func (g *Gradient) ColorAt(pos float64) colorful.Color {
	if len(g.palette) == 1 {
		return g.palette[0]
	}
	t := wrap(pos+g.offset) * float64(len(g.palette))
	i := int(t) % len(g.palette)
	next := (i + 1) % len(g.palette)
	return g.palette[i].BlendLab(g.palette[next], t-math.Floor(t)).Clamped()
}

// Render colours s rune by rune and lays it out for the current tier:
// small is plain, medium spaces the letters, large also pads it
// vertically.
func (g *Gradient) Render(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	sep := ""
	if g.tier >= ui.TierMedium {
		sep = " "
	}

	var sb strings.Builder
	for i, r := range runes {
		if i > 0 {
			sb.WriteString(sep)
		}
		if r == ' ' {
			sb.WriteString(" ")
			continue
		}
		c := g.ColorAt(float64(i) / float64(len(runes)))
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}

	style := lipgloss.NewStyle()
	if g.tier == ui.TierLarge {
		style = style.Padding(1, 0)
	}
	return style.Render(sb.String())
}

func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}

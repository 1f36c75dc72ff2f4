package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	RgbBackground = tcell.NewRGBColor(10, 12, 24)    // Deep space
	RgbGridCell   = tcell.NewRGBColor(30, 34, 54)    // Occupied broad phase cell
	RgbHUD        = tcell.NewRGBColor(220, 220, 220) // Status text
	RgbHUDWarn    = tcell.NewRGBColor(255, 80, 80)   // Low hull, jammed

	RgbPlayer       = tcell.NewRGBColor(255, 165, 0)   // Orange ship
	RgbPlayerJet    = tcell.NewRGBColor(140, 190, 255) // Thruster glow
	RgbBulletPlayer = tcell.NewRGBColor(50, 255, 50)
	RgbBulletEnemy  = tcell.NewRGBColor(255, 80, 80)

	RgbCargoHealthy  = tcell.NewRGBColor(100, 150, 255)
	RgbCargoDamaged  = tcell.NewRGBColor(60, 100, 200)
	RgbCargoCritical = tcell.NewRGBColor(180, 50, 50)
	RgbIndicator     = tcell.NewRGBColor(100, 150, 255)

	RgbExotic  = tcell.NewRGBColor(255, 255, 0)
	RgbSalvage = tcell.NewRGBColor(180, 180, 180)

	RgbJammer      = tcell.NewRGBColor(200, 80, 255)
	RgbJammerField = tcell.NewRGBColor(70, 30, 90)
)

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c).Background(RgbBackground)
}

// cargoColor shades a section by remaining health fraction
// Healthy fades to damaged over the upper half and damaged to critical below it
func cargoColor(frac float64) tcell.Color {
	switch {
	case frac >= 1:
		return RgbCargoHealthy
	case frac <= 0:
		return RgbCargoCritical
	case frac >= 0.5:
		return blend(RgbCargoDamaged, RgbCargoHealthy, (frac-0.5)*2)
	}
	return blend(RgbCargoCritical, RgbCargoDamaged, frac*2)
}

// blend interpolates two RGB colors in Lab space
func blend(a, b tcell.Color, t float64) tcell.Color {
	r, g, bl := toColorful(a).BlendLab(toColorful(b), t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

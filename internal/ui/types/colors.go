package types

import "image/color"

var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorGrid       = color.RGBA{255, 0, 0, 255}
	ColorSnake      = color.RGBA{0, 255, 0, 255}
	ColorFood       = color.RGBA{255, 175, 175, 255}
	ColorText       = color.RGBA{220, 220, 220, 255}
	ColorTextDim    = color.RGBA{150, 150, 150, 255}
	ColorError      = color.RGBA{255, 100, 100, 255}
	ColorSuccess    = color.RGBA{100, 255, 100, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

package main

import (
	"image/color"

	"github.com/milk9111/antroit/render"
)

func toRGBA(c render.Color) color.RGBA {
	c = c.Clamped()
	a := c.A
	return color.RGBA{
		R: uint8(c.R*a*255 + 0.5),
		G: uint8(c.G*a*255 + 0.5),
		B: uint8(c.B*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

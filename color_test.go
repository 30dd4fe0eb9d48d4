package main

import (
	"image/color"
	"testing"

	"github.com/milk9111/antroit/render"
)

func TestToRGBA(t *testing.T) {
	cases := []struct {
		name string
		in   render.Color
		want color.RGBA
	}{
		{"opaque", render.Color{R: 1, G: 0, B: 0, A: 1}, color.RGBA{R: 255, A: 255}},
		{"fractional", render.Color{R: 0.2, G: 0.6, B: 0.4, A: 1}, color.RGBA{R: 51, G: 153, B: 102, A: 255}},
		{"premultiplied", render.Color{R: 1, G: 1, B: 1, A: 0.5}, color.RGBA{R: 128, G: 128, B: 128, A: 128}},
		{"clamped", render.Color{R: 2, G: -1, B: 0, A: 3}, color.RGBA{R: 255, A: 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := toRGBA(c.in); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

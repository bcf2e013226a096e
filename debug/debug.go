/*
Package debug provides tools for visualizing the input areas of clickable
rows.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a small black outline around the provided widget.
func Outline(gtx C, w func(gtx C) D) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}

// HitArea outlines the provided widget's bounds and, while active is true,
// tints them to show that the area is receiving pointer input.
func HitArea(gtx C, active bool, w func(gtx C) D) D {
	return Outline(gtx, func(gtx C) D {
		dims := w(gtx)
		if active {
			paint.FillShape(gtx.Ops, color.NRGBA{R: 255, A: 64},
				clip.Rect(image.Rectangle{Max: dims.Size}).Op())
		}
		return dims
	})
}

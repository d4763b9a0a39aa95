package render

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

// grid splits a rectangle into rows and columns with relative sizes. Gaps
// are fractions of the mean row height (hspace) and mean column width
// (wspace).
type grid struct {
	heights []float64
	widths  []float64
	hspace  float64
	wspace  float64
}

// cells returns the cell rectangles indexed [row][col], row 0 at the top.
func (g grid) cells(area vg.Rectangle) [][]vg.Rectangle {
	size := area.Size()
	hs := spans(g.heights, g.hspace, size.Y)
	ws := spans(g.widths, g.wspace, size.X)

	out := make([][]vg.Rectangle, len(hs))
	top := area.Max.Y
	for i, h := range hs {
		out[i] = make([]vg.Rectangle, len(ws))
		left := area.Min.X
		for j, w := range ws {
			out[i][j] = vg.Rectangle{
				Min: vg.Point{X: left, Y: top - h[0]},
				Max: vg.Point{X: left + w[0], Y: top},
			}
			left += w[0] + w[1]
		}
		top -= h[0] + h[1]
	}
	return out
}

// spans returns for each ratio the cell length and the gap following it.
func spans(ratios []float64, space float64, total vg.Length) [][2]vg.Length {
	n := float64(len(ratios))
	var sum float64
	for _, r := range ratios {
		sum += r
	}
	cell := float64(total) / (n + space*(n-1))
	gap := vg.Length(space * cell)

	out := make([][2]vg.Length, len(ratios))
	for i, r := range ratios {
		out[i][0] = vg.Length(cell * n * r / sum)
		if i < len(ratios)-1 {
			out[i][1] = gap
		}
	}
	return out
}

// alignX trims the two canvases so the data areas of a and b start and end
// at the same horizontal positions.
func alignX(a *plot.Plot, ca *draw.Canvas, b *plot.Plot, cb *draw.Canvas) {
	da, db := a.DataCanvas(*ca), b.DataCanvas(*cb)
	if d := da.Min.X - db.Min.X; d > 0 {
		cb.Min.X += d
	} else {
		ca.Min.X -= d
	}
	if d := da.Max.X - db.Max.X; d < 0 {
		cb.Max.X += d
	} else {
		ca.Max.X -= d
	}
}

// alignY shifts the vertical bounds of cb so that the data area of b spans
// the same heights as the data area of a.
func alignY(a *plot.Plot, ca draw.Canvas, b *plot.Plot, cb *draw.Canvas) {
	da, db := a.DataCanvas(ca), b.DataCanvas(*cb)
	cb.Min.Y += da.Min.Y - db.Min.Y
	cb.Max.Y += da.Max.Y - db.Max.Y
}

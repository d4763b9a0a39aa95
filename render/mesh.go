package render

import "image/color"
import "math"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/palette"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

// Mesh draws a grid of values as filled cells coloured from a palette.
//
// Each cell spans halfway to its neighbours, edge cells extend by the same
// half step outward. Cells are clipped to the axis ranges of the plot, never
// dropped, so a range that starts or ends on a grid coordinate still shows
// the outer cells.
type Mesh struct {
	GridXYZ plotter.GridXYZ
	Palette palette.Palette

	// Min and Max map onto the first and last palette colour. Values
	// outside are drawn with the nearest end colour.
	Min, Max float64
}

// NewMesh creates a new Mesh with the colour scale spanning [min, max].
func NewMesh(g plotter.GridXYZ, p palette.Palette, min, max float64) *Mesh {
	return &Mesh{GridXYZ: g, Palette: p, Min: min, Max: max}
}

// Color returns the palette colour for v.
func (m *Mesh) Color(v float64) color.Color {
	pal := m.Palette.Colors()
	if len(pal) == 0 {
		panic("render: empty palette")
	}
	if m.Max <= m.Min {
		return pal[0]
	}
	i := int((v-m.Min)*float64(len(pal)-1)/(m.Max-m.Min) + 0.5)
	if i < 0 {
		i = 0
	}
	if i > len(pal)-1 {
		i = len(pal) - 1
	}
	return pal[i]
}

// Plot implements the plot.Plotter interface.
func (m *Mesh) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	cols, rows := m.GridXYZ.Dims()
	for i := 0; i < cols; i++ {
		left, right := edges(m.GridXYZ.X, cols, i)
		left, right = math.Max(left, plt.X.Min), math.Min(right, plt.X.Max)
		if right <= left {
			continue
		}
		for j := 0; j < rows; j++ {
			bottom, top := edges(m.GridXYZ.Y, rows, j)
			bottom, top = math.Max(bottom, plt.Y.Min), math.Min(top, plt.Y.Max)
			if top <= bottom {
				continue
			}

			var pa vg.Path
			pa.Move(vg.Point{X: trX(left), Y: trY(bottom)})
			pa.Line(vg.Point{X: trX(right), Y: trY(bottom)})
			pa.Line(vg.Point{X: trX(right), Y: trY(top)})
			pa.Line(vg.Point{X: trX(left), Y: trY(top)})
			pa.Close()

			c.SetColor(m.Color(m.GridXYZ.Z(i, j)))
			c.Fill(pa)
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (m *Mesh) DataRange() (xmin, xmax, ymin, ymax float64) {
	cols, rows := m.GridXYZ.Dims()
	xmin, xmax = span(m.GridXYZ.X, cols)
	ymin, ymax = span(m.GridXYZ.Y, rows)
	return
}

// span returns the extent covered by all n cells along one axis.
func span(at func(int) float64, n int) (min, max float64) {
	lo0, hi0 := edges(at, n, 0)
	lo1, hi1 := edges(at, n, n-1)
	return math.Min(lo0, lo1), math.Max(hi0, hi1)
}

// edges returns the lower and upper bound of cell i along one axis.
func edges(at func(int) float64, n, i int) (lo, hi float64) {
	v := at(i)
	if n == 1 {
		return v - 0.5, v + 0.5
	}
	if i > 0 {
		lo = (at(i-1) + v) / 2
	} else {
		lo = v - (at(1)-v)/2
	}
	if i < n-1 {
		hi = (v + at(i+1)) / 2
	} else {
		hi = v + (v-at(n-2))/2
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

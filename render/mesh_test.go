package render

import "image/color"
import "math"
import "testing"

import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"
import "gonum.org/v1/plot/vg/recorder"

type filled struct {
	col  color.Color
	path vg.Path
}

// drawSpectrogram draws the spectrogram plot on a recording canvas and
// returns the cell fills together with the data area they must stay in.
func drawSpectrogram(t *testing.T, ps *Plots) ([]filled, draw.Canvas) {
	t.Helper()
	rec := new(recorder.Canvas)
	c := draw.Canvas{Canvas: rec, Rectangle: vg.Rectangle{Max: vg.Point{X: 6 * vg.Inch, Y: 4 * vg.Inch}}}

	// Without a background every fill on the canvas is a mesh cell.
	ps.Spectrogram.BackgroundColor = nil
	ps.Spectrogram.Draw(c)

	var (
		cur   color.Color
		fills []filled
	)
	for _, a := range rec.Actions {
		switch a := a.(type) {
		case *recorder.SetColor:
			cur = a.Color
		case *recorder.Fill:
			fills = append(fills, filled{col: cur, path: a.Path})
		}
	}
	return fills, ps.Spectrogram.DataCanvas(c)
}

func paletteColor(m *Mesh, v float64) color.Color {
	pal := m.Palette.Colors()
	i := int(math.Round((v - m.Min) / (m.Max - m.Min) * float64(len(pal)-1)))
	return pal[i]
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestMeshDrawsEveryCell(t *testing.T) {
	// The time indices start and end exactly on the shared range.
	mags := []float64{-60, -30, -3.5, 0, 6, 12}
	tab := table([]float64{0, 1, 2}, []float64{100, 200}, mags...)
	ps, err := NewFigure().Plots(sine(10, 2), tab)
	if err != nil {
		t.Fatalf("plots: %v", err)
	}
	if ps.Range.Min != 0 || ps.Range.Max != 2 {
		t.Fatalf("range = %+v, want [0, 2]", ps.Range)
	}

	fills, dc := drawSpectrogram(t, ps)
	if len(fills) != len(mags) {
		t.Fatalf("drew %d cells, want %d", len(fills), len(mags))
	}

	const eps = 1e-6
	for k, f := range fills {
		if want := paletteColor(ps.Mesh, mags[k]); !sameColor(f.col, want) {
			t.Errorf("cell %d (value %v) colour %v, want %v", k, mags[k], f.col, want)
		}
		for _, pc := range f.path {
			if pc.Type != vg.MoveComp && pc.Type != vg.LineComp {
				continue
			}
			if pc.Pos.X < dc.Min.X-eps || pc.Pos.X > dc.Max.X+eps {
				t.Errorf("cell %d reaches x=%v outside data area [%v, %v]", k, pc.Pos.X, dc.Min.X, dc.Max.X)
			}
		}
	}

	// The most negative cell keeps its own shade, not the one for 0 dB.
	if sameColor(fills[0].col, ps.Mesh.Color(0)) {
		t.Fatalf("cell at -60 dB drawn with the 0 dB colour")
	}
	if !sameColor(fills[0].col, ps.Mesh.Palette.Colors()[0]) {
		t.Fatalf("cell at -60 dB is not the darkest palette colour")
	}
}

func TestMeshTwoFrames(t *testing.T) {
	tab := table([]float64{0, 0.5}, []float64{100}, -10, -20)
	w := sine(10, 0.5)
	ps, err := NewFigure().Plots(w, tab)
	if err != nil {
		t.Fatalf("plots: %v", err)
	}
	fills, _ := drawSpectrogram(t, ps)
	if len(fills) != 2 {
		t.Fatalf("drew %d cells, want 2", len(fills))
	}
}

func TestMeshClipsToAxis(t *testing.T) {
	tab := table([]float64{0, 1, 2}, []float64{100, 200}, 1, 2, 3, 4, 5, 6)
	m := NewMesh(tab, nil, 1, 6)

	xmin, xmax, ymin, ymax := m.DataRange()
	if xmin != -0.5 || xmax != 2.5 || ymin != 50 || ymax != 250 {
		t.Fatalf("data range = %v %v %v %v", xmin, xmax, ymin, ymax)
	}

	lo, hi := edges(tab.X, 3, 0)
	if lo != -0.5 || hi != 0.5 {
		t.Fatalf("first cell = [%v, %v], want [-0.5, 0.5]", lo, hi)
	}
	lo, hi = edges(func(i int) float64 { return []float64{3, 1}[i] }, 2, 0)
	if lo != 2 || hi != 4 {
		t.Fatalf("descending cell = [%v, %v], want [2, 4]", lo, hi)
	}
}

package render

import "bytes"
import "errors"
import "fmt"
import "image/color"
import "io"
import "math"
import "os"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/palette/moreland"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"
import "gonum.org/v1/plot/vg/vgpdf"

import "github.com/neurlang/spectshow/spectrogram"
import "github.com/neurlang/spectshow/waveform"

var ErrNonFinite = errors.New("render: spectrogram has non-finite magnitudes")

// TimeRange is a closed interval in seconds.
type TimeRange struct {
	Min, Max float64
}

// SharedRange returns the smallest interval covering the waveform time axis
// and every spectrogram time index.
func SharedRange(w *waveform.Waveform, t *spectrogram.Table) TimeRange {
	wmin, wmax := w.Span()
	tmin, tmax := t.Span()
	return TimeRange{Min: math.Min(wmin, tmin), Max: math.Max(wmax, tmax)}
}

// limits returns axis bounds, widening a degenerate range so it can be drawn.
func (r TimeRange) limits() (min, max float64) {
	if r.Max > r.Min {
		return r.Min, r.Max
	}
	return r.Min - 0.5, r.Max + 0.5
}

// Figure represents the page geometry of the rendered document.
type Figure struct {
	Width  vg.Length
	Height vg.Length

	// Page margins around the plot grid, as fractions of the page.
	Left, Right, Bottom, Top float64

	HeightRatios [2]float64
	WidthRatios  [2]float64
	HSpace       float64
	WSpace       float64

	// Colors is the number of grey levels in the spectrogram palette.
	Colors    int
	LineColor color.Color
}

// NewFigure creates a new Figure instance with default values.
func NewFigure() *Figure {
	return &Figure{
		Width:        10 * vg.Inch,
		Height:       8 * vg.Inch,
		Left:         0.04,
		Right:        0.96,
		Bottom:       0.04,
		Top:          0.96,
		HeightRatios: [2]float64{1, 2},
		WidthRatios:  [2]float64{20, 1},
		HSpace:       0.4,
		WSpace:       0.2,
		Colors:       256,
		LineColor:    color.RGBA{B: 255, A: 255},
	}
}

// Plots holds the three plots of a figure before they are drawn.
type Plots struct {
	Range       TimeRange
	Waveform    *plot.Plot
	Spectrogram *plot.Plot
	ColorBar    *plot.Plot

	Line *plotter.Line
	Mesh *Mesh
}

// Plots builds the waveform, spectrogram and colour bar plots.
func (f *Figure) Plots(w *waveform.Waveform, t *spectrogram.Table) (*Plots, error) {
	r := SharedRange(w, t)
	xmin, xmax := r.limits()

	xys := make(plotter.XYs, len(w.Samples))
	for i, s := range w.Samples {
		xys[i].X = w.Time(i)
		xys[i].Y = s
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("render: waveform: %w", err)
	}
	line.LineStyle.Color = f.LineColor

	wp := plot.New()
	wp.Title.Text = "Waveform"
	wp.X.Label.Text = "Time (s)"
	wp.Y.Label.Text = "Amplitude"
	wp.Add(line)
	wp.X.Min, wp.X.Max = xmin, xmax

	zmin, zmax, err := magnitudeRange(t)
	if err != nil {
		return nil, err
	}
	cm, err := moreland.NewLuminance([]color.Color{color.Black, color.White})
	if err != nil {
		return nil, fmt.Errorf("render: colour map: %w", err)
	}
	cm.SetMax(zmax)
	cm.SetMin(zmin)

	mesh := NewMesh(t, cm.Palette(f.Colors), zmin, zmax)

	sp := plot.New()
	sp.Title.Text = "Spectrogram (Grayscale)"
	sp.X.Label.Text = "Time (s)"
	sp.Y.Label.Text = "Frequency (Hz)"
	sp.Add(mesh)
	sp.X.Min, sp.X.Max = xmin, xmax

	cb := plot.New()
	cb.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: f.Colors})
	cb.HideX()
	cb.Y.Label.Text = "Magnitude (dB)"

	return &Plots{
		Range:       r,
		Waveform:    wp,
		Spectrogram: sp,
		ColorBar:    cb,
		Line:        line,
		Mesh:        mesh,
	}, nil
}

// magnitudeRange returns the colour scale bounds of t.
func magnitudeRange(t *spectrogram.Table) (min, max float64, err error) {
	rows, cols := t.Magnitudes.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := t.Magnitudes.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: row %d column %d", ErrNonFinite, i, j)
			}
		}
	}
	min, max = t.Range()
	if min == max {
		min, max = min-0.5, max+0.5
	}
	return min, max, nil
}

// Draw lays the plots out on c: waveform on top, spectrogram below it with
// the colour bar in the narrow right column.
func (f *Figure) Draw(c vg.Canvas, ps *Plots) {
	area := vg.Rectangle{
		Min: vg.Point{X: vg.Length(f.Left) * f.Width, Y: vg.Length(f.Bottom) * f.Height},
		Max: vg.Point{X: vg.Length(f.Right) * f.Width, Y: vg.Length(f.Top) * f.Height},
	}
	g := grid{
		heights: f.HeightRatios[:],
		widths:  f.WidthRatios[:],
		hspace:  f.HSpace,
		wspace:  f.WSpace,
	}
	cells := g.cells(area)

	top := draw.Canvas{Canvas: c, Rectangle: cells[0][0]}
	bottom := draw.Canvas{Canvas: c, Rectangle: cells[1][0]}
	// The bar's axis decorations occupy the gap between the columns.
	bar := draw.Canvas{Canvas: c, Rectangle: vg.Rectangle{
		Min: vg.Point{X: cells[1][0].Max.X, Y: cells[1][1].Min.Y},
		Max: cells[1][1].Max,
	}}

	alignX(ps.Waveform, &top, ps.Spectrogram, &bottom)
	alignY(ps.Spectrogram, bottom, ps.ColorBar, &bar)

	ps.Waveform.Draw(top)
	ps.Spectrogram.Draw(bottom)
	ps.ColorBar.Draw(bar)
}

// Render writes the figure for w and t to out as a single page PDF.
func (f *Figure) Render(out io.Writer, w *waveform.Waveform, t *spectrogram.Table) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render: draw: %v", r)
		}
	}()

	ps, err := f.Plots(w, t)
	if err != nil {
		return err
	}

	c := vgpdf.New(f.Width, f.Height)
	f.Draw(c, ps)
	if _, err := c.WriteTo(out); err != nil {
		return fmt.Errorf("render: write pdf: %w", err)
	}
	return nil
}

// Save renders the figure and writes it to path, replacing any existing
// file. Nothing is written when rendering fails.
func (f *Figure) Save(path string, w *waveform.Waveform, t *spectrogram.Table) error {
	var buf bytes.Buffer
	if err := f.Render(&buf, w, t); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

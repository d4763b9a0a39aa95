package spectrogram

import "bufio"
import "errors"
import "fmt"
import "io"
import "math"
import "os"
import "strconv"
import "strings"

import "gonum.org/v1/gonum/mat"

// maxLineSize bounds a single line of the table, wide spectra produce long lines.
const maxLineSize = 64 << 20

var (
	ErrEmpty         = errors.New("spectrogram: missing header line")
	ErrNoFrequencies = errors.New("spectrogram: header has no frequency bins")
	ErrNoRows        = errors.New("spectrogram: no time index rows")
	ErrShape         = errors.New("spectrogram: row length does not match frequency count")
)

// ParseError reports a token that is not a number.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("spectrogram: line %d column %d: invalid number %q", e.Line, e.Column, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Table is a time by frequency magnitude table.
//
// Magnitudes has one row per entry of Times and one column per entry of
// Frequencies.
type Table struct {
	Times       []float64
	Frequencies []float64
	Magnitudes  *mat.Dense
}

// Load reads the table stored at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spectrogram: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a table from r.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		t    Table
		data []float64
		line int
		head bool
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !head {
			head = true
			freqs, err := parseFields(fields[1:], line, 2)
			if err != nil {
				return nil, err
			}
			if len(freqs) == 0 {
				return nil, fmt.Errorf("line %d: %w", line, ErrNoFrequencies)
			}
			t.Frequencies = freqs
			continue
		}

		vals, err := parseFields(fields, line, 1)
		if err != nil {
			return nil, err
		}
		if len(vals)-1 != len(t.Frequencies) {
			return nil, fmt.Errorf("line %d: %w: got %d values, want %d",
				line, ErrShape, len(vals)-1, len(t.Frequencies))
		}
		t.Times = append(t.Times, vals[0])
		data = append(data, vals[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spectrogram: read: %w", err)
	}

	if !head {
		return nil, ErrEmpty
	}
	if len(t.Times) == 0 {
		return nil, ErrNoRows
	}

	t.Magnitudes = mat.NewDense(len(t.Times), len(t.Frequencies), data)
	return &t, nil
}

func parseFields(fields []string, line, col int) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: col + i, Token: s, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// Span returns the smallest and largest time index.
func (t *Table) Span() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range t.Times {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return
}

// Range returns the smallest and largest magnitude.
func (t *Table) Range() (min, max float64) {
	return mat.Min(t.Magnitudes), mat.Max(t.Magnitudes)
}

// Dims, X, Y and Z expose the table as a plotter.GridXYZ with time along
// columns and frequency along rows.
func (t *Table) Dims() (c, r int) { return len(t.Times), len(t.Frequencies) }

func (t *Table) X(c int) float64 { return t.Times[c] }

func (t *Table) Y(r int) float64 { return t.Frequencies[r] }

func (t *Table) Z(c, r int) float64 { return t.Magnitudes.At(c, r) }

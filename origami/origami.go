package origami

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and folding.
var (
	// ErrBadAction indicates a line that is neither a point nor a fold.
	ErrBadAction = errors.New("origami: malformed action")

	// ErrFoldRange indicates a fold that would push a point below zero.
	ErrFoldRange = errors.New("origami: fold reflects point past the origin")
)

// Point is a marked position. X grows right, Y grows down.
type Point struct {
	X, Y int
}

// Fold reflects the sheet along x=Line (Axis 'x') or y=Line (Axis 'y').
type Fold struct {
	Axis byte
	Line int
}

// Action is a Point or a Fold.
type Action interface {
	isAction()
}

func (Point) isAction() {}
func (Fold) isAction()  {}

// ParseActions reads one action per non-empty line.
func ParseActions(text string) ([]Action, error) {
	var out []Action
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, err := parseAction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		out = append(out, a)
	}

	return out, nil
}

func parseAction(line string) (Action, error) {
	if rest, ok := strings.CutPrefix(line, "fold along "); ok {
		axis, v, ok := strings.Cut(rest, "=")
		if !ok || (axis != "x" && axis != "y") {
			return nil, fmt.Errorf("%w: %q", ErrBadAction, line)
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadAction, line)
		}
		return Fold{Axis: axis[0], Line: n}, nil
	}

	sx, sy, ok := strings.Cut(line, ",")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadAction, line)
	}
	x, errX := strconv.Atoi(sx)
	y, errY := strconv.Atoi(sy)
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadAction, line)
	}

	return Point{X: x, Y: y}, nil
}

// Sheet is a set of marked points.
type Sheet map[Point]struct{}

// Fold returns a new sheet with f applied.
func (s Sheet) Fold(f Fold) (Sheet, error) {
	out := make(Sheet, len(s))
	for p := range s {
		switch {
		case f.Axis == 'x' && p.X > f.Line:
			p.X = 2*f.Line - p.X
		case f.Axis == 'y' && p.Y > f.Line:
			p.Y = 2*f.Line - p.Y
		}
		if p.X < 0 || p.Y < 0 {
			return nil, fmt.Errorf("%w: fold along %c=%d", ErrFoldRange, f.Axis, f.Line)
		}
		out[p] = struct{}{}
	}

	return out, nil
}

// Points returns the marked points sorted by row, then column.
func (s Sheet) Points() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Render draws the sheet from the origin to its largest coordinates, each row
// preceded by a newline. An empty sheet renders as "".
func (s Sheet) Render(on, off rune) string {
	if len(s) == 0 {
		return ""
	}
	maxX, maxY := 0, 0
	for p := range s {
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	var b strings.Builder
	for y := 0; y <= maxY; y++ {
		b.WriteByte('\n')
		for x := 0; x <= maxX; x++ {
			if _, ok := s[Point{X: x, Y: y}]; ok {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
	}

	return b.String()
}

// Apply marks every Point, then performs the Folds in order. It returns the
// number of points left after the first fold (0 if there is none) and the
// final sheet. Points listed after a fold are still marked before folding.
func Apply(actions []Action) (int, Sheet, error) {
	sheet := make(Sheet)
	var folds []Fold
	for _, a := range actions {
		switch a := a.(type) {
		case Point:
			sheet[a] = struct{}{}
		case Fold:
			folds = append(folds, a)
		}
	}

	first := 0
	for i, f := range folds {
		var err error
		if sheet, err = sheet.Fold(f); err != nil {
			return 0, nil, err
		}
		if i == 0 {
			first = len(sheet)
		}
	}

	return first, sheet, nil
}

package polyhedra

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ViewSet holds the 2D points of the front, top and side views.
type ViewSet struct {
	Front []Point2
	Top   []Point2
	Side  []Point2
}

func (vs *ViewSet) Points(v View) []Point2 {
	switch v {
	case Front:
		return vs.Front
	case Top:
		return vs.Top
	default:
		return vs.Side
	}
}

func (vs *ViewSet) Add(v View, p Point2) {
	switch v {
	case Front:
		vs.Front = append(vs.Front, p)
	case Top:
		vs.Top = append(vs.Top, p)
	default:
		vs.Side = append(vs.Side, p)
	}
}

// ProjectAll fills a view set with all three projections of m.
func ProjectAll(m *Mesh) *ViewSet {
	vs := &ViewSet{}
	for _, v := range Views {
		for _, p := range Project(m, v).Points() {
			vs.Add(v, p)
		}
	}
	return vs
}

func (vs *ViewSet) Reconstruct() *Mesh {
	return Reconstruct(vs.Front, vs.Top, vs.Side)
}

func parsePair(a, b string, lineNo int) (Point2, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return Point2{}, fmt.Errorf("line %d: %q is not a number: %w", lineNo, a, ErrMalformed)
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return Point2{}, fmt.Errorf("line %d: %q is not a number: %w", lineNo, b, ErrMalformed)
	}
	return Point2{X: x, Y: y}, nil
}

// ReadViewSet parses a view file. Blank lines and lines starting with '#' are
// skipped. A line holding only a view tag (f, t, s or front, top, side)
// starts a section whose following "a b" lines belong to that view; a line
// "f a b" adds a single tagged point.
func ReadViewSet(r io.Reader) (*ViewSet, error) {
	vs := &ViewSet{}
	scanner := bufio.NewScanner(r)

	var current View
	haveSection := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)

		switch len(parts) {
		case 1:
			v, err := ParseView(parts[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current, haveSection = v, true
		case 2:
			if !haveSection {
				return nil, fmt.Errorf("line %d: point before any view tag: %w", lineNo, ErrMalformed)
			}
			p, err := parsePair(parts[0], parts[1], lineNo)
			if err != nil {
				return nil, err
			}
			vs.Add(current, p)
		case 3:
			v, err := ParseView(parts[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p, err := parsePair(parts[1], parts[2], lineNo)
			if err != nil {
				return nil, err
			}
			vs.Add(v, p)
		default:
			return nil, fmt.Errorf("line %d: expected a view tag and/or a coordinate pair, got %d fields: %w", lineNo, len(parts), ErrMalformed)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading view data: %w", err)
	}
	return vs, nil
}

// ReadPoints parses an untagged list of coordinate pairs for a single view.
func ReadPoints(r io.Reader) ([]Point2, error) {
	var pts []Point2
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, got %d: %w", lineNo, len(parts), ErrMalformed)
		}
		p, err := parsePair(parts[0], parts[1], lineNo)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading view points: %w", err)
	}
	return pts, nil
}

// WriteViewSet writes the sectioned form read by ReadViewSet.
func WriteViewSet(w io.Writer, vs *ViewSet) error {
	writer := bufio.NewWriter(w)
	for _, v := range Views {
		_, _ = fmt.Fprintf(writer, "# %s\n", v)
		_, _ = fmt.Fprintln(writer, v.Letter())
		for _, p := range vs.Points(v) {
			_, _ = fmt.Fprintf(writer, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
		}
	}
	return writer.Flush()
}

func LoadViewSetFile(fileName string) (*ViewSet, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open view file %s: %w", fileName, err)
	}
	defer file.Close()

	vs, err := ReadViewSet(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing view file %s: %w", fileName, err)
	}
	return vs, nil
}

func SaveViewSetFile(fileName string, vs *ViewSet) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create view file %s: %w", fileName, err)
	}
	if err := WriteViewSet(file, vs); err != nil {
		file.Close()
		return fmt.Errorf("error writing view file %s: %w", fileName, err)
	}
	return file.Close()
}

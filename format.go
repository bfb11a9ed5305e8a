package polyhedra

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// The mesh text format:
//
//	Vertex Count: <n>
//	Edge Count: <e>
//	Face Count: <f>
//	x y z          (n lines)
//	v1 v2          (e lines)
//	k i1 ... ik    (f lines)
//
// Tokens are whitespace separated, so line breaks are not significant when
// reading.

type tokenReader struct {
	scanner *bufio.Scanner
	count   int
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("unexpected end of input while reading %s: %w", what, ErrMalformed)
	}
	t.count++
	return t.scanner.Text(), nil
}

func (t *tokenReader) expect(words ...string) error {
	for _, w := range words {
		tok, err := t.next(strconv.Quote(w))
		if err != nil {
			return err
		}
		if tok != w {
			return fmt.Errorf("token %d: expected %q, got %q: %w", t.count, w, tok, ErrMalformed)
		}
	}
	return nil
}

func (t *tokenReader) readInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q is not an integer: %w", t.count, what, tok, ErrMalformed)
	}
	return v, nil
}

func (t *tokenReader) readFloat(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d: %s %q is not a number: %w", t.count, what, tok, ErrMalformed)
	}
	return v, nil
}

func (t *tokenReader) readCount(label string) (int, error) {
	if err := t.expect(label, "Count:"); err != nil {
		return 0, err
	}
	n, err := t.readInt(label + " count")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s count %d: %w", label, n, ErrMalformed)
	}
	return n, nil
}

// ReadMesh parses a mesh in the text format and validates its indices.
func ReadMesh(r io.Reader) (*Mesh, error) {
	t := newTokenReader(r)

	vertexCount, err := t.readCount("Vertex")
	if err != nil {
		return nil, err
	}
	edgeCount, err := t.readCount("Edge")
	if err != nil {
		return nil, err
	}
	faceCount, err := t.readCount("Face")
	if err != nil {
		return nil, err
	}

	// Slices grow as records arrive; a count larger than the data fails at
	// end of input.
	m := &Mesh{}

	for i := 0; i < vertexCount; i++ {
		var c [3]float64
		for j := range c {
			if c[j], err = t.readFloat(fmt.Sprintf("vertex %d coordinate", i)); err != nil {
				return nil, err
			}
		}
		m.Vertices = append(m.Vertices, Vertex{X: c[0], Y: c[1], Z: c[2]})
	}

	for i := 0; i < edgeCount; i++ {
		v1, err := t.readInt(fmt.Sprintf("edge %d index", i))
		if err != nil {
			return nil, err
		}
		v2, err := t.readInt(fmt.Sprintf("edge %d index", i))
		if err != nil {
			return nil, err
		}
		m.Edges = append(m.Edges, Edge{V1: v1, V2: v2})
	}

	for i := 0; i < faceCount; i++ {
		k, err := t.readInt(fmt.Sprintf("face %d vertex count", i))
		if err != nil {
			return nil, err
		}
		if k < 0 {
			return nil, fmt.Errorf("face %d has negative vertex count %d: %w", i, k, ErrMalformed)
		}
		var idx []int
		for j := 0; j < k; j++ {
			v, err := t.readInt(fmt.Sprintf("face %d index", i))
			if err != nil {
				return nil, err
			}
			idx = append(idx, v)
		}
		m.Faces = append(m.Faces, Face{Indices: idx})
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// formatFloat writes the shortest text that parses back to exactly v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteMesh writes m in the text format.
func WriteMesh(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(writer, "Vertex Count: %d\n", m.VertexCount())
	_, _ = fmt.Fprintf(writer, "Edge Count: %d\n", m.EdgeCount())
	_, _ = fmt.Fprintf(writer, "Face Count: %d\n", m.FaceCount())

	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "%s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}

	for _, e := range m.Edges {
		_, _ = fmt.Fprintf(writer, "%d %d\n", e.V1, e.V2)
	}

	for _, f := range m.Faces {
		_, _ = fmt.Fprintf(writer, "%d ", len(f.Indices))
		for _, idx := range f.Indices {
			_, _ = fmt.Fprintf(writer, "%d ", idx)
		}
		_, _ = fmt.Fprintln(writer)
	}

	return writer.Flush()
}

func LoadMeshFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := ReadMesh(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing mesh file %s: %w", fileName, err)
	}
	return m, nil
}

func SaveMeshFile(fileName string, m *Mesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create mesh file %s: %w", fileName, err)
	}

	if err := WriteMesh(file, m); err != nil {
		file.Close()
		return fmt.Errorf("error writing mesh file %s: %w", fileName, err)
	}
	return file.Close()
}

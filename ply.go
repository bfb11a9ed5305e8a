package polyhedra

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadPLY reads an ASCII PLY file. Vertex x, y and z must be the first three
// vertex properties; any further vertex or face properties (colours, normals)
// are ignored. PLY carries no edge list, so edges are derived from the faces.
func ReadPLY(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("missing ply magic line: %w", ErrMalformed)
	}

	var vertexCount, faceCount int
	var err error
	headerDone := false

	for !headerDone && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q: %w", strings.Join(parts[1:], " "), ErrMalformed)
			}
		case "element":
			if len(parts) != 3 {
				continue
			}
			switch parts[1] {
			case "vertex":
				vertexCount, err = strconv.Atoi(parts[2])
			case "face":
				faceCount, err = strconv.Atoi(parts[2])
			}
			if err != nil {
				return nil, fmt.Errorf("invalid element count %q: %w", parts[2], ErrMalformed)
			}
		case "end_header":
			headerDone = true
		}
	}
	if !headerDone {
		return nil, fmt.Errorf("PLY header has no end_header: %w", ErrMalformed)
	}
	if vertexCount < 0 || faceCount < 0 {
		return nil, fmt.Errorf("negative PLY element count: %w", ErrMalformed)
	}

	m := &Mesh{}

	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices: %w", ErrMalformed)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid vertex data on vertex %d: %w", i, ErrMalformed)
		}
		var c [3]float64
		for j := range c {
			if c[j], err = strconv.ParseFloat(parts[j], 64); err != nil {
				return nil, fmt.Errorf("invalid coordinate %q on vertex %d: %w", parts[j], i, ErrMalformed)
			}
		}
		m.Vertices = append(m.Vertices, Vertex{X: c[0], Y: c[1], Z: c[2]})
	}

	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces: %w", ErrMalformed)
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty face line %d: %w", i, ErrMalformed)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil || numFaceVerts < 0 || numFaceVerts > len(parts)-1 {
			return nil, fmt.Errorf("invalid face data on face %d: %w", i, ErrMalformed)
		}
		idx := make([]int, numFaceVerts)
		for j := range idx {
			if idx[j], err = strconv.Atoi(parts[j+1]); err != nil {
				return nil, fmt.Errorf("invalid index %q on face %d: %w", parts[j+1], i, ErrMalformed)
			}
		}
		m.Faces = append(m.Faces, Face{Indices: idx})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}

	m.EdgesFromFaces()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// WritePLY writes m as ASCII PLY. Edges are not stored; faces with fewer than
// three vertices are skipped.
func WritePLY(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	faces := make([]Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		if len(f.Indices) >= 3 {
			faces = append(faces, f)
		}
	}

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by polyhedra")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.Vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", len(faces))
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "%s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}

	for _, f := range faces {
		_, _ = fmt.Fprintf(writer, "%d", len(f.Indices))
		for _, idx := range f.Indices {
			_, _ = fmt.Fprintf(writer, " %d", idx)
		}
		_, _ = fmt.Fprintln(writer)
	}

	return writer.Flush()
}

func LoadPLYFile(fileName string) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	m, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return m, nil
}

func SavePLYFile(fileName string, m *Mesh) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	if err := WritePLY(file, m); err != nil {
		file.Close()
		return fmt.Errorf("error writing PLY file %s: %w", fileName, err)
	}
	return file.Close()
}

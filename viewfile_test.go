package polyhedra

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadViewSet(t *testing.T) {
	in := `# sections
f
0 1
2 3

top
4 5
s 6 7
# inline tags do not change the current section
8 9
`
	vs, err := ReadViewSet(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []Point2{{0, 1}, {2, 3}}, vs.Front)
	require.Equal(t, []Point2{{4, 5}, {8, 9}}, vs.Top)
	require.Equal(t, []Point2{{6, 7}}, vs.Side)
}

func TestReadViewSetErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want error
	}{
		{"point before tag", "1 2\n", ErrMalformed},
		{"unknown tag", "q\n1 2\n", ErrUnknownView},
		{"unknown inline tag", "q 1 2\n", ErrUnknownView},
		{"bad number", "f\n1 y\n", ErrMalformed},
		{"too many fields", "f 1 2 3\n", ErrMalformed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadViewSet(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadPoints(t *testing.T) {
	pts, err := ReadPoints(strings.NewReader("# front\n1 2\n\n-3.5 4e-1\n"))
	require.NoError(t, err)
	require.Equal(t, []Point2{{1, 2}, {-3.5, 0.4}}, pts)

	_, err = ReadPoints(strings.NewReader("1 2 3\n"))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestViewSetRoundTrip(t *testing.T) {
	vs := ProjectAll(tetrahedron())
	require.Len(t, vs.Front, 4)
	require.Len(t, vs.Top, 4)
	require.Len(t, vs.Side, 4)

	var buf bytes.Buffer
	require.NoError(t, WriteViewSet(&buf, vs))
	require.True(t, strings.HasPrefix(buf.String(), "# Front View (YZ-plane)\nf\n"))

	got, err := ReadViewSet(&buf)
	require.NoError(t, err)
	require.Equal(t, vs, got)

	fileName := filepath.Join(t.TempDir(), "views.txt")
	require.NoError(t, SaveViewSetFile(fileName, vs))
	loaded, err := LoadViewSetFile(fileName)
	require.NoError(t, err)
	require.Equal(t, vs, loaded)
}

package parser

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/generator"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseStream(t *testing.T) {
	input := "2\n10 20 5\n30 40 0\n1\n50 50 100\n0\n"
	cr := NewCaseReader(strings.NewReader(input))

	first, err := cr.Next()
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, 2, first.Size())
	assert.Equal(t, datastructure.NewCheckpoint(10, 20, 5), first.GetCheckpoints()[0])
	assert.Equal(t, datastructure.NewCheckpoint(30, 40, 0), first.GetCheckpoints()[1])

	second, err := cr.Next()
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Equal(t, 1, second.Size())

	done, err := cr.Next()
	require.NoError(t, err)
	assert.Nil(t, done)
}

func TestCaseStreamErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty stream has no header", input: ""},
		{name: "missing terminator", input: "1\n10 20 5\n"},
		{name: "header is not a count", input: "abc\n"},
		{name: "header has extra fields", input: "1 2\n"},
		{name: "negative count", input: "-3\n"},
		{name: "too few fields", input: "1\n10 20\n0\n"},
		{name: "too many fields", input: "1\n10 20 5 7\n0\n"},
		{name: "non-integer token", input: "1\n10 2.5 5\n0\n"},
		{name: "negative penalty", input: "1\n10 20 -5\n0\n"},
		{name: "stream ends mid-case", input: "3\n10 20 5\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cr := NewCaseReader(strings.NewReader(tt.input))
			for {
				c, err := cr.Next()
				if err != nil {
					return
				}
				if c == nil {
					t.Fatal("malformed stream parsed cleanly")
				}
			}
		})
	}
}

func TestUnterminatedLastLine(t *testing.T) {
	cr := NewCaseReader(strings.NewReader("1\n10 20 5\n0"))

	c, err := cr.Next()
	require.NoError(t, err)
	require.NotNil(t, c)

	done, err := cr.Next()
	require.NoError(t, err)
	assert.Nil(t, done)
}

func TestResultWriterFormat(t *testing.T) {
	var buf bytes.Buffer
	rw := NewResultWriter(&buf)

	require.NoError(t, rw.WriteCost(70.71067811))
	require.NoError(t, rw.WriteCost(5))
	require.NoError(t, rw.Flush())

	assert.Equal(t, "70.711\n5.000\n", buf.String())
}

func TestOpenInputBzip2(t *testing.T) {
	grid := geo.NewGrid(100, 2.0, 1)
	gen := generator.New(7, grid, 100, true)
	cases, err := gen.Cases(5, 20)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cases.txt.bz2")
	f, err := os.Create(path)
	require.NoError(t, err)
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	require.NoError(t, generator.WriteCases(bz, cases))
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	r, err := OpenInput(path)
	require.NoError(t, err)
	defer r.Close()

	cr := NewCaseReader(r)
	for i := 0; ; i++ {
		c, err := cr.Next()
		require.NoError(t, err)
		if c == nil {
			require.Equal(t, len(cases), i)
			break
		}
		assert.Equal(t, cases[i], c.GetCheckpoints())
	}
}

func TestOpenInputPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n10 20 5\n0\n"), 0o644))

	r, err := OpenInput(path)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "1\n10 20 5\n0\n", string(data))
}

func TestGeneratorRoundTrip(t *testing.T) {
	grid := geo.NewGrid(100, 2.0, 1)
	gen := generator.New(42, grid, 100, true)
	cases, err := gen.Cases(20, 50)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, generator.WriteCases(&buf, cases))

	cr := NewCaseReader(&buf)
	for i := 0; ; i++ {
		c, err := cr.Next()
		require.NoError(t, err)
		if c == nil {
			require.Equal(t, len(cases), i)
			break
		}
		require.Less(t, i, len(cases))
		assert.Equal(t, cases[i], c.GetCheckpoints())
	}
}

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/util"
)

// Case is one parsed test case: the interior checkpoints in travel
// order. The synthetic endpoints are not part of the input.
type Case struct {
	checkpoints []datastructure.Checkpoint
}

func (c *Case) GetCheckpoints() []datastructure.Checkpoint {
	return c.checkpoints
}

func (c *Case) Size() int {
	return len(c.checkpoints)
}

// CaseReader parses the line-oriented case stream: a count n, then n
// lines of "x y penalty", repeated, terminated by a record with n = 0.
// Any malformed line aborts the whole stream.
type CaseReader struct {
	br   *bufio.Reader
	line int
}

func NewCaseReader(r io.Reader) *CaseReader {
	return &CaseReader{br: bufio.NewReader(r)}
}

func (cr *CaseReader) readLine() (string, error) {
	line, err := util.ReadLine(cr.br)
	if err != nil {
		return "", err
	}
	cr.line++
	return line, nil
}

// Next returns the next case, or (nil, nil) once the 0 terminator is
// read. Missing terminator, wrong field counts and non-integer tokens
// are all fatal parse errors.
func (cr *CaseReader) Next() (*Case, error) {
	header, err := cr.readLine()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: missing case header", cr.line+1)
	}

	hf := util.Fields(header)
	if len(hf) != 1 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: case header must be a single count", cr.line)
	}
	n, err := util.StringToInt(hf[0])
	if err != nil || n < 0 {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "line %d: invalid case count %q", cr.line, hf[0])
	}
	if n == 0 {
		return nil, nil
	}

	checkpoints := make([]datastructure.Checkpoint, 0, n)
	for i := 0; i < n; i++ {
		line, err := cr.readLine()
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput,
				"line %d: case declared %d checkpoints, stream ended after %d", cr.line+1, n, i)
		}
		f := util.Fields(line)
		if len(f) != 3 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"line %d: want 3 fields \"x y penalty\", got %d", cr.line, len(f))
		}
		x, errX := util.StringToInt(f[0])
		y, errY := util.StringToInt(f[1])
		penalty, errP := util.StringToInt(f[2])
		if errX != nil || errY != nil || errP != nil {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: non-integer token", cr.line)
		}
		if penalty < 0 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: negative penalty %d", cr.line, penalty)
		}
		checkpoints = append(checkpoints, datastructure.NewCheckpoint(x, y, penalty))
	}
	return &Case{checkpoints: checkpoints}, nil
}

// ResultWriter emits one cost per case, 3 decimal digits, input order.
type ResultWriter struct {
	w *bufio.Writer
}

func NewResultWriter(w io.Writer) *ResultWriter {
	return &ResultWriter{w: bufio.NewWriter(w)}
}

func (rw *ResultWriter) WriteCost(cost float64) error {
	_, err := fmt.Fprintf(rw.w, "%.3f\n", cost)
	return err
}

func (rw *ResultWriter) Flush() error {
	return rw.w.Flush()
}

type bzReadCloser struct {
	bz *bzip2.Reader
	f  *os.File
}

func (rc *bzReadCloser) Read(p []byte) (int, error) {
	return rc.bz.Read(p)
}

func (rc *bzReadCloser) Close() error {
	if err := rc.bz.Close(); err != nil {
		rc.f.Close()
		return err
	}
	return rc.f.Close()
}

// OpenInput opens a case file, decompressing transparently when the
// name ends in .bz2.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) != ".bz2" {
		return f, nil
	}
	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &bzReadCloser{bz: bz, f: f}, nil
}

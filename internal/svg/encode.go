package svg

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
)

// errWriter remembers the first write failure, as svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Encode streams an SVG 1.1 document of the given dimensions to w, with each
// rect emitted inside a single group. It returns the number of rects written.
func Encode(w io.Writer, width, height int, rects iter.Seq[Rect]) (int, error) {
	buf := bufio.NewWriter(w)
	ew := &errWriter{w: buf}
	canvas := svgo.New(ew)

	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height),
		`version="1.1"`,
	)
	canvas.Group()

	count := 0
	for r := range rects {
		canvas.Rect(r.X, r.Y, 1, 1,
			fmt.Sprintf(`fill="%s"`, r.Fill),
			fmt.Sprintf(`opacity="%s"`, formatOpacity(r.Opacity)),
		)
		if ew.err != nil {
			return count, fmt.Errorf("failed to write svg: %w", ew.err)
		}
		count++
	}

	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return count, fmt.Errorf("failed to write svg: %w", ew.err)
	}
	if err := buf.Flush(); err != nil {
		return count, fmt.Errorf("failed to write svg: %w", err)
	}
	return count, nil
}

// formatOpacity writes the shortest exact decimal, keeping a ".0" on whole
// values so fully opaque pixels read "1.0".
func formatOpacity(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

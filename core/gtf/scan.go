// core/gtf/scan.go
package gtf

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ScanCtx parses GTF rows from r and hands each to emit. Blank lines and
// "#" comment lines are skipped. It is cancelable, returning promptly when
// ctx is Done, even mid-file.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Interval) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	ln := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		iv, err := ParseLine(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", ln)
		}
		if err := emit(iv); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "gtf scan")
}

// ScanFileCtx is ScanCtx over an Open()ed path.
func ScanFileCtx(ctx context.Context, path string, emit func(Interval) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return errors.Wrap(ScanCtx(ctx, rc, emit), path)
}

// ReadFile loads a whole annotation into memory.
func ReadFile(path string) ([]Interval, error) {
	var out []Interval
	err := ScanFileCtx(context.Background(), path, func(iv Interval) error {
		out = append(out, iv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// core/gtf/write.go
package gtf

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Write renders intervals as GTF rows, one per line.
func Write(w io.Writer, ivs []Interval) error {
	bw := bufio.NewWriter(w)
	for _, iv := range ivs {
		if _, err := bw.WriteString(iv.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes intervals to path via Create (gzip on .gz suffix).
func WriteFile(path string, ivs []Interval) error {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	if err := Write(wc, ivs); err != nil {
		_ = wc.Close()
		return errors.Wrap(err, path)
	}
	return errors.Wrap(wc.Close(), path)
}

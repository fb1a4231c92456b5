// core/genome/sizes.go
package genome

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gtfseg-core/gtf"
)

// Size is one chromosome and its length in bases.
type Size struct {
	Chrom  string
	Length int
}

// Sizes lists chromosomes in file order.
type Sizes []Size

// Chroms returns the chromosome names in order.
func (s Sizes) Chroms() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Chrom
	}
	return out
}

// Length returns the length for chrom, or 0 when unknown.
func (s Sizes) Length(chrom string) int {
	for _, c := range s {
		if c.Chrom == chrom {
			return c.Length
		}
	}
	return 0
}

// LoadSizes reads a chromosome-sizes table ("name<TAB>length" per line,
// the format samtools faidx and UCSC chrom.sizes produce). Blank lines and
// "#" comments are skipped.
func LoadSizes(path string) (Sizes, error) {
	rc, err := gtf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var list Sizes
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(rc)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, errors.Errorf("%s:%d bad field count", path, ln)
		}
		length, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d bad length", path, ln)
		}
		if length <= 0 {
			return nil, errors.Errorf("%s:%d non-positive length for %q", path, ln, f[0])
		}
		if _, dup := seen[f[0]]; dup {
			return nil, errors.Errorf("%s:%d duplicate chromosome %q", path, ln, f[0])
		}
		seen[f[0]] = struct{}{}
		list = append(list, Size{Chrom: f[0], Length: length})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	if len(list) == 0 {
		return nil, errors.Errorf("%s: no chromosomes", path)
	}
	return list, nil
}

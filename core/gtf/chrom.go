// core/gtf/chrom.go
package gtf

import "strconv"

// ChromLess orders chromosome names naturally: numeric names ascend by
// value ("2" < "10"), numeric names sort before non-numeric ones, and
// non-numeric names (X, Y, MT, scaffolds) fall back to string order.
func ChromLess(a, b string) bool {
	na, aok := strconv.Atoi(a)
	nb, bok := strconv.Atoi(b)
	switch {
	case aok == nil && bok == nil:
		return na < nb
	case aok == nil:
		return true
	case bok == nil:
		return false
	default:
		return a < b
	}
}

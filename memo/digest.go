package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints a dependency list for logs and events. It hashes a
// printed form of each dependency, so it is a correlation id rather than an
// equality oracle: distinct lists may collide, and lists a comparator would
// accept as unchanged may print differently.
func Digest(deps Deps) uint64 {
	h := xxhash.New()
	for i, dep := range deps {
		fmt.Fprintf(h, "%d:%T=%v;", i, dep, dep)
	}
	return h.Sum64()
}

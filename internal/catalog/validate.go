package catalog

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MaxNameLen is the longest room name that fits a warp's name slot with its
// NUL terminator.
const MaxNameLen = 7

// Validate checks semantic constraints of a catalog.
func Validate(c *Catalog) error {
	var errs []string

	if c.Len() == 0 {
		errs = append(errs, "catalog has no rooms")
	}

	for _, name := range c.Names() {
		r := c.rooms[name]

		if name == "" || len(name) > MaxNameLen {
			errs = append(errs, fmt.Sprintf("room name %q must be 1..%d characters", name, MaxNameLen))
		}
		if strings.IndexByte(name, 0) >= 0 {
			errs = append(errs, fmt.Sprintf("room name %q contains NUL", name))
		}
		// every warp may land here
		if !IsExcluded(name) && len(r.Entrances) == 0 {
			errs = append(errs, fmt.Sprintf("%s: destination room needs at least one entrance", name))
		}

		// the same slot listed twice would be dealt into twice
		seen := mapset.New[uint32]()
		for _, it := range r.Items {
			if seen.Has(it) {
				errs = append(errs, fmt.Sprintf("%s: item slot %#x listed twice", name, it))
			}
			seen.Put(it)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

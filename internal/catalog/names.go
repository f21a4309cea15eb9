package catalog

import "github.com/zyedidia/generic/mapset"

// Excluded rooms are never picked as warp destinations: ending and cutscene
// rooms, test maps and rooms that soft lock on arrival.
var Excluded = []string{
	"end_00", "end_01", "gv_01", "mgm_03",
	"tst_11", "tst_12", "tst_13", "tst_20",
	"hos_04", "hos_05", "hos_10", "mac_05",
}

var excludedSet = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, n := range Excluded {
		s.Put(n)
	}
	return s
}()

// IsExcluded reports whether name may never be a warp destination.
func IsExcluded(name string) bool {
	return excludedSet.Has(name)
}

// DestinationNames returns the catalog's room names minus Excluded, sorted.
// The order is part of the seed format.
func (c *Catalog) DestinationNames() []string {
	var out []string
	for _, n := range c.Names() {
		if !IsExcluded(n) {
			out = append(out, n)
		}
	}
	return out
}

package catalog

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"which-portal/core/types"
)

// pointTolerance is the side length of the degenerate box stored per portal
const pointTolerance = 1e-9

// entry wraps a portal for R-tree storage
type entry struct {
	order  int
	portal types.Portal
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Neighbor is a portal together with its distance to a query point
type Neighbor struct {
	Portal   types.Portal `json:"portal"`
	Distance float64      `json:"distance"`
}

// Index answers nearest-portal queries over a catalog
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds a spatial index over the catalog's destinations
func NewIndex(c *Catalog) *Index {
	tree := rtreego.NewTree(2, 2, 8)
	idx := &Index{tree: tree}

	c.Range(func(i int, p types.Portal) bool {
		bbox, err := rtreego.NewRect(
			rtreego.Point{p.Destination.X, p.Destination.Y},
			[]float64{pointTolerance, pointTolerance},
		)
		if err != nil {
			return true
		}
		tree.Insert(&entry{order: i, portal: p, bbox: bbox})
		idx.size++
		return true
	})

	return idx
}

// Len returns the number of indexed portals
func (idx *Index) Len() int {
	return idx.size
}

// Nearest returns up to k portals closest to p, nearest first.
// Equal distances keep catalog order. k <= 0 means all portals.
func (idx *Index) Nearest(p types.Point, k int) []Neighbor {
	if idx.size == 0 || !p.IsFinite() {
		return nil
	}
	if k <= 0 || k > idx.size {
		k = idx.size
	}

	query := rtreego.Point{p.X, p.Y}
	radius := 0.0
	for _, s := range idx.tree.NearestNeighbors(k, query) {
		if e, ok := s.(*entry); ok {
			radius = math.Max(radius, p.DistanceTo(e.portal.Destination))
		}
	}

	// Portals tied with the k-th neighbor may not be among the tree's
	// picks, so collect everything inside the search radius.
	reach := radius + pointTolerance
	box, err := rtreego.NewRect(
		rtreego.Point{p.X - reach, p.Y - reach},
		[]float64{2 * reach, 2 * reach},
	)
	if err != nil {
		return nil
	}

	var entries []*entry
	for _, s := range idx.tree.SearchIntersect(box) {
		e, ok := s.(*entry)
		if !ok || p.DistanceTo(e.portal.Destination) > radius {
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di := p.DistanceTo(entries[i].portal.Destination)
		dj := p.DistanceTo(entries[j].portal.Destination)
		if di != dj {
			return di < dj
		}
		return entries[i].order < entries[j].order
	})

	if len(entries) > k {
		entries = entries[:k]
	}

	out := make([]Neighbor, len(entries))
	for i, e := range entries {
		out[i] = Neighbor{Portal: e.portal, Distance: p.DistanceTo(e.portal.Destination)}
	}
	return out
}

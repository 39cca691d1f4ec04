package mosaic

// Shares maps child tiles to their share of a linear container's axis.
// Shares are relative: [1, 2, 3] gives the children 1/6, 2/6 and 3/6 of the
// space. Missing entries count as 1, so newly added children take an equal
// slice without bookkeeping. A nil Shares behaves like an empty one.
type Shares map[TileID]float64

// Of returns the share for the given child, defaulting to 1.
func (s Shares) Of(id TileID) float64 {
	if share, ok := s[id]; ok {
		return share
	}
	return 1
}

// Set assigns a share to the given child, allocating the map if needed.
func (s *Shares) Set(id TileID, share float64) {
	if *s == nil {
		*s = Shares{}
	}
	(*s)[id] = share
}

// Remove drops the entry for the given child, if any.
func (s Shares) Remove(id TileID) {
	delete(s, id)
}

// ReplaceWith transfers the share of old to new. Used when the simplifier
// swaps a collapsed container for its sole child, so the child keeps the
// slot its former parent occupied.
func (s Shares) ReplaceWith(old, new TileID) {
	if share, ok := s[old]; ok {
		delete(s, old)
		s[new] = share
	}
}

// Retain removes every entry whose child fails the keep predicate.
func (s Shares) Retain(keep func(TileID) bool) {
	for id := range s {
		if !keep(id) {
			delete(s, id)
		}
	}
}

// Sum returns the total of all stored shares.
func (s Shares) Sum() float64 {
	var sum float64
	for _, share := range s {
		sum += share
	}
	return sum
}

// clone returns a copy of the share map (nil stays nil).
func (s Shares) clone() Shares {
	if s == nil {
		return nil
	}
	out := make(Shares, len(s))
	for id, share := range s {
		out[id] = share
	}
	return out
}

// --- Proportional splitting ---

// splitShares divides total among len(weights) children proportionally to
// their weights, then enforces min per child: any shortfall is taken back
// from the children still above min, proportionally to their weights. When
// total cannot give every child min, all children get an equal slice
// regardless of weights. The returned extents always sum to exactly total.
func splitShares(total float64, weights []float64, min float64) []float64 {
	n := len(weights)
	if n == 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	out := make([]float64, n)

	// Not enough room for every child's minimum: equal slices.
	if total < min*float64(n) {
		each := total / float64(n)
		for i := range out {
			out[i] = each
		}
		out[n-1] = total - each*float64(n-1)
		return out
	}

	// Children pinned at min no longer participate in proportional splitting.
	pinned := make([]bool, n)
	for {
		var weightSum float64
		remaining := total
		for i, w := range weights {
			if pinned[i] {
				remaining -= min
			} else {
				weightSum += w
			}
		}
		if weightSum <= 0 {
			// All remaining weights are zero; split what's left equally.
			free := 0
			for i := range pinned {
				if !pinned[i] {
					free++
				}
			}
			for i := range out {
				if pinned[i] {
					out[i] = min
				} else {
					out[i] = remaining / float64(free)
				}
			}
			break
		}

		shortfall := false
		for i, w := range weights {
			if pinned[i] {
				out[i] = min
				continue
			}
			out[i] = remaining * w / weightSum
			if out[i] < min {
				pinned[i] = true
				shortfall = true
			}
		}
		if !shortfall {
			break
		}
	}

	// Give any floating point dust to the last child so the extents sum to
	// total exactly.
	var sum float64
	for _, e := range out[:n-1] {
		sum += e
	}
	out[n-1] = total - sum
	return out
}

// shrinkShares takes up to target pixels of extent away from children,
// front to back, never shrinking a child below minSize. extent reports each
// child's current on-screen extent along the axis. Returns the total share
// amount actually taken, which the caller grows a neighbor by.
func shrinkShares(shares *Shares, children []TileID, target, minSize float64, extent func(TileID) float64) float64 {
	if len(children) == 0 || target <= 0 {
		return 0
	}

	var totalShares, totalPixels float64
	for _, child := range children {
		totalShares += shares.Of(child)
		totalPixels += extent(child)
	}
	if totalPixels <= 0 {
		return 0
	}

	sharesPerPixel := totalShares / totalPixels
	minInShares := sharesPerPixel * minSize
	targetInShares := sharesPerPixel * target

	var taken float64
	for _, child := range children {
		share := shares.Of(child)
		spare := share - minInShares
		if spare < 0 {
			spare = 0
		}
		needed := targetInShares - taken
		if needed < 0 {
			needed = 0
		}
		shrinkBy := spare
		if needed < shrinkBy {
			shrinkBy = needed
		}
		shares.Set(child, share-shrinkBy)
		taken += shrinkBy
	}
	return taken
}

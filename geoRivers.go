package genworldgrid

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/Flokey82/genworldgrid/noise"
	"github.com/Flokey82/go_gens/utils"
)

const (
	// Candidate river sources are highland tiles in this elevation band.
	riverSourceMinElev = 0.6
	riverSourceMaxElev = 0.95

	// riverStepTolerance is the maximum elevation gain allowed per step.
	// Flow is monotonically downhill within this tolerance.
	riverStepTolerance = 0.001

	// riverJitterScale perturbs the priority ordering only, never the
	// stored elevations. It is ten times smaller than the step tolerance
	// so it can break ties on flat plateaus without ever permitting an
	// uphill step.
	riverJitterScale = 0.0001

	// riverMinLength is the minimum viable river length in tiles.
	riverMinLength = 5
)

// RiverPoint is a single tile of a river path.
type RiverPoint struct {
	X, Y      int
	Elevation float64
}

// River is a carved watercourse flowing downhill from a highland source to
// an ocean outlet, or stalling in a closed basin as a lake. Rivers are
// metadata overlays: they reference tiles but do not modify the elevation
// field.
type River struct {
	ID     int
	Source RiverPoint // First tile of the path (in the highlands)
	// Terminus is the last tile of the path: either below the ocean
	// threshold (outlet) or the point where flow stalled (lake).
	Terminus RiverPoint
	Path     []RiverPoint
	IsLake   bool // true if the terminus is still above the ocean threshold
}

// riverNode is one node of the downhill search. Nodes live in a flat arena
// and reference their parent by index; paths are reconstructed by walking
// the index chain.
type riverNode struct {
	x, y   int
	parent int // arena index of the parent node, -1 at the source
	depth  int // number of path tiles from the source (source = 1)
}

// generateRivers carves the river network.
//
// Candidate sources are shuffled deterministically by the world seed and
// processed in order until the target river count is reached or the
// sources are exhausted. The sequential processing order is part of the
// determinism contract: earlier rivers claim tiles that later rivers may
// not reuse.
func (m *Geo) generateRivers() {
	if m.NumRivers <= 0 {
		return
	}

	var sources []int
	for idx, elev := range m.Elevation {
		if elev >= riverSourceMinElev && elev < riverSourceMaxElev {
			sources = append(sources, idx)
		}
	}
	rng := rand.New(rand.NewSource(m.Seed + seedOffsetRiverOrder))
	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})

	pathCap := 2 * utils.Min(m.Width, m.Height)
	budget := utils.Min(4*pathCap, m.Width*m.Height/4)

	for _, src := range sources {
		if len(m.Rivers) >= m.NumRivers {
			break
		}
		// Skip sources already claimed by an earlier river.
		if m.RiverID[src] >= 0 {
			continue
		}
		path, ok := m.traceRiver(src, pathCap, budget)
		if !ok || len(path) < riverMinLength {
			continue
		}

		id := len(m.Rivers)
		for _, p := range path {
			m.RiverID[m.tileIndex(p.X, p.Y)] = id
		}
		terminus := path[len(path)-1]
		m.Rivers = append(m.Rivers, &River{
			ID:       id,
			Source:   path[0],
			Terminus: terminus,
			Path:     path,
			IsLake:   terminus.Elevation >= oceanThreshold,
		})
	}
}

// traceRiver runs a priority-first search (min-heap keyed by elevation,
// restricted to non-increasing steps) from the given source tile.
//
// The search stops and accepts the path when the current tile drops below
// the ocean threshold (ocean outlet) or the path length reaches the cap
// (closed-basin overflow). If the frontier empties first, the flow stalled
// in a basin smaller than the cap and the path to the lowest reached tile
// is accepted. If the exploration budget is exceeded, the source is
// abandoned without a river; that is soft degradation, not an error.
func (m *Geo) traceRiver(src, pathCap, budget int) ([]RiverPoint, bool) {
	srcX, srcY := m.tileCoords(src)
	nodes := []riverNode{{x: srcX, y: srcY, parent: -1, depth: 1}}
	visited := map[int]bool{src: true}

	pq := &ascPriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &queueEntry{
		score: m.Elevation[src] + m.riverJitter(srcX, srcY),
		node:  0,
	})

	var explored int
	lowest := -1 // arena index of the lowest tile popped so far
	lowestElev := 2.0
	for pq.Len() > 0 {
		ni := heap.Pop(pq).(*queueEntry).node
		n := nodes[ni]
		elev := m.Elevation[m.tileIndex(n.x, n.y)]
		if elev < lowestElev {
			lowest, lowestElev = ni, elev
		}

		// Ocean outlet.
		if elev < oceanThreshold {
			return m.buildRiverPath(nodes, ni), true
		}
		// Closed-basin overflow: treat as a lake.
		if n.depth >= pathCap {
			return m.buildRiverPath(nodes, ni), true
		}

		explored++
		if explored > budget {
			return nil, false // Abandon rather than loop indefinitely.
		}

		for _, d := range dirs4 {
			nx, ny := n.x+d[0], n.y+d[1]
			if !m.inBounds(nx, ny) {
				continue
			}
			nidx := m.tileIndex(nx, ny)
			if visited[nidx] || m.RiverID[nidx] >= 0 {
				continue
			}
			nelev := m.Elevation[nidx]
			if nelev > elev+riverStepTolerance {
				continue // Uphill, never eligible.
			}
			visited[nidx] = true
			nodes = append(nodes, riverNode{x: nx, y: ny, parent: ni, depth: n.depth + 1})
			heap.Push(pq, &queueEntry{
				score: nelev + m.riverJitter(nx, ny),
				node:  len(nodes) - 1,
			})
		}
	}

	// Frontier exhausted: the flow stalled in a closed basin.
	if lowest >= 0 {
		return m.buildRiverPath(nodes, lowest), true
	}
	return nil, false
}

// riverJitter returns the deterministic priority perturbation for a tile.
func (m *Geo) riverJitter(x, y int) float64 {
	return noise.Uniform(m.Seed+seedOffsetRiverJitter, int32(x), int32(y)) * riverJitterScale
}

// buildRiverPath reconstructs the path from the source to the given arena
// node by walking the parent index chain.
func (m *Geo) buildRiverPath(nodes []riverNode, last int) []RiverPoint {
	var count int
	for i := last; i >= 0; i = nodes[i].parent {
		count++
	}
	path := make([]RiverPoint, count)
	for i := last; i >= 0; i = nodes[i].parent {
		count--
		path[count] = RiverPoint{
			X:         nodes[i].x,
			Y:         nodes[i].y,
			Elevation: m.Elevation[m.tileIndex(nodes[i].x, nodes[i].y)],
		}
	}

	// An uphill step beyond the tolerance cannot be produced by the
	// eligibility check above; seeing one means the search is broken.
	for i := 1; i < len(path); i++ {
		if path[i].Elevation > path[i-1].Elevation+riverStepTolerance {
			panic(fmt.Sprintf("river path flows uphill at (%d,%d): %f -> %f",
				path[i].X, path[i].Y, path[i-1].Elevation, path[i].Elevation))
		}
	}
	return path
}

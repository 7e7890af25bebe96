package maze

import (
	"github.com/ironsheep/maze-wizard/internal/geometry"
)

// findPath searches the corridor graph depth-first from corridor from to
// corridor to and returns the chain of corridors between them, inclusive.
//
// Neighbours are visited in insertion order, which makes the result
// deterministic for a given grid. The frames on the explicit stack are
// exactly the chain from the start to the corridor being expanded.
func (s *corridorSet) findPath(from, to geometry.Box) ([]geometry.Box, error) {
	start, ok := s.index[from]
	if !ok {
		return nil, errNoEndpointCorridor
	}
	goal, ok := s.index[to]
	if !ok {
		return nil, errNoEndpointCorridor
	}

	if start == goal {
		return []geometry.Box{s.boxes[start]}, nil
	}

	type frame struct {
		node int
		next int // position in neighbors(node) to try next
	}

	visited := make([]bool, s.len())
	visited[start] = true
	stack := []frame{{node: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbs := s.neighbors(top.node)
		if top.next >= len(nbs) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := nbs[top.next]
		top.next++
		if visited[n] {
			continue
		}

		if n == goal {
			chain := make([]geometry.Box, 0, len(stack)+1)
			for _, f := range stack {
				chain = append(chain, s.boxes[f.node])
			}
			return append(chain, s.boxes[goal]), nil
		}

		visited[n] = true
		stack = append(stack, frame{node: n})
	}

	return nil, errSearchExhausted
}

package modules

// Resolve produces the total load order for a graph: for every edge
// (a must follow b), b precedes a. Candidates are visited in discovery order,
// so repeated runs over the same input produce the identical order. If
// primary is a declared name it is visited first, placing it at the front
// unless edges force something earlier — edges always win over primacy.
//
// Runs in O(V+E).
func Resolve(graph *Graph, primary string) ([]string, error) {
	// Validate every edge target up front so dangling references never
	// surface as half-sorted output.
	for _, name := range graph.Names() {
		for _, target := range graph.EdgesFrom(name) {
			if _, ok := graph.Declaration(target); !ok {
				return nil, NewDanglingDependencyError(name, target)
			}
		}
	}

	candidates := graph.Names()
	if primary != "" {
		if _, ok := graph.Declaration(primary); ok {
			reordered := make([]string, 0, len(candidates))
			reordered = append(reordered, primary)
			for _, name := range candidates {
				if name != primary {
					reordered = append(reordered, name)
				}
			}
			candidates = reordered
		}
	}

	var (
		order   = make([]string, 0, len(candidates))
		visited = make(map[string]bool, len(candidates))
		onPath  = make(map[string]bool, len(candidates))
		path    []string
	)

	var visit func(name string) error
	visit = func(name string) error {
		if onPath[name] {
			return NewCycleError(cycleFrom(path, name))
		}
		if visited[name] {
			return nil
		}

		visited[name] = true
		onPath[name] = true
		path = append(path, name)

		for _, target := range graph.EdgesFrom(name) {
			if err := visit(target); err != nil {
				return err
			}
		}

		onPath[name] = false
		path = path[:len(path)-1]

		order = append(order, name)
		return nil
	}

	for _, name := range candidates {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// cycleFrom extracts the full cycle from the current recursion path: every
// name from the first occurrence of start onward, closed with start again.
func cycleFrom(path []string, start string) []string {
	for i, name := range path {
		if name == start {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			cycle = append(cycle, start)
			return cycle
		}
	}
	return []string{start, start}
}

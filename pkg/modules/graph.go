package modules

// Graph is the adjacency structure between logical module names: for each
// name, the set of names it must be ordered after. Built once per resolution
// run and discarded after the order is produced.
type Graph struct {
	// names in discovery order; the resolver's tie-break order.
	names []string

	declarations map[string]Declaration
	edges        map[string][]string
}

// Names returns the logical names in discovery order.
func (g *Graph) Names() []string {
	return g.names
}

// Declaration returns the declaration backing a logical name.
func (g *Graph) Declaration(name string) (Declaration, bool) {
	decl, ok := g.declarations[name]
	return decl, ok
}

// EdgesFrom returns the names the given module must follow.
func (g *Graph) EdgesFrom(name string) []string {
	return g.edges[name]
}

// BuildGraph builds the dependency graph from declarations in discovery
// order. The same logical name declared by two packages is rejected here;
// whether edge targets exist is the resolver's concern, so that all
// invalid-graph errors come from one place.
func BuildGraph(declarations []Declaration, deps DependencySource) (*Graph, error) {
	graph := &Graph{
		names:        make([]string, 0, len(declarations)),
		declarations: make(map[string]Declaration, len(declarations)),
		edges:        make(map[string][]string, len(declarations)),
	}

	for _, decl := range declarations {
		if earlier, exists := graph.declarations[decl.Name]; exists {
			return nil, NewDuplicateModuleError(decl.Name, earlier.Package, decl.Package)
		}

		graph.names = append(graph.names, decl.Name)
		graph.declarations[decl.Name] = decl
		graph.edges[decl.Name] = deps.DependenciesOf(decl.Implementation)
	}

	return graph, nil
}

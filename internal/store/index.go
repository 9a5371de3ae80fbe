package store

// indexes holds the secondary mappings spec §4.1 requires: each maps a key
// to the set of entity identifiers bearing that key. Order within a bucket
// is not observable outside the store, except for bySrc/byDst/byTarget/
// byPatternNode which preserve insertion order because EdgesOf/
// AnnotationsOf/PatternsOf contract to do so.
type indexes struct {
	byNodeKind map[NodeKind][]string
	byFile     map[string][]string
	byParent   map[string][]string
	byLanguage map[string][]string

	bySrc      map[string][]string
	byDst      map[string][]string
	byEdgeKind map[EdgeKind][]string

	byTarget      map[string][]string
	byPatternNode map[string][]string
}

func newIndexes() indexes {
	return indexes{
		byNodeKind:    make(map[NodeKind][]string),
		byFile:        make(map[string][]string),
		byParent:      make(map[string][]string),
		byLanguage:    make(map[string][]string),
		bySrc:         make(map[string][]string),
		byDst:         make(map[string][]string),
		byEdgeKind:    make(map[EdgeKind][]string),
		byTarget:      make(map[string][]string),
		byPatternNode: make(map[string][]string),
	}
}

func (ix *indexes) addNode(n Node) {
	ix.byNodeKind[n.Kind] = append(ix.byNodeKind[n.Kind], n.ID)
	if n.File != "" {
		ix.byFile[n.File] = append(ix.byFile[n.File], n.ID)
	}
	if n.Parent != "" {
		ix.byParent[n.Parent] = append(ix.byParent[n.Parent], n.ID)
	}
	if n.Language != "" {
		ix.byLanguage[n.Language] = append(ix.byLanguage[n.Language], n.ID)
	}
}

func (ix *indexes) addEdge(e Edge) {
	ix.bySrc[e.Src] = append(ix.bySrc[e.Src], e.ID)
	ix.byDst[e.Dst] = append(ix.byDst[e.Dst], e.ID)
	ix.byEdgeKind[e.Kind] = append(ix.byEdgeKind[e.Kind], e.ID)
}

func (ix *indexes) addAnnotation(a Annotation) {
	ix.byTarget[a.Target] = append(ix.byTarget[a.Target], a.ID)
}

func (ix *indexes) addPattern(p PatternInstance) {
	seen := make(map[string]bool)
	for _, ids := range p.Roles {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			ix.byPatternNode[id] = append(ix.byPatternNode[id], p.ID)
		}
	}
}

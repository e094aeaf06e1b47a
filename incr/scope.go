package incr

// Scope is the dynamic context a node is created in. It enforces that
// rhs-created nodes of a Bind do not outlive it and carries a height
// lower bound.
type Scope interface {
	// AddNode links node into this scope's singly-linked node list.
	AddNode(node Packed)
	// Height is this scope's height lower bound; every node created here
	// must have a higher height than this.
	Height() int
	// IsTop reports whether this is the always-present root scope.
	IsTop() bool
}

// TopScope is the root scope every State starts with. Its height is -1 so
// that a node created directly under it with no children gets height 0.
type TopScope struct {
	head Packed
}

// NewTopScope constructs the root scope.
func NewTopScope() *TopScope { return &TopScope{} }

func (s *TopScope) AddNode(node Packed) {
	node.setNextNodeInSameScope(s.head)
	s.head = node
}
func (s *TopScope) Height() int { return -1 }
func (s *TopScope) IsTop() bool { return true }

// BindScope is the scope active while evaluating a Bind right-hand
// side; If and Join never create one. It owns the list of nodes created on that rhs and can
// invalidate all of them in one pass when the rhs is torn down.
type BindScope struct {
	height      int
	head        Packed
	createdIDs  map[int64]Packed
}

// NewBindScope creates a scope for one rhs evaluation, rooted at the height
// of the change-sentinel node that watches the lhs driving this rebind.
func NewBindScope(lhsChangeHeight int) *BindScope {
	return &BindScope{height: lhsChangeHeight, createdIDs: make(map[int64]Packed)}
}

func (s *BindScope) AddNode(node Packed) {
	node.setNextNodeInSameScope(s.head)
	s.head = node
	s.createdIDs[ID(node)] = node
}
func (s *BindScope) Height() int { return s.height }
func (s *BindScope) IsTop() bool { return false }

// IterNodesCreatedOnRhs visits every node created in this scope, in no
// particular order, for diagnostics.
func (s *BindScope) IterNodesCreatedOnRhs(visit func(Packed)) {
	for _, n := range s.createdIDs {
		visit(n)
	}
}


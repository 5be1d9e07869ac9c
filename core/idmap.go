package core

// NodeMap is a dense slice keyed by NodeID. It is preallocated to the
// graph's node count, so element access never bounds-grows.
type NodeMap[T any] []T

// NewNodeMap returns a NodeMap sized for n nodes, zero-initialized.
func NewNodeMap[T any](n int) NodeMap[T] { return make(NodeMap[T], n) }

// Get returns the element stored for id.
func (m NodeMap[T]) Get(id NodeID) T { return m[id] }

// Set stores v for id.
func (m NodeMap[T]) Set(id NodeID, v T) { m[id] = v }

// At returns a pointer to the element stored for id, for in-place update.
func (m NodeMap[T]) At(id NodeID) *T { return &m[id] }

// Len returns the number of keyed elements.
func (m NodeMap[T]) Len() int { return len(m) }

// EdgeMap is a dense slice keyed by EdgeID.
type EdgeMap[T any] []T

// NewEdgeMap returns an EdgeMap sized for n edges, zero-initialized.
func NewEdgeMap[T any](n int) EdgeMap[T] { return make(EdgeMap[T], n) }

// Get returns the element stored for id.
func (m EdgeMap[T]) Get(id EdgeID) T { return m[id] }

// Set stores v for id.
func (m EdgeMap[T]) Set(id EdgeID, v T) { m[id] = v }

// At returns a pointer to the element stored for id, for in-place update.
func (m EdgeMap[T]) At(id EdgeID) *T { return &m[id] }

// Len returns the number of keyed elements.
func (m EdgeMap[T]) Len() int { return len(m) }

// LevelMap is a dense slice keyed by LevelID.
type LevelMap[T any] []T

// NewLevelMap returns a LevelMap sized for n levels, zero-initialized.
func NewLevelMap[T any](n int) LevelMap[T] { return make(LevelMap[T], n) }

// Get returns the element stored for id.
func (m LevelMap[T]) Get(id LevelID) T { return m[id] }

// Set stores v for id.
func (m LevelMap[T]) Set(id LevelID, v T) { m[id] = v }

// Len returns the number of keyed elements.
func (m LevelMap[T]) Len() int { return len(m) }

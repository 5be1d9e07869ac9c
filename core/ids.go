package core

import (
	"errors"
	"fmt"
)

// MaxDomains is the largest number of clock domains a single constraint
// set may define; DomainID must fit in a byte with one value reserved
// as the invalid sentinel.
const MaxDomains = 255

// ErrDomainOverflow indicates that more than MaxDomains clock domains
// were requested.
var ErrDomainOverflow = errors.New("core: clock domain overflow")

// NodeID identifies a node in a timing graph.
type NodeID int32

// EdgeID identifies an edge in a timing graph.
type EdgeID int32

// LevelID identifies a level of a levelized timing graph.
type LevelID int32

// DomainID identifies a clock domain within a constraint set.
type DomainID uint8

const (
	invalidIndex  = NodeID(-1)
	invalidDomain = DomainID(MaxDomains)
)

// InvalidNode returns the sentinel NodeID that refers to no node.
func InvalidNode() NodeID { return invalidIndex }

// InvalidEdge returns the sentinel EdgeID that refers to no edge.
func InvalidEdge() EdgeID { return EdgeID(-1) }

// InvalidLevel returns the sentinel LevelID that refers to no level.
func InvalidLevel() LevelID { return LevelID(-1) }

// InvalidDomain returns the sentinel DomainID that refers to no domain.
func InvalidDomain() DomainID { return invalidDomain }

// Valid reports whether the identifier refers to an actual node.
func (id NodeID) Valid() bool { return id >= 0 }

// Valid reports whether the identifier refers to an actual edge.
func (id EdgeID) Valid() bool { return id >= 0 }

// Valid reports whether the identifier refers to an actual level.
func (id LevelID) Valid() bool { return id >= 0 }

// Valid reports whether the identifier refers to an actual domain.
func (id DomainID) Valid() bool { return id != invalidDomain }

// String renders the node id, or "n#" with "-1" for the invalid sentinel.
func (id NodeID) String() string { return fmt.Sprintf("n%d", int32(id)) }

// String renders the edge id.
func (id EdgeID) String() string { return fmt.Sprintf("e%d", int32(id)) }

// String renders the level id.
func (id LevelID) String() string { return fmt.Sprintf("l%d", int32(id)) }

// String renders the domain id; the invalid sentinel prints as "d-1".
func (id DomainID) String() string {
	if !id.Valid() {
		return "d-1"
	}

	return fmt.Sprintf("d%d", uint8(id))
}

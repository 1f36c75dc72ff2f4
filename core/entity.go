package core

import "fmt"

// Entity is an opaque handle into the entity table: slot index plus generation
// A freed slot bumps its generation, so stale handles never alias a reused slot
// The zero Entity is never alive
type Entity struct {
	Index      uint32
	Generation uint32
}

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.Index, e.Generation)
}

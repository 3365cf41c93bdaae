package taskcall

import "github.com/taskcall/taskcall/id"

// ID is the primary identifier type for taskcall entities.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix

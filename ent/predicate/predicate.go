// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// StatsSnapshot is the predicate function for statssnapshot builders.
type StatsSnapshot func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Journey is the predicate function for journey builders.
type Journey func(*sql.Selector)

// Level is the predicate function for level builders.
type Level func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

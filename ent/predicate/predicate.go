// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonPackage is the predicate function for lessonpackage builders.
type LessonPackage func(*sql.Selector)

// OutboxEntry is the predicate function for outboxentry builders.
type OutboxEntry func(*sql.Selector)

// OutcomeEvent is the predicate function for outcomeevent builders.
type OutcomeEvent func(*sql.Selector)

// ProgressSnapshot is the predicate function for progresssnapshot builders.
type ProgressSnapshot func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package outcomeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUserID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUnitID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldLessonID, v))
}

// ExerciseID applies equality check predicate on the "exercise_id" field. It's identical to ExerciseIDEQ.
func ExerciseID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldExerciseID, v))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldUserID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldUnitID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ExerciseIDEQ applies the EQ predicate on the "exercise_id" field.
func ExerciseIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldExerciseID, v))
}

// ExerciseIDNEQ applies the NEQ predicate on the "exercise_id" field.
func ExerciseIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldExerciseID, v))
}

// ExerciseIDIn applies the In predicate on the "exercise_id" field.
func ExerciseIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldExerciseID, vs...))
}

// ExerciseIDNotIn applies the NotIn predicate on the "exercise_id" field.
func ExerciseIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldExerciseID, vs...))
}

// ExerciseIDGT applies the GT predicate on the "exercise_id" field.
func ExerciseIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldExerciseID, v))
}

// ExerciseIDGTE applies the GTE predicate on the "exercise_id" field.
func ExerciseIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldExerciseID, v))
}

// ExerciseIDLT applies the LT predicate on the "exercise_id" field.
func ExerciseIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldExerciseID, v))
}

// ExerciseIDLTE applies the LTE predicate on the "exercise_id" field.
func ExerciseIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldExerciseID, v))
}

// ExerciseIDContains applies the Contains predicate on the "exercise_id" field.
func ExerciseIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldExerciseID, v))
}

// ExerciseIDHasPrefix applies the HasPrefix predicate on the "exercise_id" field.
func ExerciseIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldExerciseID, v))
}

// ExerciseIDHasSuffix applies the HasSuffix predicate on the "exercise_id" field.
func ExerciseIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldExerciseID, v))
}

// ExerciseIDEqualFold applies the EqualFold predicate on the "exercise_id" field.
func ExerciseIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldExerciseID, v))
}

// ExerciseIDContainsFold applies the ContainsFold predicate on the "exercise_id" field.
func ExerciseIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldExerciseID, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldContainsFold(FieldObjectiveID, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutcomeEvent) predicate.OutcomeEvent {
	return predicate.OutcomeEvent(sql.NotPredicates(p))
}

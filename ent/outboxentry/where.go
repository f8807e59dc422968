// Code generated by ent, DO NOT EDIT.

package outboxentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUserID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUnitID, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldUserID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldContainsFold(FieldUnitID, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldAttempts, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldNextAttemptAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutboxEntry) predicate.OutboxEntry {
	return predicate.OutboxEntry(sql.NotPredicates(p))
}

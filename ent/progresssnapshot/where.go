// Code generated by ent, DO NOT EDIT.

package progresssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLTE(FieldID, id))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldUnitID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldUserID, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldComputedAt, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldContainsFold(FieldUnitID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.FieldLTE(FieldComputedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressSnapshot) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressSnapshot) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressSnapshot) predicate.ProgressSnapshot {
	return predicate.ProgressSnapshot(sql.NotPredicates(p))
}

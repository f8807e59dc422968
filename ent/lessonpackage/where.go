// Code generated by ent, DO NOT EDIT.

package lessonpackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lernio/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldID, id))
}

// PackageID applies equality check predicate on the "package_id" field. It's identical to PackageIDEQ.
func PackageID(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldPackageID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldUnitID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldTitle, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldPosition, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldImportedAt, v))
}

// PackageIDEQ applies the EQ predicate on the "package_id" field.
func PackageIDEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldPackageID, v))
}

// PackageIDNEQ applies the NEQ predicate on the "package_id" field.
func PackageIDNEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldPackageID, v))
}

// PackageIDIn applies the In predicate on the "package_id" field.
func PackageIDIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldPackageID, vs...))
}

// PackageIDNotIn applies the NotIn predicate on the "package_id" field.
func PackageIDNotIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldPackageID, vs...))
}

// PackageIDGT applies the GT predicate on the "package_id" field.
func PackageIDGT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldPackageID, v))
}

// PackageIDGTE applies the GTE predicate on the "package_id" field.
func PackageIDGTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldPackageID, v))
}

// PackageIDLT applies the LT predicate on the "package_id" field.
func PackageIDLT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldPackageID, v))
}

// PackageIDLTE applies the LTE predicate on the "package_id" field.
func PackageIDLTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldPackageID, v))
}

// PackageIDContains applies the Contains predicate on the "package_id" field.
func PackageIDContains(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContains(FieldPackageID, v))
}

// PackageIDHasPrefix applies the HasPrefix predicate on the "package_id" field.
func PackageIDHasPrefix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasPrefix(FieldPackageID, v))
}

// PackageIDHasSuffix applies the HasSuffix predicate on the "package_id" field.
func PackageIDHasSuffix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasSuffix(FieldPackageID, v))
}

// PackageIDEqualFold applies the EqualFold predicate on the "package_id" field.
func PackageIDEqualFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEqualFold(FieldPackageID, v))
}

// PackageIDContainsFold applies the ContainsFold predicate on the "package_id" field.
func PackageIDContainsFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContainsFold(FieldPackageID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContainsFold(FieldUnitID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldContainsFold(FieldTitle, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldPosition, v))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.LessonPackage {
	return predicate.LessonPackage(sql.FieldLTE(FieldImportedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonPackage) predicate.LessonPackage {
	return predicate.LessonPackage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonPackage) predicate.LessonPackage {
	return predicate.LessonPackage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonPackage) predicate.LessonPackage {
	return predicate.LessonPackage(sql.NotPredicates(p))
}

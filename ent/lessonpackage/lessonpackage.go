// Code generated by ent, DO NOT EDIT.

package lessonpackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonpackage type in the database.
	Label = "lesson_package"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPackageID holds the string denoting the package_id field in the database.
	FieldPackageID = "package_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldExercises holds the string denoting the exercises field in the database.
	FieldExercises = "exercises"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the lessonpackage in the database.
	Table = "lesson_packages"
)

// Columns holds all SQL columns for lessonpackage fields.
var Columns = []string{
	FieldID,
	FieldPackageID,
	FieldUnitID,
	FieldTitle,
	FieldPosition,
	FieldExercises,
	FieldImportedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PackageIDValidator is a validator for the "package_id" field. It is called by the builders before save.
	PackageIDValidator func(string) error
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonPackage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPackageID orders the results by the package_id field.
func ByPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageID, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}

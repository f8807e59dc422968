// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/outboxentry"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/progresssnapshot"
	"github.com/lernio/lernio/ent/schema"
	"github.com/lernio/lernio/ent/sessionevent"
	"github.com/lernio/lernio/ent/unit"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessonpackageFields := schema.LessonPackage{}.Fields()
	_ = lessonpackageFields
	// lessonpackageDescPackageID is the schema descriptor for package_id field.
	lessonpackageDescPackageID := lessonpackageFields[0].Descriptor()
	// lessonpackage.PackageIDValidator is a validator for the "package_id" field. It is called by the builders before save.
	lessonpackage.PackageIDValidator = lessonpackageDescPackageID.Validators[0].(func(string) error)
	// lessonpackageDescUnitID is the schema descriptor for unit_id field.
	lessonpackageDescUnitID := lessonpackageFields[1].Descriptor()
	// lessonpackage.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	lessonpackage.UnitIDValidator = lessonpackageDescUnitID.Validators[0].(func(string) error)
	// lessonpackageDescTitle is the schema descriptor for title field.
	lessonpackageDescTitle := lessonpackageFields[2].Descriptor()
	// lessonpackage.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lessonpackage.TitleValidator = lessonpackageDescTitle.Validators[0].(func(string) error)
	// lessonpackageDescPosition is the schema descriptor for position field.
	lessonpackageDescPosition := lessonpackageFields[3].Descriptor()
	// lessonpackage.DefaultPosition holds the default value on creation for the position field.
	lessonpackage.DefaultPosition = lessonpackageDescPosition.Default.(int)
	// lessonpackageDescImportedAt is the schema descriptor for imported_at field.
	lessonpackageDescImportedAt := lessonpackageFields[5].Descriptor()
	// lessonpackage.DefaultImportedAt holds the default value on creation for the imported_at field.
	lessonpackage.DefaultImportedAt = lessonpackageDescImportedAt.Default.(func() time.Time)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescSessionID is the schema descriptor for session_id field.
	outboxentryDescSessionID := outboxentryFields[0].Descriptor()
	// outboxentry.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	outboxentry.SessionIDValidator = outboxentryDescSessionID.Validators[0].(func(string) error)
	// outboxentryDescUserID is the schema descriptor for user_id field.
	outboxentryDescUserID := outboxentryFields[1].Descriptor()
	// outboxentry.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	outboxentry.UserIDValidator = outboxentryDescUserID.Validators[0].(func(string) error)
	// outboxentryDescUnitID is the schema descriptor for unit_id field.
	outboxentryDescUnitID := outboxentryFields[2].Descriptor()
	// outboxentry.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	outboxentry.UnitIDValidator = outboxentryDescUnitID.Validators[0].(func(string) error)
	// outboxentryDescAttempts is the schema descriptor for attempts field.
	outboxentryDescAttempts := outboxentryFields[4].Descriptor()
	// outboxentry.DefaultAttempts holds the default value on creation for the attempts field.
	outboxentry.DefaultAttempts = outboxentryDescAttempts.Default.(int)
	// outboxentryDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	outboxentryDescNextAttemptAt := outboxentryFields[5].Descriptor()
	// outboxentry.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	outboxentry.DefaultNextAttemptAt = outboxentryDescNextAttemptAt.Default.(func() time.Time)
	// outboxentryDescCreatedAt is the schema descriptor for created_at field.
	outboxentryDescCreatedAt := outboxentryFields[6].Descriptor()
	// outboxentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxentry.DefaultCreatedAt = outboxentryDescCreatedAt.Default.(func() time.Time)
	outcomeeventMixin := schema.OutcomeEvent{}.Mixin()
	outcomeeventMixinFields0 := outcomeeventMixin[0].Fields()
	_ = outcomeeventMixinFields0
	outcomeeventFields := schema.OutcomeEvent{}.Fields()
	_ = outcomeeventFields
	// outcomeeventDescTimestamp is the schema descriptor for timestamp field.
	outcomeeventDescTimestamp := outcomeeventMixinFields0[1].Descriptor()
	// outcomeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	outcomeevent.DefaultTimestamp = outcomeeventDescTimestamp.Default.(func() time.Time)
	// outcomeeventDescSessionID is the schema descriptor for session_id field.
	outcomeeventDescSessionID := outcomeeventFields[0].Descriptor()
	// outcomeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	outcomeevent.SessionIDValidator = outcomeeventDescSessionID.Validators[0].(func(string) error)
	// outcomeeventDescUserID is the schema descriptor for user_id field.
	outcomeeventDescUserID := outcomeeventFields[1].Descriptor()
	// outcomeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	outcomeevent.UserIDValidator = outcomeeventDescUserID.Validators[0].(func(string) error)
	// outcomeeventDescUnitID is the schema descriptor for unit_id field.
	outcomeeventDescUnitID := outcomeeventFields[2].Descriptor()
	// outcomeevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	outcomeevent.UnitIDValidator = outcomeeventDescUnitID.Validators[0].(func(string) error)
	// outcomeeventDescLessonID is the schema descriptor for lesson_id field.
	outcomeeventDescLessonID := outcomeeventFields[3].Descriptor()
	// outcomeevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	outcomeevent.LessonIDValidator = outcomeeventDescLessonID.Validators[0].(func(string) error)
	// outcomeeventDescExerciseID is the schema descriptor for exercise_id field.
	outcomeeventDescExerciseID := outcomeeventFields[4].Descriptor()
	// outcomeevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	outcomeevent.ExerciseIDValidator = outcomeeventDescExerciseID.Validators[0].(func(string) error)
	// outcomeeventDescObjectiveID is the schema descriptor for objective_id field.
	outcomeeventDescObjectiveID := outcomeeventFields[5].Descriptor()
	// outcomeevent.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	outcomeevent.ObjectiveIDValidator = outcomeeventDescObjectiveID.Validators[0].(func(string) error)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescUnitID is the schema descriptor for unit_id field.
	progresssnapshotDescUnitID := progresssnapshotFields[0].Descriptor()
	// progresssnapshot.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	progresssnapshot.UnitIDValidator = progresssnapshotDescUnitID.Validators[0].(func(string) error)
	// progresssnapshotDescUserID is the schema descriptor for user_id field.
	progresssnapshotDescUserID := progresssnapshotFields[1].Descriptor()
	// progresssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progresssnapshot.UserIDValidator = progresssnapshotDescUserID.Validators[0].(func(string) error)
	// progresssnapshotDescComputedAt is the schema descriptor for computed_at field.
	progresssnapshotDescComputedAt := progresssnapshotFields[3].Descriptor()
	// progresssnapshot.DefaultComputedAt holds the default value on creation for the computed_at field.
	progresssnapshot.DefaultComputedAt = progresssnapshotDescComputedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescUnitID is the schema descriptor for unit_id field.
	sessioneventDescUnitID := sessioneventFields[2].Descriptor()
	// sessionevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	sessionevent.UnitIDValidator = sessioneventDescUnitID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[3].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[4].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescExercisesAnswered is the schema descriptor for exercises_answered field.
	sessioneventDescExercisesAnswered := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultExercisesAnswered holds the default value on creation for the exercises_answered field.
	sessionevent.DefaultExercisesAnswered = sessioneventDescExercisesAnswered.Default.(int)
	// sessioneventDescExercisesCorrect is the schema descriptor for exercises_correct field.
	sessioneventDescExercisesCorrect := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultExercisesCorrect holds the default value on creation for the exercises_correct field.
	sessionevent.DefaultExercisesCorrect = sessioneventDescExercisesCorrect.Default.(int)
	unitFields := schema.Unit{}.Fields()
	_ = unitFields
	// unitDescUnitID is the schema descriptor for unit_id field.
	unitDescUnitID := unitFields[0].Descriptor()
	// unit.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	unit.UnitIDValidator = unitDescUnitID.Validators[0].(func(string) error)
	// unitDescTitle is the schema descriptor for title field.
	unitDescTitle := unitFields[1].Descriptor()
	// unit.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	unit.TitleValidator = unitDescTitle.Validators[0].(func(string) error)
	// unitDescImportedAt is the schema descriptor for imported_at field.
	unitDescImportedAt := unitFields[4].Descriptor()
	// unit.DefaultImportedAt holds the default value on creation for the imported_at field.
	unit.DefaultImportedAt = unitDescImportedAt.Default.(func() time.Time)
}

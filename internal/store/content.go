package store

import (
	"context"
	"fmt"

	"github.com/lernio/lernio/ent"
	"github.com/lernio/lernio/ent/lessonpackage"
	"github.com/lernio/lernio/ent/unit"
	entschema "github.com/lernio/lernio/ent/schema"
)

// contentRepo implements ContentRepo using the ent client.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) PutUnit(ctx context.Context, u *Unit) error {
	objectives := make([]entschema.ObjectiveSpec, 0, len(u.Objectives))
	for _, o := range u.Objectives {
		objectives = append(objectives, entschema.ObjectiveSpec{ID: o.ID, Text: o.Text})
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.Unit.Delete().Where(unit.UnitID(u.UnitID)).Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous unit: %w", err)
	}

	_, err = tx.Unit.Create().
		SetUnitID(u.UnitID).
		SetTitle(u.Title).
		SetObjectives(objectives).
		SetLessonOrder(u.LessonOrder).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save unit: %w", err)
	}

	return tx.Commit()
}

func (r *contentRepo) PutLessonPackage(ctx context.Context, lp *LessonPackage) error {
	exercises := make([]entschema.ExerciseSpec, 0, len(lp.Exercises))
	for _, e := range lp.Exercises {
		exercises = append(exercises, entschema.ExerciseSpec{
			ID:          e.ID,
			ObjectiveID: e.ObjectiveID,
			Prompt:      e.Prompt,
			Choices:     e.Choices,
			AnswerIndex: e.AnswerIndex,
		})
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.LessonPackage.Delete().Where(lessonpackage.PackageID(lp.PackageID)).Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous lesson package: %w", err)
	}

	_, err = tx.LessonPackage.Create().
		SetPackageID(lp.PackageID).
		SetUnitID(lp.UnitID).
		SetTitle(lp.Title).
		SetPosition(lp.Position).
		SetExercises(exercises).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save lesson package: %w", err)
	}

	return tx.Commit()
}

func (r *contentRepo) Unit(ctx context.Context, unitID string) (*Unit, error) {
	u, err := r.client.Unit.Query().
		Where(unit.UnitID(unitID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query unit: %w", err)
	}
	return entUnitToUnit(u), nil
}

func (r *contentRepo) Units(ctx context.Context) ([]*Unit, error) {
	rows, err := r.client.Unit.Query().
		Order(ent.Asc(unit.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}

	units := make([]*Unit, 0, len(rows))
	for _, u := range rows {
		units = append(units, entUnitToUnit(u))
	}
	return units, nil
}

func (r *contentRepo) LessonPackages(ctx context.Context, unitID string) ([]*LessonPackage, error) {
	rows, err := r.client.LessonPackage.Query().
		Where(lessonpackage.UnitID(unitID)).
		Order(ent.Asc(lessonpackage.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson packages: %w", err)
	}

	packages := make([]*LessonPackage, 0, len(rows))
	for _, lp := range rows {
		packages = append(packages, entLessonPackageToLessonPackage(lp))
	}
	return packages, nil
}

func (r *contentRepo) PruneLessonPackages(ctx context.Context, unitID string, keep []string) error {
	_, err := r.client.LessonPackage.Delete().
		Where(
			lessonpackage.UnitID(unitID),
			lessonpackage.PackageIDNotIn(keep...),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune lesson packages: %w", err)
	}
	return nil
}

func entUnitToUnit(u *ent.Unit) *Unit {
	objectives := make([]Objective, 0, len(u.Objectives))
	for _, o := range u.Objectives {
		objectives = append(objectives, Objective{ID: o.ID, Text: o.Text})
	}
	return &Unit{
		UnitID:      u.UnitID,
		Title:       u.Title,
		Objectives:  objectives,
		LessonOrder: u.LessonOrder,
		ImportedAt:  u.ImportedAt,
	}
}

func entLessonPackageToLessonPackage(lp *ent.LessonPackage) *LessonPackage {
	exercises := make([]Exercise, 0, len(lp.Exercises))
	for _, e := range lp.Exercises {
		exercises = append(exercises, Exercise{
			ID:          e.ID,
			ObjectiveID: e.ObjectiveID,
			Prompt:      e.Prompt,
			Choices:     e.Choices,
			AnswerIndex: e.AnswerIndex,
		})
	}
	return &LessonPackage{
		PackageID:  lp.PackageID,
		UnitID:     lp.UnitID,
		Title:      lp.Title,
		Position:   lp.Position,
		Exercises:  exercises,
		ImportedAt: lp.ImportedAt,
	}
}

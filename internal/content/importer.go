package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lernio/lernio/internal/store"
)

// ErrInvalidBundle marks bundles rejected before touching the cache.
var ErrInvalidBundle = errors.New("invalid content bundle")

// bundleFile is the wire shape of a content bundle.
type bundleFile struct {
	Unit    bundleUnit     `json:"unit"`
	Lessons []bundleLesson `json:"lessons"`
}

type bundleUnit struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Objectives  []bundleObjective `json:"objectives"`
	LessonOrder []string          `json:"lesson_order"`
}

type bundleObjective struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type bundleLesson struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Exercises []bundleExercise `json:"exercises"`
}

type bundleExercise struct {
	ID          string   `json:"id"`
	ObjectiveID string   `json:"objective_id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

// ImportSummary reports what an import wrote to the cache.
type ImportSummary struct {
	UnitID     string
	Title      string
	Objectives int
	Lessons    int
	Exercises  int
}

// Importer validates content bundles and writes them to the local
// content cache. A bundle is rejected wholesale when malformed: a
// single missing or duplicate objective ID would silently corrupt
// every later progress computation for the unit.
type Importer struct {
	repo store.ContentRepo
}

// NewImporter creates an Importer over the given content repo.
func NewImporter(repo store.ContentRepo) *Importer {
	return &Importer{repo: repo}
}

// ImportFile imports the bundle at path.
func (i *Importer) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle: %w", err)
	}
	defer f.Close()
	return i.Import(ctx, f)
}

// Import validates the bundle read from r and upserts its unit and
// lesson packages into the cache.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	if err := validateAgainstSchema(raw); err != nil {
		return nil, err
	}

	var bundle bundleFile
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}

	if err := validateBundle(&bundle); err != nil {
		return nil, err
	}

	u := &store.Unit{
		UnitID:      bundle.Unit.ID,
		Title:       bundle.Unit.Title,
		LessonOrder: bundle.Unit.LessonOrder,
	}
	for _, o := range bundle.Unit.Objectives {
		u.Objectives = append(u.Objectives, store.Objective{ID: o.ID, Text: o.Text})
	}
	if len(u.LessonOrder) == 0 {
		for _, l := range bundle.Lessons {
			u.LessonOrder = append(u.LessonOrder, l.ID)
		}
	}

	if err := i.repo.PutUnit(ctx, u); err != nil {
		return nil, fmt.Errorf("store unit: %w", err)
	}

	summary := &ImportSummary{
		UnitID:     u.UnitID,
		Title:      u.Title,
		Objectives: len(u.Objectives),
		Lessons:    len(bundle.Lessons),
	}

	for pos, l := range bundle.Lessons {
		lp := &store.LessonPackage{
			PackageID: l.ID,
			UnitID:    u.UnitID,
			Title:     l.Title,
			Position:  pos,
		}
		for _, e := range l.Exercises {
			lp.Exercises = append(lp.Exercises, store.Exercise{
				ID:          e.ID,
				ObjectiveID: e.ObjectiveID,
				Prompt:      e.Prompt,
				Choices:     e.Choices,
				AnswerIndex: e.AnswerIndex,
			})
		}
		summary.Exercises += len(lp.Exercises)

		if err := i.repo.PutLessonPackage(ctx, lp); err != nil {
			return nil, fmt.Errorf("store lesson package %s: %w", lp.PackageID, err)
		}
	}

	// A re-import that drops a lesson must also drop its cached
	// exercises, or they keep counting toward objective totals.
	keep := make([]string, 0, len(bundle.Lessons))
	for _, l := range bundle.Lessons {
		keep = append(keep, l.ID)
	}
	if err := i.repo.PruneLessonPackages(ctx, u.UnitID, keep); err != nil {
		return nil, fmt.Errorf("prune stale lesson packages: %w", err)
	}

	return summary, nil
}

// validateAgainstSchema checks the raw JSON against the bundle schema.
func validateAgainstSchema(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", ErrInvalidBundle, err)
	}

	schema, err := bundleSchema()
	if err != nil {
		return fmt.Errorf("compile bundle schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return nil
}

// validateBundle enforces the referential invariants the schema can't
// express: unique objective IDs, unique exercise IDs per unit, every
// exercise tagged with a known objective, answer indexes in range, and
// lesson_order referencing real lessons.
func validateBundle(b *bundleFile) error {
	objectives := make(map[string]bool, len(b.Unit.Objectives))
	for _, o := range b.Unit.Objectives {
		if objectives[o.ID] {
			return fmt.Errorf("%w: duplicate objective id %q", ErrInvalidBundle, o.ID)
		}
		objectives[o.ID] = true
	}

	lessons := make(map[string]bool, len(b.Lessons))
	exercises := make(map[string]bool)
	for _, l := range b.Lessons {
		if lessons[l.ID] {
			return fmt.Errorf("%w: duplicate lesson id %q", ErrInvalidBundle, l.ID)
		}
		lessons[l.ID] = true

		for _, e := range l.Exercises {
			if exercises[e.ID] {
				return fmt.Errorf("%w: duplicate exercise id %q", ErrInvalidBundle, e.ID)
			}
			exercises[e.ID] = true

			if !objectives[e.ObjectiveID] {
				return fmt.Errorf("%w: exercise %q references unknown objective %q",
					ErrInvalidBundle, e.ID, e.ObjectiveID)
			}
			if e.AnswerIndex >= len(e.Choices) {
				return fmt.Errorf("%w: exercise %q answer index %d out of range",
					ErrInvalidBundle, e.ID, e.AnswerIndex)
			}
		}
	}

	for _, id := range b.Unit.LessonOrder {
		if !lessons[id] {
			return fmt.Errorf("%w: lesson_order references unknown lesson %q", ErrInvalidBundle, id)
		}
	}

	return nil
}

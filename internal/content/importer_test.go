package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lernio/lernio/internal/store"
)

// fakeContentRepo is an in-memory ContentRepo for importer tests.
type fakeContentRepo struct {
	units    map[string]*store.Unit
	packages map[string]*store.LessonPackage
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		units:    make(map[string]*store.Unit),
		packages: make(map[string]*store.LessonPackage),
	}
}

func (f *fakeContentRepo) PutUnit(_ context.Context, u *store.Unit) error {
	f.units[u.UnitID] = u
	return nil
}

func (f *fakeContentRepo) PutLessonPackage(_ context.Context, lp *store.LessonPackage) error {
	f.packages[lp.PackageID] = lp
	return nil
}

func (f *fakeContentRepo) PruneLessonPackages(_ context.Context, unitID string, keep []string) error {
	kept := make(map[string]bool, len(keep))
	for _, id := range keep {
		kept[id] = true
	}
	for id, lp := range f.packages {
		if lp.UnitID == unitID && !kept[id] {
			delete(f.packages, id)
		}
	}
	return nil
}

func (f *fakeContentRepo) Unit(_ context.Context, unitID string) (*store.Unit, error) {
	return f.units[unitID], nil
}

func (f *fakeContentRepo) Units(_ context.Context) ([]*store.Unit, error) {
	var units []*store.Unit
	for _, u := range f.units {
		units = append(units, u)
	}
	return units, nil
}

func (f *fakeContentRepo) LessonPackages(_ context.Context, unitID string) ([]*store.LessonPackage, error) {
	var packages []*store.LessonPackage
	for _, lp := range f.packages {
		if lp.UnitID == unitID {
			packages = append(packages, lp)
		}
	}
	return packages, nil
}

const validBundle = `{
	"unit": {
		"id": "u1",
		"title": "Fractions",
		"objectives": [
			{"id": "ob1", "text": "Understand halves"},
			{"id": "ob2", "text": "Compare fractions"}
		]
	},
	"lessons": [
		{
			"id": "l1",
			"title": "Halves",
			"exercises": [
				{"id": "e1", "objective_id": "ob1", "prompt": "Half of 4?", "choices": ["1", "2", "3"], "answer_index": 1},
				{"id": "e2", "objective_id": "ob2", "prompt": "Bigger: 1/2 or 1/3?", "choices": ["1/2", "1/3"], "answer_index": 0}
			]
		}
	]
}`

func TestImportValidBundle(t *testing.T) {
	repo := newFakeContentRepo()
	imp := NewImporter(repo)

	summary, err := imp.Import(context.Background(), strings.NewReader(validBundle))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if summary.UnitID != "u1" || summary.Objectives != 2 || summary.Lessons != 1 || summary.Exercises != 2 {
		t.Errorf("summary = %+v", summary)
	}

	u := repo.units["u1"]
	if u == nil {
		t.Fatal("unit not stored")
	}
	// Lesson order defaults to bundle lesson order when not given.
	if len(u.LessonOrder) != 1 || u.LessonOrder[0] != "l1" {
		t.Errorf("lesson order = %v, want [l1]", u.LessonOrder)
	}
	if repo.packages["l1"] == nil {
		t.Fatal("lesson package not stored")
	}
	if repo.packages["l1"].Exercises[0].ObjectiveID != "ob1" {
		t.Errorf("exercise objective = %q, want ob1", repo.packages["l1"].Exercises[0].ObjectiveID)
	}
}

func TestReimportDropsStaleLessons(t *testing.T) {
	const twoLessons = `{
	"unit": {
		"id": "u1",
		"title": "Fractions",
		"objectives": [{"id": "ob1", "text": "Understand halves"}]
	},
	"lessons": [
		{
			"id": "l1",
			"title": "Halves",
			"exercises": [
				{"id": "e1", "objective_id": "ob1", "prompt": "Half of 4?", "choices": ["1", "2"], "answer_index": 1}
			]
		},
		{
			"id": "l2",
			"title": "Quarters",
			"exercises": [
				{"id": "e2", "objective_id": "ob1", "prompt": "Quarter of 8?", "choices": ["2", "4"], "answer_index": 0}
			]
		}
	]
}`
	const oneLesson = `{
	"unit": {
		"id": "u1",
		"title": "Fractions",
		"objectives": [{"id": "ob1", "text": "Understand halves"}]
	},
	"lessons": [
		{
			"id": "l1",
			"title": "Halves",
			"exercises": [
				{"id": "e1", "objective_id": "ob1", "prompt": "Half of 4?", "choices": ["1", "2"], "answer_index": 1}
			]
		}
	]
}`

	repo := newFakeContentRepo()
	imp := NewImporter(repo)

	if _, err := imp.Import(context.Background(), strings.NewReader(twoLessons)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := imp.Import(context.Background(), strings.NewReader(oneLesson)); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	packages, err := repo.LessonPackages(context.Background(), "u1")
	if err != nil {
		t.Fatalf("lesson packages: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("packages after re-import = %d, want 1", len(packages))
	}
	if packages[0].PackageID != "l1" {
		t.Errorf("surviving package = %q, want l1", packages[0].PackageID)
	}
}

func TestImportRejectsMalformedBundles(t *testing.T) {
	tests := []struct {
		name   string
		bundle string
	}{
		{
			name:   "not JSON",
			bundle: `{unit:`,
		},
		{
			name: "objective missing id",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [{"text": "no id"}]},
				"lessons": []
			}`,
		},
		{
			name: "duplicate objective id",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [
					{"id": "ob1", "text": "a"}, {"id": "ob1", "text": "b"}
				]},
				"lessons": []
			}`,
		},
		{
			name: "exercise references unknown objective",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [{"id": "ob1", "text": "a"}]},
				"lessons": [{"id": "l1", "title": "L", "exercises": [
					{"id": "e1", "objective_id": "nope", "prompt": "?", "choices": ["a", "b"], "answer_index": 0}
				]}]
			}`,
		},
		{
			name: "answer index out of range",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [{"id": "ob1", "text": "a"}]},
				"lessons": [{"id": "l1", "title": "L", "exercises": [
					{"id": "e1", "objective_id": "ob1", "prompt": "?", "choices": ["a", "b"], "answer_index": 2}
				]}]
			}`,
		},
		{
			name: "lesson_order references unknown lesson",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [{"id": "ob1", "text": "a"}],
					"lesson_order": ["ghost"]},
				"lessons": []
			}`,
		},
		{
			name: "duplicate exercise id across lessons",
			bundle: `{
				"unit": {"id": "u1", "title": "T", "objectives": [{"id": "ob1", "text": "a"}]},
				"lessons": [
					{"id": "l1", "title": "L1", "exercises": [
						{"id": "e1", "objective_id": "ob1", "prompt": "?", "choices": ["a", "b"], "answer_index": 0}
					]},
					{"id": "l2", "title": "L2", "exercises": [
						{"id": "e1", "objective_id": "ob1", "prompt": "?", "choices": ["a", "b"], "answer_index": 0}
					]}
				]
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeContentRepo()
			imp := NewImporter(repo)

			_, err := imp.Import(context.Background(), strings.NewReader(tt.bundle))
			if !errors.Is(err, ErrInvalidBundle) {
				t.Fatalf("err = %v, want ErrInvalidBundle", err)
			}
			if len(repo.units) != 0 {
				t.Error("rejected bundle must not reach the cache")
			}
		})
	}
}

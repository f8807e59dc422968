package content

import (
	"testing"

	"github.com/lernio/lernio/internal/store"
)

func testPackages() (*store.Unit, []*store.LessonPackage) {
	u := &store.Unit{
		UnitID:      "u1",
		Title:       "Fractions",
		LessonOrder: []string{"l1", "l2", "l3"},
	}
	packages := []*store.LessonPackage{
		{PackageID: "l1", UnitID: "u1", Position: 0},
		{PackageID: "l2", UnitID: "u1", Position: 1},
		{PackageID: "l3", UnitID: "u1", Position: 2},
	}
	return u, packages
}

func TestNextLesson(t *testing.T) {
	u, packages := testPackages()

	next := NextLesson(u, packages, "l1")
	if next == nil || next.PackageID != "l2" {
		t.Errorf("next after l1 = %v, want l2", next)
	}

	if next := NextLesson(u, packages, "l3"); next != nil {
		t.Errorf("next after last = %v, want nil", next)
	}

	if next := NextLesson(u, packages, "ghost"); next != nil {
		t.Errorf("next after unknown = %v, want nil", next)
	}
}

func TestNextLessonPartiallySynced(t *testing.T) {
	u, packages := testPackages()
	// l2 exists in the teaching order but isn't cached yet.
	packages = []*store.LessonPackage{packages[0], packages[2]}

	if next := NextLesson(u, packages, "l1"); next != nil {
		t.Errorf("next = %v, want nil for undownloaded lesson", next)
	}
}

func TestNextLessonWithoutExplicitOrder(t *testing.T) {
	u, packages := testPackages()
	u.LessonOrder = nil

	next := NextLesson(u, packages, "l2")
	if next == nil || next.PackageID != "l3" {
		t.Errorf("next after l2 = %v, want l3 from positions", next)
	}
}

func TestFindLesson(t *testing.T) {
	_, packages := testPackages()

	if lp := FindLesson(packages, "l2"); lp == nil || lp.PackageID != "l2" {
		t.Errorf("find l2 = %v", lp)
	}
	if lp := FindLesson(packages, "nope"); lp != nil {
		t.Errorf("find unknown = %v, want nil", lp)
	}
}

package content

import "github.com/lernio/lernio/internal/store"

// NextLesson returns the lesson that follows lessonID in the unit's
// teaching order, or nil if lessonID is the last lesson, unknown, or
// the following lesson isn't cached yet.
func NextLesson(u *store.Unit, packages []*store.LessonPackage, lessonID string) *store.LessonPackage {
	byID := make(map[string]*store.LessonPackage, len(packages))
	for _, lp := range packages {
		byID[lp.PackageID] = lp
	}

	order := u.LessonOrder
	if len(order) == 0 {
		// Fall back to cached package positions.
		for _, lp := range packages {
			order = append(order, lp.PackageID)
		}
	}

	for idx, id := range order {
		if id != lessonID {
			continue
		}
		if idx+1 >= len(order) {
			return nil
		}
		return byID[order[idx+1]]
	}
	return nil
}

// FindLesson returns the cached package with the given ID, or nil.
func FindLesson(packages []*store.LessonPackage, lessonID string) *store.LessonPackage {
	for _, lp := range packages {
		if lp.PackageID == lessonID {
			return lp
		}
	}
	return nil
}

package syllabus

// Papers resolves a course/level/group selection into the concrete list of
// trackable papers. An unknown course or level yields an empty list, never an
// error. "Both Groups" expands to Group 1 followed by Group 2; otherwise
// groups contribute their papers in the order they were supplied, with
// unknown groups skipped. No deduplication is done: callers are expected to
// pass a well-formed selection.
func Papers(course, level string, groups []string) []Paper {
	courseData, ok := catalog[course]
	if !ok {
		return []Paper{}
	}
	levelData, ok := courseData[level]
	if !ok {
		return []Paper{}
	}

	papers := []Paper{}
	if containsGroup(groups, BothGroups) {
		papers = append(papers, levelData[Group1]...)
		papers = append(papers, levelData[Group2]...)
		return papers
	}
	for _, group := range groups {
		papers = append(papers, levelData[group]...)
	}
	return papers
}

// Courses lists the selectable courses in onboarding order.
func Courses() []string {
	return []string{CourseCS, CourseCA, CourseCMA, CourseOther}
}

// Levels lists the valid levels for a course, empty for unknown courses.
func Levels(course string) []string {
	switch course {
	case CourseCS:
		return []string{"Executive", "Professional"}
	case CourseCA, CourseCMA:
		return []string{"Foundation", "Intermediate", "Final"}
	case CourseOther:
		return []string{LevelNotApplicable}
	}
	return nil
}

// ValidLevel reports whether level is a valid level for course.
func ValidLevel(course, level string) bool {
	for _, l := range Levels(course) {
		if l == level {
			return true
		}
	}
	return false
}

// GroupOptions lists the selectable group values.
func GroupOptions() []string {
	return []string{Group1, Group2, BothGroups}
}

// ToggleGroup applies the mutually exclusive group selection semantics:
// picking "Both Groups" clears any individual selection, and picking an
// individual group drops "Both Groups". Toggling an already selected group
// deselects it.
func ToggleGroup(selected []string, group string) []string {
	if group == BothGroups {
		return []string{BothGroups}
	}

	next := []string{}
	found := false
	for _, g := range selected {
		if g == BothGroups {
			continue
		}
		if g == group {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		next = append(next, group)
	}
	return next
}

func containsGroup(groups []string, want string) bool {
	for _, g := range groups {
		if g == want {
			return true
		}
	}
	return false
}

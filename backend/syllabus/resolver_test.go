package syllabus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPapersUnknownSelection(t *testing.T) {
	assert.Empty(t, Papers("MBA", "Final", []string{Group1}))
	assert.Empty(t, Papers(CourseCA, "Professional", []string{Group1}))
	assert.Empty(t, Papers(CourseCA, "", []string{Group1}))
	assert.Empty(t, Papers(CourseOther, LevelNotApplicable, []string{Group1}))
}

func TestPapersBothGroups(t *testing.T) {
	both := Papers(CourseCS, "Executive", []string{BothGroups})
	g1 := Papers(CourseCS, "Executive", []string{Group1})
	g2 := Papers(CourseCS, "Executive", []string{Group2})

	assert.Equal(t, append(append([]Paper{}, g1...), g2...), both)
	assert.Equal(t, "cs_exec_g1_p1", both[0].ID)
	assert.Equal(t, "cs_exec_g2_p2", both[len(both)-1].ID)
}

func TestPapersSuppliedOrder(t *testing.T) {
	papers := Papers(CourseCA, "Foundation", []string{Group2, Group1})
	assert.Len(t, papers, 4)
	assert.Equal(t, "ca_found_g2_p1", papers[0].ID)
	assert.Equal(t, "ca_found_g1_p1", papers[2].ID)
}

func TestPapersUnknownGroupSkipped(t *testing.T) {
	papers := Papers(CourseCA, "Foundation", []string{"Group 3", Group1})
	assert.Len(t, papers, 2)
	assert.Equal(t, "ca_found_g1_p1", papers[0].ID)
}

func TestPapersNoDeduplication(t *testing.T) {
	papers := Papers(CourseCMA, "Final", []string{Group1, Group1})
	assert.Len(t, papers, 2)
	assert.Equal(t, papers[0].ID, papers[1].ID)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []string{"Executive", "Professional"}, Levels(CourseCS))
	assert.Equal(t, []string{"Foundation", "Intermediate", "Final"}, Levels(CourseCA))
	assert.Equal(t, []string{LevelNotApplicable}, Levels(CourseOther))
	assert.Nil(t, Levels("MBA"))

	assert.True(t, ValidLevel(CourseCMA, "Intermediate"))
	assert.False(t, ValidLevel(CourseCS, "Foundation"))
}

func TestToggleGroup(t *testing.T) {
	// "Both Groups" clears individual selections.
	assert.Equal(t, []string{BothGroups}, ToggleGroup([]string{Group1, Group2}, BothGroups))

	// Picking an individual group drops "Both Groups".
	assert.Equal(t, []string{Group1}, ToggleGroup([]string{BothGroups}, Group1))

	// Toggling a selected group deselects it.
	assert.Equal(t, []string{Group2}, ToggleGroup([]string{Group1, Group2}, Group1))
	assert.Equal(t, []string{}, ToggleGroup([]string{Group1}, Group1))

	// Adding preserves order.
	assert.Equal(t, []string{Group1, Group2}, ToggleGroup([]string{Group1}, Group2))
}

package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeProfileFor_NotFound(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-05 10:00:00"),
		row("T2", "Binta", "Quiz", "not-a-grade", "Math", "2024-03-05 11:00:00"),
	)

	_, err := GradeProfileFor(ds, 12)
	assert.ErrorIs(t, err, ErrGradeNotFound)

	// Records without a parsable grade never match any grade query.
	_, err = GradeProfileFor(ds, 0)
	assert.ErrorIs(t, err, ErrGradeNotFound)
}

func TestGradeProfileFor_Breakdown(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-01 10:00:00"),
		row("T1", "Asha", "Question Paper", "7", "Math", "2024-03-02 10:00:00"),
		row("T2", "Binta", "Quiz", "7", "Science", "2024-03-03 10:00:00"),
		// Chipo teaches grade 7 but only lessons: listed as a teacher,
		// absent from the assessment breakdown.
		row("T3", "Chipo", "Lesson Plan", "7", "History", "2024-03-04 10:00:00"),
		// Grade 8 activity never leaks into the grade 7 profile.
		row("T4", "Dada", "Quiz", "8", "Math", "2024-03-05 10:00:00"),
	)

	p, err := GradeProfileFor(ds, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, p.Grade)
	assert.Equal(t, 3, p.TotalAssessments)
	assert.Equal(t, []TeacherCount{
		{Teacher: "Asha", Count: 2},
		{Teacher: "Binta", Count: 1},
	}, p.TeacherData)
	assert.Equal(t, []string{"Asha", "Binta", "Chipo"}, p.Teachers)

	for _, tc := range p.TeacherData {
		assert.Greater(t, tc.Count, 0)
	}
}

func TestGradeProfileFor_LessonOnlyGrade(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Lesson Plan", "9", "Math", "2024-03-01 10:00:00"),
	)

	p, err := GradeProfileFor(ds, 9)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalAssessments)
	assert.Empty(t, p.TeacherData)
	assert.Equal(t, []string{"Asha"}, p.Teachers)
}

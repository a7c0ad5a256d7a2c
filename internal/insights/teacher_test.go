package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savrainsights/internal/dataset"
)

func TestTeacherProfileFor_NotFound(t *testing.T) {
	ds := makeDataset(row("T1", "Asha", "Quiz", "7", "Math", "2024-03-05 10:00:00"))

	_, err := TeacherProfileFor(ds, "Nobody")
	assert.ErrorIs(t, err, ErrTeacherNotFound)

	// Name matching is exact and case-sensitive.
	_, err = TeacherProfileFor(ds, "asha")
	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestTeacherProfileFor_Totals(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Lesson Plan", "7", "Math", "2024-03-01 10:00:00"),
		row("T1", "Asha", "Lesson Plan", "7", "Math", "2024-03-02 10:00:00"),
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-03 10:00:00"),
		row("T1", "Asha", "Question Paper", "8", "Science", "2024-03-04 10:00:00"),
		row("T1", "Asha", "Worksheet", "8", "Science", "2024-03-05 10:00:00"),
		row("T2", "Binta", "Quiz", "9", "History", "2024-03-06 10:00:00"),
	)

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	assert.Equal(t, 2, p.TotalLessons)
	assert.Equal(t, 1, p.TotalQuizzes)
	assert.Equal(t, 1, p.TotalQuestionPapers)
	assert.Equal(t, 2, p.TotalAssessments)

	// Assessment-scope lists vs full subject list.
	assert.Equal(t, []string{"7", "8"}, p.Grades)
	assert.Equal(t, []string{"Math", "Science"}, p.Subjects)
	assert.Equal(t, []string{"Math", "Science"}, p.AllSubjects)
}

func TestTeacherProfileFor_AssessmentIdentity(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-01 10:00:00"),
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-02 10:00:00"),
		row("T1", "Asha", "Question Paper", "8", "Math", "2024-03-03 10:00:00"),
		row("T1", "Asha", "Lesson Plan", "8", "Math", "2024-03-04 10:00:00"),
	)

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	ranks := Leaderboard(ds)
	require.Len(t, ranks, 1)
	assert.Equal(t, ranks[0].Assessments, p.TotalQuizzes+p.TotalQuestionPapers)
	assert.Equal(t, ranks[0].Score, p.Score)
}

func TestTeacherProfileFor_GradeSubjectMatrix(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-01 10:00:00"),
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-02 10:00:00"),
		row("T1", "Asha", "Question Paper", "7", "Science", "2024-03-03 10:00:00"),
		row("T1", "Asha", "Quiz", "8", "Math", "2024-03-04 10:00:00"),
		// Lessons never enter the matrix.
		row("T1", "Asha", "Lesson Plan", "9", "History", "2024-03-05 10:00:00"),
	)

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]int{
		"7": {"Math": 2, "Science": 1},
		"8": {"Math": 1},
	}, p.GradeSubjectData)
}

func TestTeacherProfileFor_Timeline(t *testing.T) {
	// One lesson and one quiz on the same date: only the assessment
	// contributes to the timeline.
	ds := makeDataset(
		row("T1", "Asha", "Lesson Plan", "7", "Math", "2024-03-05 09:00:00"),
		row("T1", "Asha", "Quiz", "7", "Math", "2024-03-05 10:00:00"),
	)

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	assert.Equal(t, 1, p.TotalLessons)
	assert.Equal(t, 1, p.TotalAssessments)
	assert.Equal(t, map[string]map[string]int{
		"2024-03": {"2024-03-05": 1},
	}, p.TimelineByMonth)
	assert.Equal(t, []string{"2024-03"}, p.Months)
}

func TestTeacherProfileFor_TimelineSkipsUnparsedDates(t *testing.T) {
	ds := makeDataset(
		row("T1", "Asha", "Quiz", "7", "Math", "not-a-timestamp"),
		row("T1", "Asha", "Quiz", "7", "Math", "2024-04-01 10:00:00"),
	)

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	// Both records count; only the dated one appears in the timeline.
	assert.Equal(t, 2, p.TotalAssessments)
	assert.Equal(t, map[string]map[string]int{
		"2024-04": {"2024-04-01": 1},
	}, p.TimelineByMonth)
}

// quizRows builds one quiz per subject for teacher Asha, with distinct
// timestamps so no rows collapse as duplicates.
func quizRows(subjects []string) []dataset.RawRow {
	rows := make([]dataset.RawRow, 0, len(subjects))
	for i, subject := range subjects {
		created := fmt.Sprintf("2024-03-%02d 10:00:00", i+1)
		rows = append(rows, row("T1", "Asha", "Quiz", "7", subject, created))
	}
	return rows
}

func TestTeacherProfileFor_MostTaughtSubject(t *testing.T) {
	tests := []struct {
		name string
		rows []string // subjects of consecutive quizzes
		want string
	}{
		{name: "clear winner", rows: []string{"Math", "Science", "Math"}, want: "Math"},
		{name: "tie keeps first encountered", rows: []string{"Science", "Math", "Math", "Science"}, want: "Science"},
		{name: "single", rows: []string{"History"}, want: "History"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := makeDataset(quizRows(tt.rows)...)
			p, err := TeacherProfileFor(ds, "Asha")
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.MostTaughtSubject)
		})
	}
}

func TestTeacherProfileFor_NoAssessments(t *testing.T) {
	ds := makeDataset(row("T1", "Asha", "Lesson Plan", "7", "Math", "2024-03-05 10:00:00"))

	p, err := TeacherProfileFor(ds, "Asha")
	require.NoError(t, err)

	assert.Equal(t, "N/A", p.MostTaughtSubject)
	assert.Empty(t, p.Grades)
	assert.Empty(t, p.Subjects)
	assert.Equal(t, []string{"Math"}, p.AllSubjects)
	assert.Equal(t, 0, p.TotalAssessments)
}

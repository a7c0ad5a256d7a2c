package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savrainsights/internal/dataset"
)

func row(id, name, activity, grade, subject, createdAt string) dataset.RawRow {
	return dataset.RawRow{
		TeacherID:    id,
		TeacherName:  name,
		ActivityType: activity,
		Grade:        grade,
		Subject:      subject,
		CreatedAt:    createdAt,
	}
}

// makeDataset runs rows through the real normalizer so derived fields
// stay consistent with production loads.
func makeDataset(rows ...dataset.RawRow) *dataset.Dataset {
	return &dataset.Dataset{Records: dataset.Normalize(rows)}
}

// repeat builds n distinct rows for one teacher and activity type.
func repeat(n int, id, name, activity, grade, subject string) []dataset.RawRow {
	rows := make([]dataset.RawRow, 0, n)
	for i := 0; i < n; i++ {
		created := fmt.Sprintf("2024-03-%02d 10:00:00", i%28+1)
		rows = append(rows, row(id, name, activity, grade, subject+fmt.Sprint(i), created))
	}
	return rows
}

func TestLeaderboard_WeightedScoring(t *testing.T) {
	// A: 10 assessments, 0 lessons -> raw 6.0.
	// B: 0 assessments, 10 lessons -> raw 4.0.
	rows := append(
		repeat(10, "T1", "Asha", "Quiz", "7", "Math"),
		repeat(10, "T2", "Binta", "Lesson Plan", "7", "Math")...,
	)

	ranks := Leaderboard(makeDataset(rows...))
	require.Len(t, ranks, 2)

	assert.Equal(t, "Asha", ranks[0].TeacherName)
	assert.Equal(t, 6.0, ranks[0].RawScore)
	assert.Equal(t, 10.0, ranks[0].Score)
	assert.Equal(t, 10, ranks[0].Assessments)
	assert.Equal(t, 0, ranks[0].Lessons)

	assert.Equal(t, "Binta", ranks[1].TeacherName)
	assert.Equal(t, 4.0, ranks[1].RawScore)
	assert.Equal(t, 0.0, ranks[1].Score)
}

func TestLeaderboard_ScoreBounds(t *testing.T) {
	rows := append(
		repeat(5, "T1", "Asha", "Quiz", "7", "Math"),
		append(
			repeat(3, "T2", "Binta", "Question Paper", "8", "Science"),
			repeat(9, "T3", "Chipo", "Lesson Plan", "9", "History")...,
		)...,
	)

	ranks := Leaderboard(makeDataset(rows...))
	require.Len(t, ranks, 3)

	tens, zeros := 0, 0
	for i, r := range ranks {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 10.0)
		if r.Score == 10.0 {
			tens++
		}
		if r.Score == 0.0 {
			zeros++
		}
		if i > 0 {
			assert.GreaterOrEqual(t, ranks[i-1].Score, r.Score)
		}
	}
	assert.Equal(t, 1, tens)
	assert.Equal(t, 1, zeros)
}

func TestLeaderboard_DegenerateScores(t *testing.T) {
	tests := []struct {
		name string
		rows []dataset.RawRow
	}{
		{
			name: "all equal raw scores",
			rows: append(
				repeat(2, "T1", "Asha", "Quiz", "7", "Math"),
				repeat(2, "T2", "Binta", "Quiz", "8", "Science")...,
			),
		},
		{
			name: "single teacher",
			rows: repeat(4, "T1", "Asha", "Quiz", "7", "Math"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranks := Leaderboard(makeDataset(tt.rows...))
			require.NotEmpty(t, ranks)
			for _, r := range ranks {
				assert.Equal(t, 5.0, r.Score)
			}
		})
	}
}

func TestLeaderboard_TieBreakByTeacherID(t *testing.T) {
	// T9 and T2 have identical raw scores; T5 is clearly ahead.
	rows := append(
		repeat(2, "T9", "Zola", "Quiz", "7", "Math"),
		append(
			repeat(2, "T2", "Binta", "Quiz", "8", "Science"),
			repeat(6, "T5", "Eshe", "Quiz", "9", "History")...,
		)...,
	)

	ranks := Leaderboard(makeDataset(rows...))
	require.Len(t, ranks, 3)
	assert.Equal(t, "T5", ranks[0].TeacherID)
	assert.Equal(t, "T2", ranks[1].TeacherID)
	assert.Equal(t, "T9", ranks[2].TeacherID)
	assert.Equal(t, ranks[1].Score, ranks[2].Score)
}

func TestLeaderboard_GradesTaught(t *testing.T) {
	// grades_taught covers all activity, not just assessments.
	ranks := Leaderboard(makeDataset(
		row("T1", "Asha", "Quiz", "9", "Math", "2024-03-05 10:00:00"),
		row("T1", "Asha", "Lesson Plan", "7", "Math", "2024-03-06 10:00:00"),
		row("T1", "Asha", "Quiz", "8", "Science", "2024-03-07 10:00:00"),
		row("T1", "Asha", "Quiz", "8", "History", "2024-03-08 10:00:00"),
		row("T1", "Asha", "Quiz", "bad-grade", "History", "2024-03-09 10:00:00"),
	))
	require.Len(t, ranks, 1)
	assert.Equal(t, []int{7, 8, 9}, ranks[0].GradesTaught)
}

func TestLeaderboard_DuplicateRowInvariance(t *testing.T) {
	base := append(
		repeat(3, "T1", "Asha", "Quiz", "7", "Math"),
		repeat(5, "T2", "Binta", "Lesson Plan", "8", "Science")...,
	)
	withDup := append(append([]dataset.RawRow{}, base...), base[0])

	assert.Equal(t,
		Leaderboard(makeDataset(base...)),
		Leaderboard(makeDataset(withDup...)))
}

func TestLeaderboard_Empty(t *testing.T) {
	assert.Empty(t, Leaderboard(makeDataset()))
}

func TestNormalizeScoreRounding(t *testing.T) {
	assert.Equal(t, 3.33, normalizeScore(1, 0, 3))
	assert.Equal(t, 6.67, normalizeScore(2, 0, 3))
	assert.Equal(t, 5.0, normalizeScore(2, 2, 2))
}

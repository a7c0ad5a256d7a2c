package insights

import (
	"math"
	"sort"

	"savrainsights/internal/dataset"
)

// Leaderboard ranks all teachers by normalized score, highest first.
// Ties are broken by teacher id ascending so the order is deterministic.
func Leaderboard(ds *dataset.Dataset) []TeacherRank {
	type key struct{ id, name string }

	var order []key
	groups := make(map[key]*TeacherRank)
	grades := make(map[key]map[int]struct{})

	for _, r := range ds.Records {
		k := key{r.TeacherID, r.TeacherName}
		rank, ok := groups[k]
		if !ok {
			rank = &TeacherRank{TeacherID: r.TeacherID, TeacherName: r.TeacherName}
			groups[k] = rank
			grades[k] = make(map[int]struct{})
			order = append(order, k)
		}
		if r.IsAssessment {
			rank.Assessments++
		}
		if r.IsLesson {
			rank.Lessons++
		}
		if r.HasGrade {
			grades[k][r.Grade] = struct{}{}
		}
	}

	ranks := make([]TeacherRank, 0, len(order))
	minRaw, maxRaw := math.Inf(1), math.Inf(-1)
	for _, k := range order {
		rank := groups[k]
		rank.RawScore = assessmentWeight*float64(rank.Assessments) + lessonWeight*float64(rank.Lessons)
		rank.GradesTaught = sortedGradeSet(grades[k])
		minRaw = math.Min(minRaw, rank.RawScore)
		maxRaw = math.Max(maxRaw, rank.RawScore)
		ranks = append(ranks, *rank)
	}

	for i := range ranks {
		ranks[i].Score = normalizeScore(ranks[i].RawScore, minRaw, maxRaw)
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Score != ranks[j].Score {
			return ranks[i].Score > ranks[j].Score
		}
		return ranks[i].TeacherID < ranks[j].TeacherID
	})
	return ranks
}

// normalizeScore min-max rescales raw into [0, 10], rounded to two
// decimals. When every raw score is equal the midpoint 5.0 is used for
// all teachers, avoiding the zero division.
func normalizeScore(raw, minRaw, maxRaw float64) float64 {
	if maxRaw == minRaw {
		return neutralScore
	}
	return round2((raw - minRaw) / (maxRaw - minRaw) * 10)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortedGradeSet(set map[int]struct{}) []int {
	grades := make([]int, 0, len(set))
	for g := range set {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	return grades
}

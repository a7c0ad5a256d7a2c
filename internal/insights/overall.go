package insights

import (
	"fmt"
	"sort"
	"strconv"

	"savrainsights/internal/dataset"
)

// Overall builds the dashboard summary. It never fails; an empty dataset
// yields zero totals, empty lists, and no top teacher.
func Overall(ds *dataset.Dataset) *Summary {
	s := &Summary{
		Grades:        []string{},
		Subjects:      []string{},
		Leaderboard:   []TeacherRank{},
		GradeChart:    ChartSeries{Labels: []string{}, Data: []int{}},
		ActivityChart: ChartSeries{Labels: []string{}, Data: []int{}},
		MonthlyChart:  ChartSeries{Labels: []string{}, Data: []int{}},
	}

	gradeSet := make(map[int]struct{})
	subjectSet := make(map[string]struct{})
	assessmentsByGrade := make(map[int]int)
	activityCounts := make(map[string]int)
	var activityOrder []string
	monthCounts := make(map[string]int)

	for _, r := range ds.Records {
		s.TotalActivities++
		if r.IsAssessment {
			s.TotalAssessments++
		}
		if r.IsLesson {
			s.TotalLessons++
		}
		if r.IsQuiz {
			s.TotalQuizzes++
		}
		if r.IsQuestionPaper {
			s.TotalQuestionPapers++
		}
		if r.HasGrade {
			gradeSet[r.Grade] = struct{}{}
			if r.IsAssessment {
				assessmentsByGrade[r.Grade]++
			}
		}
		if r.Subject != "" {
			subjectSet[r.Subject] = struct{}{}
		}

		label := string(r.Activity)
		if _, seen := activityCounts[label]; !seen {
			activityOrder = append(activityOrder, label)
		}
		activityCounts[label]++

		if r.Month != "" {
			monthCounts[r.Month]++
		}
	}

	for _, g := range sortedGradeSet(gradeSet) {
		s.Grades = append(s.Grades, strconv.Itoa(g))
	}
	s.Subjects = sortedStringSet(subjectSet)

	s.Leaderboard = Leaderboard(ds)
	s.TotalTeachers = len(s.Leaderboard)
	if len(s.Leaderboard) > 0 {
		top := s.Leaderboard[0]
		s.TopTeacher = &top
	}

	for _, g := range sortedIntKeys(assessmentsByGrade) {
		s.GradeChart.Labels = append(s.GradeChart.Labels, fmt.Sprintf("Grade %d", g))
		s.GradeChart.Data = append(s.GradeChart.Data, assessmentsByGrade[g])
	}

	// Activity types chart in order of first appearance in the source.
	for _, label := range activityOrder {
		s.ActivityChart.Labels = append(s.ActivityChart.Labels, label)
		s.ActivityChart.Data = append(s.ActivityChart.Data, activityCounts[label])
	}

	// One point per observed month, chronological, no gap filling.
	months := make([]string, 0, len(monthCounts))
	for m := range monthCounts {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		s.MonthlyChart.Labels = append(s.MonthlyChart.Labels, m)
		s.MonthlyChart.Data = append(s.MonthlyChart.Data, monthCounts[m])
	}

	return s
}

// DistinctGrades lists every observed grade, ascending, as display
// strings.
func DistinctGrades(ds *dataset.Dataset) []string {
	gradeSet := make(map[int]struct{})
	for _, r := range ds.Records {
		if r.HasGrade {
			gradeSet[r.Grade] = struct{}{}
		}
	}
	grades := make([]string, 0, len(gradeSet))
	for _, g := range sortedGradeSet(gradeSet) {
		grades = append(grades, strconv.Itoa(g))
	}
	return grades
}

// DistinctTeachers lists every teacher identity in leaderboard order.
func DistinctTeachers(ds *dataset.Dataset) []TeacherIdentity {
	ranks := Leaderboard(ds)
	teachers := make([]TeacherIdentity, 0, len(ranks))
	for _, rank := range ranks {
		teachers = append(teachers, TeacherIdentity{
			TeacherID:   rank.TeacherID,
			TeacherName: rank.TeacherName,
		})
	}
	return teachers
}

func sortedIntKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

package insights

import (
	"fmt"
	"sort"
	"strconv"

	"savrainsights/internal/dataset"
)

// TeacherProfileFor builds the drill-down view for one teacher, matched
// by exact display name. Returns ErrTeacherNotFound when no record
// carries the name.
func TeacherProfileFor(ds *dataset.Dataset, name string) (*TeacherProfile, error) {
	var records []dataset.Record
	for _, r := range ds.Records {
		if r.TeacherName == name {
			records = append(records, r)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTeacherNotFound, name)
	}

	p := &TeacherProfile{
		TeacherName:      name,
		Grades:           []string{},
		Subjects:         []string{},
		AllSubjects:      []string{},
		GradeSubjectData: make(map[string]map[string]int),
		TimelineByMonth:  make(map[string]map[string]int),
		Months:           []string{},
	}

	// Scoring stays single-sourced in the leaderboard computation.
	for _, rank := range Leaderboard(ds) {
		if rank.TeacherName == name {
			p.Score = rank.Score
			break
		}
	}

	gradeSet := make(map[int]struct{})
	subjectSet := make(map[string]struct{})
	allSubjectSet := make(map[string]struct{})
	subjectCounts := make(map[string]int)
	var subjectOrder []string

	for _, r := range records {
		if r.Subject != "" {
			allSubjectSet[r.Subject] = struct{}{}
		}
		switch {
		case r.IsLesson:
			p.TotalLessons++
		case r.IsQuiz:
			p.TotalQuizzes++
		case r.IsQuestionPaper:
			p.TotalQuestionPapers++
		}
		if !r.IsAssessment {
			continue
		}

		subjectSet[r.Subject] = struct{}{}
		if _, seen := subjectCounts[r.Subject]; !seen {
			subjectOrder = append(subjectOrder, r.Subject)
		}
		subjectCounts[r.Subject]++

		if r.HasGrade {
			gradeSet[r.Grade] = struct{}{}
			gradeKey := strconv.Itoa(r.Grade)
			if p.GradeSubjectData[gradeKey] == nil {
				p.GradeSubjectData[gradeKey] = make(map[string]int)
			}
			p.GradeSubjectData[gradeKey][r.Subject]++
		}

		if r.Date != "" {
			if p.TimelineByMonth[r.Month] == nil {
				p.TimelineByMonth[r.Month] = make(map[string]int)
			}
			p.TimelineByMonth[r.Month][r.Date]++
		}
	}
	p.TotalAssessments = p.TotalQuizzes + p.TotalQuestionPapers

	for _, g := range sortedGradeSet(gradeSet) {
		p.Grades = append(p.Grades, strconv.Itoa(g))
	}
	p.Subjects = sortedStringSet(subjectSet)
	p.AllSubjects = sortedStringSet(allSubjectSet)
	for m := range p.TimelineByMonth {
		p.Months = append(p.Months, m)
	}
	sort.Strings(p.Months)
	p.MostTaughtSubject = mostFrequent(subjectOrder, subjectCounts)

	return p, nil
}

// mostFrequent picks the subject with the highest count; ties keep the
// first-encountered subject.
func mostFrequent(order []string, counts map[string]int) string {
	best, bestCount := "N/A", 0
	for _, s := range order {
		if counts[s] > bestCount {
			best, bestCount = s, counts[s]
		}
	}
	return best
}

func sortedStringSet(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

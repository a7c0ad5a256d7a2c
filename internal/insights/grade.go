package insights

import (
	"fmt"
	"sort"

	"savrainsights/internal/dataset"
)

// GradeProfileFor builds the drill-down view for one grade. The match is
// numeric; records without a parsable grade never match. Returns
// ErrGradeNotFound when no record carries the grade.
func GradeProfileFor(ds *dataset.Dataset, grade int) (*GradeProfile, error) {
	var records []dataset.Record
	for _, r := range ds.Records {
		if r.HasGrade && r.Grade == grade {
			records = append(records, r)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrGradeNotFound, grade)
	}

	p := &GradeProfile{
		Grade:       grade,
		TeacherData: []TeacherCount{},
		Teachers:    []string{},
	}

	counts := make(map[string]int)
	teacherSet := make(map[string]struct{})
	for _, r := range records {
		teacherSet[r.TeacherName] = struct{}{}
		if r.IsAssessment {
			p.TotalAssessments++
			counts[r.TeacherName]++
		}
	}

	// Only teachers with assessment activity appear in the breakdown, so
	// every entry has count > 0.
	for teacher, count := range counts {
		p.TeacherData = append(p.TeacherData, TeacherCount{Teacher: teacher, Count: count})
	}
	sort.Slice(p.TeacherData, func(i, j int) bool {
		return p.TeacherData[i].Teacher < p.TeacherData[j].Teacher
	})

	p.Teachers = sortedStringSet(teacherSet)
	return p, nil
}

package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrIdentityConflict is returned by strict loads when teacher names and
// ids do not map one-to-one within a dataset.
var ErrIdentityConflict = errors.New("teacher identity mapping is ambiguous")

// Normalize turns raw source rows into canonical records: exact-duplicate
// rows collapse to their first occurrence, timestamps and grades are
// parsed, and activity flags are derived. Row-level defects (bad
// timestamp, unknown type, non-numeric grade) leave the affected derived
// fields absent rather than failing the load.
func Normalize(rows []RawRow) []Record {
	seen := make(map[RawRow]struct{}, len(rows))
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		records = append(records, normalizeRow(row))
	}
	return records
}

func normalizeRow(row RawRow) Record {
	r := Record{
		TeacherID:   row.TeacherID,
		TeacherName: row.TeacherName,
		Activity:    ActivityType(row.ActivityType),
		Subject:     row.Subject,
		CreatedAt:   row.CreatedAt,
	}

	switch r.Activity {
	case ActivityLessonPlan:
		r.IsLesson = true
	case ActivityQuiz:
		r.IsQuiz = true
		r.IsAssessment = true
	case ActivityQuestionPaper:
		r.IsQuestionPaper = true
		r.IsAssessment = true
	}

	if t, err := time.Parse(CreatedAtLayout, row.CreatedAt); err == nil {
		r.Date = t.Format("2006-01-02")
		r.Month = t.Format("2006-01")
	}

	if g, err := strconv.Atoi(row.Grade); err == nil {
		r.Grade = g
		r.HasGrade = true
	}

	return r
}

// IdentityConflict describes a teacher key that maps to more than one
// counterpart within a single load.
type IdentityConflict struct {
	Key    string
	Values []string
}

func (c IdentityConflict) String() string {
	return fmt.Sprintf("%s maps to %v", c.Key, c.Values)
}

// ValidateIdentities checks the assumed 1:1 mapping between teacher
// names and ids. The returned conflicts are empty when the mapping holds.
func ValidateIdentities(records []Record) []IdentityConflict {
	nameToIDs := make(map[string][]string)
	idToNames := make(map[string][]string)
	for _, r := range records {
		nameToIDs[r.TeacherName] = appendUnique(nameToIDs[r.TeacherName], r.TeacherID)
		idToNames[r.TeacherID] = appendUnique(idToNames[r.TeacherID], r.TeacherName)
	}

	var conflicts []IdentityConflict
	for _, r := range records {
		if ids := nameToIDs[r.TeacherName]; len(ids) > 1 {
			conflicts = append(conflicts, IdentityConflict{Key: "name " + r.TeacherName, Values: ids})
			delete(nameToIDs, r.TeacherName)
		}
		if names := idToNames[r.TeacherID]; len(names) > 1 {
			conflicts = append(conflicts, IdentityConflict{Key: "id " + r.TeacherID, Values: names})
			delete(idToNames, r.TeacherID)
		}
	}
	return conflicts
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

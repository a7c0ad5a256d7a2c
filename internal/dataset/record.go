package dataset

import "time"

// ActivityType is the closed set of activity labels the source produces.
// Labels outside the set pass through unclassified.
type ActivityType string

const (
	ActivityLessonPlan    ActivityType = "Lesson Plan"
	ActivityQuiz          ActivityType = "Quiz"
	ActivityQuestionPaper ActivityType = "Question Paper"
)

// CreatedAtLayout is the fixed timestamp format of the Created_at column.
const CreatedAtLayout = "2006-01-02 15:04:05"

// RawRow is one source row keyed by column, before normalization.
// It is comparable so exact duplicates can be collapsed.
type RawRow struct {
	TeacherID    string
	TeacherName  string
	ActivityType string
	Grade        string
	Subject      string
	CreatedAt    string
}

// Record is one normalized activity entry. Records are immutable once
// built; a reload replaces the whole dataset, never single records.
type Record struct {
	TeacherID   string
	TeacherName string
	Activity    ActivityType
	Subject     string

	// Grade is valid only when HasGrade is true. Records with an
	// unparsable grade still count in type-based aggregates but are
	// excluded from grade-keyed views.
	Grade    int
	HasGrade bool

	// CreatedAt is the raw source timestamp. Date ("2006-01-02") and
	// Month ("2006-01") are empty when CreatedAt does not parse.
	CreatedAt string
	Date      string
	Month     string

	IsAssessment    bool
	IsLesson        bool
	IsQuiz          bool
	IsQuestionPaper bool
}

// Dataset is the canonical in-memory dataset for one load cycle.
type Dataset struct {
	Records  []Record
	LoadedAt time.Time
}

// Known reports whether the label belongs to the closed activity set.
func (a ActivityType) Known() bool {
	switch a {
	case ActivityLessonPlan, ActivityQuiz, ActivityQuestionPaper:
		return true
	}
	return false
}

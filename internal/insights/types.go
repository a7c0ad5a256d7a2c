package insights

import "errors"

// Not-found results are normal negative answers, not system faults; the
// transport layer translates them into 404 responses.
var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrGradeNotFound   = errors.New("grade not found")
)

// Scoring policy: assessments weigh 1.5x lessons in the raw score, and
// raw scores are min-max rescaled into [0, 10] across all teachers.
const (
	assessmentWeight = 0.6
	lessonWeight     = 0.4

	// neutralScore is assigned to every teacher when all raw scores are
	// equal and min-max normalization has no discriminating signal.
	neutralScore = 5.0
)

// TeacherRank is one leaderboard entry. Recomputed on every query,
// never persisted.
type TeacherRank struct {
	TeacherID    string  `json:"teacher_id"`
	TeacherName  string  `json:"teacher_name"`
	Assessments  int     `json:"assessments"`
	Lessons      int     `json:"lessons"`
	RawScore     float64 `json:"-"`
	Score        float64 `json:"score"`
	GradesTaught []int   `json:"grades_taught"`
}

// TeacherIdentity pairs the stable grouping id with the display name.
type TeacherIdentity struct {
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
}

// TeacherProfile is the per-teacher drill-down view. The grade x subject
// matrix, taught grades/subjects, timeline, and most-taught subject are
// scoped to assessment records; the totals and all_subjects cover every
// activity type.
type TeacherProfile struct {
	TeacherName         string                    `json:"teacher_name"`
	Score               float64                   `json:"score"`
	Grades              []string                  `json:"grades"`
	Subjects            []string                  `json:"subjects"`
	AllSubjects         []string                  `json:"all_subjects"`
	GradeSubjectData    map[string]map[string]int `json:"grade_subject_data"`
	TimelineByMonth     map[string]map[string]int `json:"timeline_by_month"`
	Months              []string                  `json:"months"`
	MostTaughtSubject   string                    `json:"most_taught_subject"`
	TotalLessons        int                       `json:"total_lessons"`
	TotalQuizzes        int                       `json:"total_quizzes"`
	TotalQuestionPapers int                       `json:"total_question_papers"`
	TotalAssessments    int                       `json:"total_assessments"`
}

// TeacherCount is one teacher's assessment count within a grade.
type TeacherCount struct {
	Teacher string `json:"teacher"`
	Count   int    `json:"count"`
}

// GradeProfile is the per-grade drill-down view. TeacherData carries
// assessment counts only (always > 0); Teachers lists every teacher with
// any activity at the grade.
type GradeProfile struct {
	Grade            int            `json:"grade"`
	TotalAssessments int            `json:"total_assessments"`
	TeacherData      []TeacherCount `json:"teacher_data"`
	Teachers         []string       `json:"teachers"`
}

// ChartSeries is a label/value series shaped for dashboard charts.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Summary is the overall dashboard view.
type Summary struct {
	TotalTeachers       int           `json:"total_teachers"`
	TotalAssessments    int           `json:"total_assessments"`
	TotalLessons        int           `json:"total_lessons"`
	TotalQuizzes        int           `json:"total_quizzes"`
	TotalQuestionPapers int           `json:"total_question_papers"`
	TotalActivities     int           `json:"total_activities"`
	Grades              []string      `json:"grades"`
	Subjects            []string      `json:"subjects"`
	Leaderboard         []TeacherRank `json:"leaderboard"`
	GradeChart          ChartSeries   `json:"grade_chart"`
	ActivityChart       ChartSeries   `json:"activity_chart"`
	MonthlyChart        ChartSeries   `json:"monthly_chart"`
	TopTeacher          *TeacherRank  `json:"top_teacher,omitempty"`
}

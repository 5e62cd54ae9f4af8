package entity

import (
	"fmt"
	"time"
)

type InterviewStatus string

const (
	InterviewStatusOngoing   InterviewStatus = "ongoing"
	InterviewStatusCompleted InterviewStatus = "completed"
)

type InterviewMode string

const (
	InterviewModeText  InterviewMode = "text"
	InterviewModeVoice InterviewMode = "voice"
)

func (m InterviewMode) Validate() error {
	switch m {
	case InterviewModeText, InterviewModeVoice:
		return nil
	default:
		return fmt.Errorf("%w: unknown interview mode %q", ErrInvalidParameter, string(m))
	}
}

type Speaker string

const (
	SpeakerCandidate   Speaker = "candidate"
	SpeakerInterviewer Speaker = "interviewer"
)

// TranscriptTurn is one utterance in an adaptive interview conversation.
type TranscriptTurn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Exchange is one question/answer pair together with its evaluation.
// In the static flow the five exchanges are created up front with empty
// answers and filled in place; in the adaptive flow they are appended.
type Exchange struct {
	Question     string   `json:"question"`
	Answer       string   `json:"answer,omitempty"`
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
	ModelAnswer  string   `json:"model_answer,omitempty"`
}

// Answered reports whether the exchange slot has received an answer.
func (e Exchange) Answered() bool {
	return e.Answer != ""
}

type Interview struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"owner_id"`
	TargetRole   string           `json:"role"`
	Mode         InterviewMode    `json:"mode"`
	IsAdaptive   bool             `json:"is_adaptive"`
	Status       InterviewStatus  `json:"status"`
	Transcript   []TranscriptTurn `json:"chat_history"`
	Exchanges    []Exchange       `json:"questions"`
	OverallScore *int             `json:"overall_score,omitempty"`
	Revision     int              `json:"-"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// CurrentQuestion returns the latest interviewer turn of an adaptive
// interview. The adaptive flow appends interviewer turns eagerly, so the
// lookup succeeds whenever the interview is ongoing.
func (iv *Interview) CurrentQuestion() (string, bool) {
	for i := len(iv.Transcript) - 1; i >= 0; i-- {
		if iv.Transcript[i].Speaker == SpeakerInterviewer {
			return iv.Transcript[i].Text, true
		}
	}
	return "", false
}

type JobStatus string

const (
	JobStatusApplied      JobStatus = "applied"
	JobStatusInterviewing JobStatus = "interviewing"
	JobStatusOffered      JobStatus = "offered"
	JobStatusRejected     JobStatus = "rejected"
	JobStatusAccepted     JobStatus = "accepted"
)

func (s JobStatus) Validate() error {
	switch s {
	case JobStatusApplied, JobStatusInterviewing, JobStatusOffered, JobStatusRejected, JobStatusAccepted:
		return nil
	default:
		return fmt.Errorf("%w: unknown job status %q", ErrInvalidParameter, string(s))
	}
}

type TimelineEvent struct {
	Event string    `json:"event"`
	Date  time.Time `json:"date"`
}

type Job struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Company   string          `json:"company"`
	Position  string          `json:"position"`
	Location  string          `json:"location,omitempty"`
	Salary    string          `json:"salary,omitempty"`
	Status    JobStatus       `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	Timeline  []TimelineEvent `json:"timeline"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ResumeScore is the ATS compatibility breakdown of a resume.
type ResumeScore struct {
	ATSScore          int      `json:"ats_score"`
	KeywordScore      int      `json:"keyword_score"`
	FormattingScore   int      `json:"formatting_score"`
	CompletenessScore int      `json:"completeness_score"`
	Skills            []string `json:"skills"`
	Suggestions       []string `json:"suggestions"`
}

type PersonalInfo struct {
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	Links    []string `json:"links,omitempty"`
}

type ExperienceEntry struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration,omitempty"`
	Description []string `json:"description,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Duration    string `json:"duration,omitempty"`
}

// OptimizedResume is the ATS-optimized restructuring of a resume.
type OptimizedResume struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Summary      string            `json:"summary,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Education    []EducationEntry  `json:"education,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
}

type ResumeAnalysis struct {
	ResumeScore
	Optimized *OptimizedResume `json:"optimized,omitempty"`
}

type Resume struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"owner_id"`
	TargetRole string         `json:"role"`
	Analysis   ResumeAnalysis `json:"analysis"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DashboardStats aggregates per-user activity for the dashboard view.
type DashboardStats struct {
	Jobs               JobStats           `json:"jobs"`
	WeeklyApplications []WeeklyBucket     `json:"weekly_applications"`
	Interviews         InterviewAggregate `json:"interviews"`
}

type JobStats struct {
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offered      int `json:"offered"`
	Rejected     int `json:"rejected"`
	Accepted     int `json:"accepted"`
	Total        int `json:"total"`
}

type WeeklyBucket struct {
	WeekStart time.Time `json:"week_start"`
	Count     int       `json:"count"`
}

type InterviewAggregate struct {
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

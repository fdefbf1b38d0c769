package models

import "time"

type Revision struct {
	ID             int64     `json:"id"`
	ProblemID      int64     `json:"problem_id"`
	RevisionNumber int       `json:"revision_number"`
	ScheduledDate  Date      `json:"scheduled_date"`
	CompletedDate  *Date     `json:"completed_date,omitempty"`
	Rating         *int      `json:"rating,omitempty"`
	IsCompleted    bool      `json:"is_completed"`
	CreatedAt      time.Time `json:"created_at"`
}

// RevisionWithProblem is a revision joined to its owning problem, annotated
// with the overdue fields derived at read time.
type RevisionWithProblem struct {
	Revision
	IsOverdue      bool    `json:"is_overdue"`
	DaysOverdue    int     `json:"days_overdue"`
	ProblemName    string  `json:"problem_name"`
	Category       string  `json:"category"`
	Question       *string `json:"question"`
	FlashcardTitle *string `json:"flashcard_title"`
	FlashcardCode  *string `json:"flashcard_code"`
}

// CompletionResult confirms a completed revision and its scheduled successor.
type CompletionResult struct {
	NextDate Date `json:"next_date"`
	Interval int  `json:"interval"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Analytics struct {
	TotalProblems     int            `json:"total_problems"`
	TotalRevisions    int            `json:"total_revisions"`
	CurrentStreak     int            `json:"current_streak"`
	CategoryBreakdown []CategoryStat `json:"category_breakdown"`
}

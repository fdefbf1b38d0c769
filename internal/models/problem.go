package models

import "time"

type Problem struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Link           string  `json:"link"`
	Category       string  `json:"category"`
	Question       *string `json:"question"`
	FlashcardTitle *string `json:"flashcard_title"`
	FlashcardCode  *string `json:"flashcard_code"`
	IsArchived     bool    `json:"is_archived"`
	// Computed from the latest scheduled revision; null right after creation
	// in the create response.
	NextRevisionDate *Date     `json:"next_revision_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewProblem is the payload for registering a problem.
type NewProblem struct {
	Name           string  `json:"name"`
	Link           string  `json:"link"`
	Category       string  `json:"category"`
	Question       *string `json:"question"`
	FlashcardTitle *string `json:"flashcard_title"`
	FlashcardCode  *string `json:"flashcard_code"`
}

// RevisionHistoryItem is one entry of a problem's revision history.
type RevisionHistoryItem struct {
	RevisionNumber int   `json:"revision_number"`
	CompletedDate  *Date `json:"completed_date"`
	Rating         *int  `json:"rating"`
}

// ProblemDetail is the full problem view, including archived problems.
type ProblemDetail struct {
	Problem
	Revisions []RevisionHistoryItem `json:"revisions"`
}

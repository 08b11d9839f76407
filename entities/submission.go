package entities

import "time"

const (
	SubmissionNew      = "new"
	SubmissionReplied  = "replied"
	SubmissionArchived = "archived"
)

// Submission is an inbound contact-form message from the website.
// Viewed is tracked server-side so every admin session sees the same unread
// count.
type Submission struct {
	SubmissionID uint      `gorm:"primaryKey" json:"submission_id"`
	Ref          string    `gorm:"uniqueIndex" json:"ref"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company"`
	Message      string    `json:"message"`
	Locale       string    `json:"locale"` // en|de
	Status       string    `json:"status" gorm:"index"` // new|replied|archived
	Viewed       bool      `json:"viewed"`
	CreatedAt    time.Time `json:"created_at"`
}

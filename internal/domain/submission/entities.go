package submission

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound = errors.New("submission: not found")
	// ErrTerminalState guards the review transitions: approved and
	// rejected are terminal, only pending submissions may move.
	ErrTerminalState = errors.New("submission: already reviewed")
)

type Submission struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	SubmissionID string    `gorm:"size:32;uniqueIndex:ux_submissions_submission_id" json:"submission_id"`
	Name         string    `gorm:"size:255" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	Mobile       string    `gorm:"size:32" json:"mobile"`
	Summary      string    `gorm:"type:text" json:"summary"`
	Status       Status    `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Submission) TableName() string { return "submissions" }

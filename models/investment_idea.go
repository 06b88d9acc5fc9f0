// models/investment_idea.go
package models

import (
	"time"
)

// InvestmentStatus is the lifecycle stage of an investment idea.
type InvestmentStatus string

const (
	StatusResearching InvestmentStatus = "Researching"
	StatusWatchlist   InvestmentStatus = "Watchlist"
	StatusInvested    InvestmentStatus = "Invested"
	StatusRejected    InvestmentStatus = "Rejected"
)

// Field length limits for investment ideas.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxNotesLength       = 5000
)

// IdeaDateFormat is the wire format for idea_date values.
const IdeaDateFormat = "2006-01-02"

// AllStatuses returns every valid status in display order.
func AllStatuses() []InvestmentStatus {
	return []InvestmentStatus{
		StatusResearching,
		StatusWatchlist,
		StatusInvested,
		StatusRejected,
	}
}

// IsValid reports whether s is one of the four enumerated statuses.
func (s InvestmentStatus) IsValid() bool {
	switch s {
	case StatusResearching, StatusWatchlist, StatusInvested, StatusRejected:
		return true
	}
	return false
}

// InvestmentIdea represents the investment_ideas table
type InvestmentIdea struct {
	ID          int              `gorm:"primaryKey;column:id" json:"id"`
	Title       string           `gorm:"column:title;size:200" json:"title"`
	Description string           `gorm:"column:description;size:2000" json:"description"`
	IdeaDate    time.Time        `gorm:"column:idea_date;type:date" json:"idea_date"`
	Status      InvestmentStatus `gorm:"column:status;size:20;default:'Researching'" json:"status"`
	Notes       string           `gorm:"column:notes;size:5000" json:"notes"`
	CreatedAt   time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides
func (InvestmentIdea) TableName() string {
	return "investment_ideas"
}

// ===== Request/Response DTOs =====

// InvestmentIdeaCreateRequest for creating investment ideas.
// IdeaDate is a YYYY-MM-DD string; when absent the server's current
// date is used.
type InvestmentIdeaCreateRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	IdeaDate    *string           `json:"idea_date"`
	Status      *InvestmentStatus `json:"status"`
	Notes       string            `json:"notes"`
}

// InvestmentIdeaUpdateRequest for partial updates. A nil field means
// "leave unchanged"; no field is ever reset by omission.
type InvestmentIdeaUpdateRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	IdeaDate    *string           `json:"idea_date"`
	Status      *InvestmentStatus `json:"status"`
	Notes       *string           `json:"notes"`
}

// InvestmentIdeaResponse for API responses
type InvestmentIdeaResponse struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	IdeaDate    string           `json:"idea_date"`
	Status      InvestmentStatus `json:"status"`
	Notes       string           `json:"notes"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToResponse converts InvestmentIdea to InvestmentIdeaResponse
func (i *InvestmentIdea) ToResponse() InvestmentIdeaResponse {
	return InvestmentIdeaResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		IdeaDate:    i.IdeaDate.Format(IdeaDateFormat),
		Status:      i.Status,
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

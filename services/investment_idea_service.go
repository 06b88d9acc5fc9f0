package services

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"investment-ideas-api/models"
	"investment-ideas-api/utils"
)

// ErrNotFound is the non-exceptional outcome for operations that
// target an id with no stored idea. Callers check it with errors.Is.
var ErrNotFound = errors.New("investment idea not found")

// ValidationError reports an input that violates a field constraint.
// It is raised before any storage mutation is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IdeaService is the sole gateway to the investment_ideas table.
type IdeaService struct {
	db *gorm.DB
}

func NewIdeaService(db *gorm.DB) *IdeaService {
	return &IdeaService{db: db}
}

// Create validates the request, applies the documented defaults and
// stores a new idea. The returned row carries the generated id and
// identical created_at / updated_at timestamps.
func (s *IdeaService) Create(req *models.InvestmentIdeaCreateRequest) (*models.InvestmentIdea, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	idea := &models.InvestmentIdea{
		Title:       req.Title,
		Description: req.Description,
		IdeaDate:    today(now),
		Status:      models.StatusResearching,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IdeaDate != nil {
		parsed, err := utils.ParseDate(*req.IdeaDate)
		if err != nil {
			return nil, newValidationError("idea_date", "must be a YYYY-MM-DD date")
		}
		idea.IdeaDate = parsed
	}
	if req.Status != nil {
		idea.Status = *req.Status
	}

	if err := s.db.Create(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

// GetAll returns every idea, most recently created first. Ideas that
// share a creation timestamp order newest id first.
func (s *IdeaService) GetAll() ([]models.InvestmentIdea, error) {
	ideas := make([]models.InvestmentIdea, 0)
	err := s.db.
		Order("created_at DESC").
		Order("id DESC").
		Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// GetByID returns the idea with the given id, or ErrNotFound.
func (s *IdeaService) GetByID(id int) (*models.InvestmentIdea, error) {
	var idea models.InvestmentIdea
	if err := s.db.First(&idea, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &idea, nil
}

// Update applies the non-nil fields of req to the stored idea inside
// a single transaction. Fields absent from the request keep their
// prior values; updated_at is refreshed on every successful update,
// even when no field value actually changed.
func (s *IdeaService) Update(id int, req *models.InvestmentIdeaUpdateRequest) (*models.InvestmentIdea, error) {
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	var idea models.InvestmentIdea
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&idea, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := mergeUpdate(&idea, req); err != nil {
			return err
		}
		idea.UpdatedAt = time.Now()
		return tx.Save(&idea).Error
	})
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByStatus returns the ideas whose status equals the given value,
// in the same order as GetAll. Zero matches yield an empty slice.
func (s *IdeaService) GetByStatus(status models.InvestmentStatus) ([]models.InvestmentIdea, error) {
	if !status.IsValid() {
		return nil, newValidationError("status", "must be one of Researching, Watchlist, Invested, Rejected")
	}

	ideas := make([]models.InvestmentIdea, 0)
	err := s.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

// Delete removes the idea permanently. It reports false without
// mutating anything when the id does not exist.
func (s *IdeaService) Delete(id int) (bool, error) {
	result := s.db.Delete(&models.InvestmentIdea{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// mergeUpdate copies each present field of req onto idea. req has
// already been validated, so the date re-parse cannot fail here
// except through a programming error, which is still surfaced.
func mergeUpdate(idea *models.InvestmentIdea, req *models.InvestmentIdeaUpdateRequest) error {
	if req.Title != nil {
		idea.Title = *req.Title
	}
	if req.Description != nil {
		idea.Description = *req.Description
	}
	if req.IdeaDate != nil {
		parsed, err := utils.ParseDate(*req.IdeaDate)
		if err != nil {
			return newValidationError("idea_date", "must be a YYYY-MM-DD date")
		}
		idea.IdeaDate = parsed
	}
	if req.Status != nil {
		idea.Status = *req.Status
	}
	if req.Notes != nil {
		idea.Notes = *req.Notes
	}
	return nil
}

func validateCreate(req *models.InvestmentIdeaCreateRequest) error {
	if req.Title == "" {
		return newValidationError("title", "is required")
	}
	if err := validateLengths(req.Title, req.Description, req.Notes); err != nil {
		return err
	}
	if req.Status != nil && !req.Status.IsValid() {
		return newValidationError("status", "must be one of Researching, Watchlist, Invested, Rejected")
	}
	if req.IdeaDate != nil {
		if _, err := utils.ParseDate(*req.IdeaDate); err != nil {
			return newValidationError("idea_date", "must be a YYYY-MM-DD date")
		}
	}
	return nil
}

func validateUpdate(req *models.InvestmentIdeaUpdateRequest) error {
	if req.Title != nil {
		if *req.Title == "" {
			return newValidationError("title", "cannot be empty")
		}
		if utf8.RuneCountInString(*req.Title) > models.MaxTitleLength {
			return newValidationError("title", fmt.Sprintf("must be at most %d characters", models.MaxTitleLength))
		}
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > models.MaxDescriptionLength {
		return newValidationError("description", fmt.Sprintf("must be at most %d characters", models.MaxDescriptionLength))
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > models.MaxNotesLength {
		return newValidationError("notes", fmt.Sprintf("must be at most %d characters", models.MaxNotesLength))
	}
	if req.Status != nil && !req.Status.IsValid() {
		return newValidationError("status", "must be one of Researching, Watchlist, Invested, Rejected")
	}
	if req.IdeaDate != nil {
		if _, err := utils.ParseDate(*req.IdeaDate); err != nil {
			return newValidationError("idea_date", "must be a YYYY-MM-DD date")
		}
	}
	return nil
}

func validateLengths(title, description, notes string) error {
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return newValidationError("title", fmt.Sprintf("must be at most %d characters", models.MaxTitleLength))
	}
	if utf8.RuneCountInString(description) > models.MaxDescriptionLength {
		return newValidationError("description", fmt.Sprintf("must be at most %d characters", models.MaxDescriptionLength))
	}
	if utf8.RuneCountInString(notes) > models.MaxNotesLength {
		return newValidationError("notes", fmt.Sprintf("must be at most %d characters", models.MaxNotesLength))
	}
	return nil
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

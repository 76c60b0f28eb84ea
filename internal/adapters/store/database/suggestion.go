package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"gorm.io/gorm"
)

func (s *Store) CreateSuggestion(ctx context.Context, suggestion *model.UserSuggestion) error {
	suggestion.Status = model.SuggestionPending
	if err := s.db.WithContext(ctx).Create(suggestion).Error; err != nil {
		return fmt.Errorf("failed create suggestion: %w", err)
	}

	return nil
}

func (s *Store) GetSuggestion(ctx context.Context, suggestionID uint) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}
	err := s.db.WithContext(ctx).Preload("User").Preload("SparePart").
		First(&suggestion, suggestionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return suggestion, errstore.ErrNotFoundData
		}
		return suggestion, fmt.Errorf("failed get suggestion: %w", err)
	}

	return suggestion, nil
}

func (s *Store) ListSuggestions(ctx context.Context, status model.SuggestionStatus) ([]*model.UserSuggestion, error) {
	suggestions := []*model.UserSuggestion{}
	tx := s.db.WithContext(ctx).Preload("User").Preload("SparePart")
	if status != "" {
		tx = tx.Where(&model.UserSuggestion{Status: status})
	}
	if err := tx.Order("created_at desc").Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("failed get suggestions: %w", err)
	}

	return suggestions, nil
}

func (s *Store) ListUserSuggestions(ctx context.Context, userID uint) ([]*model.UserSuggestion, error) {
	suggestions := []*model.UserSuggestion{}
	err := s.db.WithContext(ctx).Preload("SparePart").
		Where(&model.UserSuggestion{UserID: userID}).
		Order("created_at desc").
		Find(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("failed get user suggestions: %w", err)
	}

	return suggestions, nil
}

// ApproveSuggestion moves a pending suggestion to approved and materializes
// the ledger record inside the same transaction. For analog suggestions
// without an existing target part, the staged data is used to create one
// first. The created records outlive the suggestion itself.
func (s *Store) ApproveSuggestion(ctx context.Context, suggestionID, adminID uint) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&suggestion, suggestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get suggestion: %w", err)
		}
		if suggestion.Status != model.SuggestionPending {
			return errstore.ErrSuggestionNotPending
		}

		switch suggestion.Type {
		case model.SuggestionAnalog:
			if err := s.materializeAnalog(tx, &suggestion); err != nil {
				return err
			}
		case model.SuggestionCompatibility:
			if err := s.materializeCompatibility(tx, &suggestion); err != nil {
				return err
			}
		}

		now := time.Now()
		suggestion.Status = model.SuggestionApproved
		suggestion.ApprovedBy = &adminID
		suggestion.ApprovedAt = &now
		if err := tx.Save(&suggestion).Error; err != nil {
			return fmt.Errorf("failed save suggestion: %w", err)
		}

		return nil
	})
	if err != nil {
		return suggestion, err
	}

	return suggestion, nil
}

func (s *Store) materializeAnalog(tx *gorm.DB, suggestion *model.UserSuggestion) error {
	data := suggestion.Data
	if suggestion.AnalogSparePartID == nil {
		if data.AnalogArticle == "" {
			return errstore.ErrAnalogTargetUnknown
		}
		// The proposed analog does not exist in the catalog yet, create it
		// unavailable with price and stock to be filled in later.
		source := model.SparePart{}
		if err := tx.First(&source, suggestion.SparePartID).Error; err != nil {
			return fmt.Errorf("failed get source part: %w", err)
		}
		part := model.SparePart{
			Name:         data.AnalogDescription,
			PartNumber:   strings.ToUpper(data.AnalogArticle),
			Manufacturer: data.AnalogBrand,
			Slug:         model.Slugify(data.AnalogBrand, data.AnalogArticle),
			Description:  data.AnalogDescription,
			CategoryID:   source.CategoryID,
		}
		if err := tx.Create(&part).Error; err != nil {
			return fmt.Errorf("failed create analog part: %w", err)
		}
		suggestion.AnalogSparePartID = &part.ID
	}

	isDirect := data.AnalogType != "indirect"
	if err := upsertAnalog(tx, suggestion.SparePartID, *suggestion.AnalogSparePartID, isDirect, suggestion.Comment); err != nil {
		return err
	}
	// Direct analogs are symmetric, mirror the edge.
	if isDirect {
		if err := upsertAnalog(tx, *suggestion.AnalogSparePartID, suggestion.SparePartID, true, suggestion.Comment); err != nil {
			return err
		}
	}

	return nil
}

func upsertAnalog(tx *gorm.DB, sparePartID, analogID uint, isDirect bool, notes string) error {
	analog := model.SparePartAnalog{}
	err := tx.Where(&model.SparePartAnalog{SparePartID: sparePartID, AnalogSparePartID: analogID}).
		First(&analog).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed find analog: %w", err)
	}
	analog.SparePartID = sparePartID
	analog.AnalogSparePartID = analogID
	analog.IsDirect = isDirect
	analog.Notes = notes
	analog.IsVerified = true
	if err := tx.Save(&analog).Error; err != nil {
		return fmt.Errorf("failed save analog: %w", err)
	}

	return nil
}

func (s *Store) materializeCompatibility(tx *gorm.DB, suggestion *model.UserSuggestion) error {
	if suggestion.CarModelID == nil {
		return errstore.ErrNotFoundData
	}
	data := suggestion.Data

	compat := model.SparePartCompatibility{}
	query := tx.Where(&model.SparePartCompatibility{
		SparePartID: suggestion.SparePartID,
		CarModelID:  *suggestion.CarModelID,
	})
	err := query.First(&compat).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed find compatibility: %w", err)
	}
	compat.SparePartID = suggestion.SparePartID
	compat.CarModelID = *suggestion.CarModelID
	compat.CarEngineID = data.CarEngineID
	compat.StartYear = data.StartYear
	compat.EndYear = data.EndYear
	compat.Notes = suggestion.Comment
	compat.IsVerified = true
	if err := tx.Save(&compat).Error; err != nil {
		return fmt.Errorf("failed save compatibility: %w", err)
	}

	return nil
}

// RejectSuggestion is terminal as well, but touches no ledger.
func (s *Store) RejectSuggestion(ctx context.Context, suggestionID, adminID uint, adminComment string) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&suggestion, suggestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get suggestion: %w", err)
		}
		if suggestion.Status != model.SuggestionPending {
			return errstore.ErrSuggestionNotPending
		}

		now := time.Now()
		suggestion.Status = model.SuggestionRejected
		suggestion.AdminComment = adminComment
		suggestion.ApprovedBy = &adminID
		suggestion.ApprovedAt = &now
		if err := tx.Save(&suggestion).Error; err != nil {
			return fmt.Errorf("failed save suggestion: %w", err)
		}

		return nil
	})
	if err != nil {
		return suggestion, err
	}

	return suggestion, nil
}

// DeleteSuggestion removes the suggestion row only, materialized analog or
// compatibility records are never cascaded.
func (s *Store) DeleteSuggestion(ctx context.Context, suggestionID uint) error {
	result := s.db.WithContext(ctx).Delete(&model.UserSuggestion{}, suggestionID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed delete suggestion: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

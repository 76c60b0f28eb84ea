package autoparts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playmixer/autoparts/internal/adapters/metrics"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
)

type AnalogSuggestionRequest struct {
	UserID      uint
	SparePartID uint
	Article     string
	Brand       string
	Description string
	AnalogType  string
	Comment     string
}

type CompatibilitySuggestionRequest struct {
	UserID      uint
	SparePartID uint
	CarModelID  uint
	CarEngineID *uint
	StartYear   *int
	EndYear     *int
	Comment     string
}

type suggestionEvent struct {
	SuggestionID uint                 `json:"suggestion_id"`
	Type         model.SuggestionType `json:"type"`
	Status       string               `json:"status"`
	UserID       uint                 `json:"user_id"`
}

// SuggestAnalog files a moderation request for an interchangeable part. When
// the proposed analog is unknown to the catalog its identifying data is
// staged in the suggestion payload and the part is created on approval.
func (a *AutoParts) SuggestAnalog(ctx context.Context, req AnalogSuggestionRequest) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}
	if req.Article == "" || req.Brand == "" {
		return suggestion, fmt.Errorf("%w: article and brand are required", ErrSuggestionNotValid)
	}
	analogType := req.AnalogType
	if analogType == "" {
		analogType = "direct"
	}
	if analogType != "direct" && analogType != "indirect" && analogType != "universal" {
		return suggestion, fmt.Errorf("%w: unknown analog type %q", ErrSuggestionNotValid, req.AnalogType)
	}

	if _, err := a.store.GetSparePart(ctx, req.SparePartID); err != nil {
		return suggestion, fmt.Errorf("failed getting spare part: %w", err)
	}

	suggestion = model.UserSuggestion{
		UserID:      req.UserID,
		Type:        model.SuggestionAnalog,
		SparePartID: req.SparePartID,
		Comment:     req.Comment,
		Data: model.SuggestionData{
			AnalogArticle:     strings.TrimSpace(req.Article),
			AnalogBrand:       strings.TrimSpace(req.Brand),
			AnalogDescription: req.Description,
			AnalogType:        analogType,
			NeedCreatePart:    true,
		},
	}

	existing, err := a.store.FindSparePartByNumber(ctx, suggestion.Data.AnalogArticle, suggestion.Data.AnalogBrand)
	if err != nil && !errors.Is(err, errstore.ErrNotFoundData) {
		return suggestion, fmt.Errorf("failed find analog part: %w", err)
	}
	if err == nil {
		suggestion.AnalogSparePartID = &existing.ID
		suggestion.Data.NeedCreatePart = false
	}

	if err := a.store.CreateSuggestion(ctx, &suggestion); err != nil {
		return suggestion, fmt.Errorf("failed create suggestion: %w", err)
	}
	metrics.SuggestionsSubmittedTotal.WithLabelValues(string(model.SuggestionAnalog)).Inc()

	return suggestion, nil
}

// SuggestCompatibility files a moderation request for a part/model fitment.
func (a *AutoParts) SuggestCompatibility(ctx context.Context, req CompatibilitySuggestionRequest) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}

	if _, err := a.store.GetSparePart(ctx, req.SparePartID); err != nil {
		return suggestion, fmt.Errorf("failed getting spare part: %w", err)
	}
	carModel, err := a.store.GetCarModel(ctx, req.CarModelID)
	if err != nil {
		return suggestion, fmt.Errorf("failed getting car model: %w", err)
	}

	suggestion = model.UserSuggestion{
		UserID:      req.UserID,
		Type:        model.SuggestionCompatibility,
		SparePartID: req.SparePartID,
		CarModelID:  &req.CarModelID,
		Comment:     req.Comment,
		Data: model.SuggestionData{
			CarBrandID:  carModel.BrandID,
			CarModelID:  req.CarModelID,
			CarEngineID: req.CarEngineID,
			StartYear:   req.StartYear,
			EndYear:     req.EndYear,
		},
	}

	if err := a.store.CreateSuggestion(ctx, &suggestion); err != nil {
		return suggestion, fmt.Errorf("failed create suggestion: %w", err)
	}
	metrics.SuggestionsSubmittedTotal.WithLabelValues(string(model.SuggestionCompatibility)).Inc()

	return suggestion, nil
}

func (a *AutoParts) GetSuggestion(ctx context.Context, suggestionID uint) (model.UserSuggestion, error) {
	suggestion, err := a.store.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return suggestion, fmt.Errorf("failed getting suggestion: %w", err)
	}
	return suggestion, nil
}

func (a *AutoParts) ListSuggestions(ctx context.Context, status model.SuggestionStatus) ([]*model.UserSuggestion, error) {
	switch status {
	case "", model.SuggestionPending, model.SuggestionApproved, model.SuggestionRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrSuggestionNotValid, status)
	}
	suggestions, err := a.store.ListSuggestions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed getting suggestions: %w", err)
	}
	return suggestions, nil
}

func (a *AutoParts) ListUserSuggestions(ctx context.Context, userID uint) ([]*model.UserSuggestion, error) {
	suggestions, err := a.store.ListUserSuggestions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting user suggestions: %w", err)
	}
	return suggestions, nil
}

// ApproveSuggestion materializes the proposed ledger record and closes the
// suggestion. Only pending suggestions can be approved.
func (a *AutoParts) ApproveSuggestion(ctx context.Context, suggestionID, adminID uint) (model.UserSuggestion, error) {
	suggestion, err := a.store.ApproveSuggestion(ctx, suggestionID, adminID)
	if err != nil {
		return suggestion, fmt.Errorf("failed approve suggestion: %w", err)
	}

	metrics.SuggestionsModeratedTotal.WithLabelValues("approved").Inc()
	a.publish(ctx, fmt.Sprintf("suggestion-%d", suggestion.ID), suggestionEvent{
		SuggestionID: suggestion.ID,
		Type:         suggestion.Type,
		Status:       "approved",
		UserID:       suggestion.UserID,
	})
	a.log.Info("suggestion approved",
		zap.Uint("suggestionID", suggestion.ID),
		zap.Uint("adminID", adminID),
	)

	return suggestion, nil
}

// RejectSuggestion closes the suggestion without touching the ledgers. The
// admin comment is a required justification.
func (a *AutoParts) RejectSuggestion(ctx context.Context, suggestionID, adminID uint, adminComment string) (model.UserSuggestion, error) {
	suggestion := model.UserSuggestion{}
	if strings.TrimSpace(adminComment) == "" {
		return suggestion, ErrCommentRequired
	}

	suggestion, err := a.store.RejectSuggestion(ctx, suggestionID, adminID, adminComment)
	if err != nil {
		return suggestion, fmt.Errorf("failed reject suggestion: %w", err)
	}

	metrics.SuggestionsModeratedTotal.WithLabelValues("rejected").Inc()
	a.publish(ctx, fmt.Sprintf("suggestion-%d", suggestion.ID), suggestionEvent{
		SuggestionID: suggestion.ID,
		Type:         suggestion.Type,
		Status:       "rejected",
		UserID:       suggestion.UserID,
	})

	return suggestion, nil
}

// DeleteSuggestion removes the suggestion at any status. Materialized analog
// and compatibility records stay.
func (a *AutoParts) DeleteSuggestion(ctx context.Context, suggestionID uint) error {
	if err := a.store.DeleteSuggestion(ctx, suggestionID); err != nil {
		return fmt.Errorf("failed delete suggestion: %w", err)
	}
	return nil
}

// DeleteOwnSuggestion lets a user withdraw their own suggestion while it is
// still pending.
func (a *AutoParts) DeleteOwnSuggestion(ctx context.Context, suggestionID, userID uint) error {
	suggestion, err := a.store.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return fmt.Errorf("failed getting suggestion: %w", err)
	}
	if suggestion.UserID != userID {
		return errstore.ErrNotFoundData
	}
	if suggestion.Status != model.SuggestionPending {
		return errstore.ErrSuggestionNotPending
	}

	if err := a.store.DeleteSuggestion(ctx, suggestionID); err != nil {
		return fmt.Errorf("failed delete suggestion: %w", err)
	}

	return nil
}

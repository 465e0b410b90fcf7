package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashabalin/diary-server/internal/logger"
	"github.com/ashabalin/diary-server/internal/model"
)

type Card struct {
	cardStore model.CardStore
	userStore model.UserStore
	logger    *logger.Logger
}

func NewCard(
	cardStore model.CardStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Card {
	return &Card{
		cardStore: cardStore,
		userStore: userStore,
		logger:    logger,
	}
}

// CreateCard persists a new card owned by the given user.
func (s *Card) CreateCard(ctx context.Context, params model.CreateCardParams) (model.Card, error) {
	_, err := s.userStore.GetByID(ctx, params.UserID)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	card := model.Card{
		Title:    params.Title,
		Subtitle: params.Subtitle,
		Body:     params.Body,
		UserID:   params.UserID,
	}

	card, err = s.cardStore.Create(ctx, card)
	if err != nil {
		s.logger.Error("Card service: failed to create card",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Info("Card service: card created",
		"card_id", card.ID,
		"user_id", card.UserID)

	return card, nil
}

// GetCard returns the card with the given id. A missing card yields
// model.ErrNotFound; a card owned by another user yields model.ErrForbidden.
// The two stay distinct, so a non-owner does learn the card exists.
func (s *Card) GetCard(ctx context.Context, userID, cardID int64) (model.Card, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, model.ErrNotFound
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}

	if card.UserID != userID {
		s.logger.Info("Card service: access to foreign card denied",
			"card_id", cardID,
			"owner_id", card.UserID,
			"user_id", userID)
		return model.Card{}, model.ErrForbidden
	}

	return card, nil
}

// ListCards returns the user's cards in insertion order. A user without
// cards gets an empty list, not an error.
func (s *Card) ListCards(ctx context.Context, userID int64) ([]model.Card, error) {
	cards, err := s.cardStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards by user id: %w", err)
	}

	return cards, nil
}

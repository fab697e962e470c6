package giveaway

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/draw"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
	giveawayRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/giveaway"
	itemRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item"
)

// service implements the Service interface
type service struct {
	giveawayRepo giveawayRepo.Repository
	itemRepo     itemRepo.Repository
	selector     draw.Selector
	clock        clock.Clock
}

// New creates a new giveaway service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GiveawayRepo == nil {
		return nil, ErrNilGiveawayRepo
	}

	if cfg.ItemRepo == nil {
		return nil, ErrNilItemRepo
	}

	if cfg.Selector == nil {
		return nil, ErrNilSelector
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		giveawayRepo: cfg.GiveawayRepo,
		itemRepo:     cfg.ItemRepo,
		selector:     cfg.Selector,
		clock:        cfg.Clock,
	}, nil
}

// GetItem looks up an item by ID
func (s *service) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	item, err := s.getItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	return &GetItemOutput{
		Item: item,
	}, nil
}

// CreateGiveaway validates the request and stores an active giveaway
func (s *service) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.WinnersCount < 1 {
		return nil, ErrInvalidWinnersCount
	}

	if input.MessageID == "" {
		return nil, ErrMissingMessage
	}

	now := s.clock.Now()
	if !input.EndTime.After(now) {
		return nil, ErrEndTimeInPast
	}

	item, err := s.getItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	giveaway, err := s.giveawayRepo.CreateGiveaway(ctx, &giveawayRepo.CreateGiveawayInput{
		Giveaway: &models.Giveaway{
			ItemID:       item.ID,
			GuildID:      input.GuildID,
			ChannelID:    input.ChannelID,
			MessageID:    input.MessageID,
			EndTime:      input.EndTime.UTC(),
			WinnersCount: input.WinnersCount,
			Status:       models.GiveawayStatusActive,
			CreatedBy:    input.CreatedBy,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create giveaway: %w", err)
	}

	logger.Info().
		Uint("giveaway_id", giveaway.ID).
		Uint("item_id", item.ID).
		Str("channel_id", giveaway.ChannelID).
		Time("end_time", giveaway.EndTime).
		Int("winners", giveaway.WinnersCount).
		Msg("Giveaway started")

	return &CreateGiveawayOutput{
		Giveaway: giveaway,
		Item:     item,
	}, nil
}

// JoinGiveaway enters a user into the giveaway posted as MessageID
func (s *service) JoinGiveaway(ctx context.Context, input *JoinGiveawayInput) (*JoinGiveawayOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID and user ID cannot be empty")
	}

	giveaway, err := s.giveawayRepo.GetGiveawayByMessage(ctx, &giveawayRepo.GetGiveawayByMessageInput{
		MessageID: input.MessageID,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotActive
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	if !giveaway.IsActive() {
		return nil, ErrGiveawayNotActive
	}

	// The deadline wins over a status the sweeper has not updated yet
	now := s.clock.Now()
	if giveaway.HasExpired(now) {
		return nil, ErrGiveawayExpired
	}

	alreadyJoined := false
	err = s.giveawayRepo.AddParticipant(ctx, &giveawayRepo.AddParticipantInput{
		GiveawayID: giveaway.ID,
		UserID:     input.UserID,
		JoinedAt:   now,
	})
	if err != nil {
		if !errors.Is(err, giveawayRepo.ErrAlreadyParticipating) {
			return nil, fmt.Errorf("failed to join giveaway: %w", err)
		}
		alreadyJoined = true
	}

	count, err := s.giveawayRepo.CountParticipants(ctx, &giveawayRepo.CountParticipantsInput{
		GiveawayID: giveaway.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	item, err := s.getItem(ctx, giveaway.ItemID)
	if err != nil {
		return nil, err
	}

	return &JoinGiveawayOutput{
		Giveaway:         giveaway,
		Item:             item,
		ParticipantCount: count,
		AlreadyJoined:    alreadyJoined,
	}, nil
}

// CancelGiveaway moves an active giveaway to cancelled
func (s *service) CancelGiveaway(ctx context.Context, input *CancelGiveawayInput) (*CancelGiveawayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GiveawayID == 0 {
		return nil, ErrGiveawayNotActive
	}

	now := s.clock.Now()
	err := s.giveawayRepo.CancelGiveaway(ctx, &giveawayRepo.CancelGiveawayInput{
		GiveawayID:  input.GiveawayID,
		CancelledAt: now,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotActive) {
			return nil, ErrGiveawayNotActive
		}
		return nil, fmt.Errorf("failed to cancel giveaway: %w", err)
	}

	giveaway, err := s.giveawayRepo.GetGiveaway(ctx, &giveawayRepo.GetGiveawayInput{
		GiveawayID: input.GiveawayID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reload cancelled giveaway: %w", err)
	}

	count, err := s.giveawayRepo.CountParticipants(ctx, &giveawayRepo.CountParticipantsInput{
		GiveawayID: giveaway.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	item, err := s.getItem(ctx, giveaway.ItemID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Uint("giveaway_id", giveaway.ID).
		Int("participants", count).
		Msg("Giveaway cancelled")

	return &CancelGiveawayOutput{
		Giveaway:         giveaway,
		Item:             item,
		ParticipantCount: count,
	}, nil
}

// ListExpiredGiveaways returns active giveaways with end time at or before now
func (s *service) ListExpiredGiveaways(ctx context.Context, input *ListExpiredGiveawaysInput) (*ListExpiredGiveawaysOutput, error) {
	output, err := s.giveawayRepo.ListExpired(ctx, &giveawayRepo.ListExpiredInput{
		Now: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expired giveaways: %w", err)
	}

	return &ListExpiredGiveawaysOutput{
		Giveaways: output.Giveaways,
	}, nil
}

// EndGiveaway draws winners among the participants and ends the giveaway.
// A giveaway that is no longer active is left untouched.
func (s *service) EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	giveaway, err := s.giveawayRepo.GetGiveaway(ctx, &giveawayRepo.GetGiveawayInput{
		GiveawayID: input.GiveawayID,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotFound) {
			return nil, ErrGiveawayNotActive
		}
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}

	if !giveaway.IsActive() {
		return nil, ErrGiveawayNotActive
	}

	participants, err := s.giveawayRepo.ListParticipants(ctx, &giveawayRepo.ListParticipantsInput{
		GiveawayID: giveaway.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	winners := s.selector.Select(participants.UserIDs, giveaway.WinnersCount)

	now := s.clock.Now()
	err = s.giveawayRepo.FinalizeGiveaway(ctx, &giveawayRepo.FinalizeGiveawayInput{
		GiveawayID: giveaway.ID,
		WinnerIDs:  winners,
		EndedAt:    now,
	})
	if err != nil {
		if errors.Is(err, giveawayRepo.ErrGiveawayNotActive) {
			return nil, ErrGiveawayNotActive
		}
		return nil, fmt.Errorf("failed to finalize giveaway: %w", err)
	}

	giveaway.Status = models.GiveawayStatusEnded
	giveaway.UpdatedAt = now

	item, err := s.getItem(ctx, giveaway.ItemID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Uint("giveaway_id", giveaway.ID).
		Int("participants", len(participants.UserIDs)).
		Strs("winners", winners).
		Msg("Giveaway ended")

	return &EndGiveawayOutput{
		Giveaway:         giveaway,
		Item:             item,
		WinnerIDs:        winners,
		ParticipantCount: len(participants.UserIDs),
	}, nil
}

func (s *service) getItem(ctx context.Context, itemID uint) (*models.Item, error) {
	if itemID == 0 {
		return nil, ErrItemNotFound
	}

	item, err := s.itemRepo.GetItem(ctx, &itemRepo.GetItemInput{
		ItemID: itemID,
	})
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", itemID, err)
	}

	return item, nil
}

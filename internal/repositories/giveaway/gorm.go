package giveaway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

var (
	// ErrGiveawayNotFound is returned when a giveaway is not found
	ErrGiveawayNotFound = errors.New("giveaway not found")

	// ErrGiveawayNotActive is returned when a transition targets a giveaway that is missing or already ended or cancelled
	ErrGiveawayNotActive = errors.New("giveaway not found or not active")

	// ErrAlreadyParticipating is returned when the user already joined the giveaway
	ErrAlreadyParticipating = errors.New("user already participating")
)

// Config holds configuration for the GORM giveaway repository
type Config struct {
	DB *gorm.DB
}

// gormRepository implements the Repository interface using GORM
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new GORM-backed giveaway repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// CreateGiveaway inserts the giveaway
func (r *gormRepository) CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.Giveaway == nil {
		return nil, errors.New("input and giveaway cannot be nil")
	}

	g := input.Giveaway
	if g.ItemID == 0 || g.MessageID == "" {
		return nil, errors.New("item ID and message ID are required")
	}
	if g.Status == "" {
		g.Status = models.GiveawayStatusActive
	}
	g.EndTime = g.EndTime.UTC()

	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, fmt.Errorf("failed to create giveaway: %w", err)
	}

	return g, nil
}

// GetGiveaway retrieves a giveaway by ID
func (r *gormRepository) GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error) {
	if input == nil || input.GiveawayID == 0 {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	var g models.Giveaway
	if err := r.db.WithContext(ctx).First(&g, input.GiveawayID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway %d: %w", input.GiveawayID, err)
	}

	return &g, nil
}

// GetGiveawayByMessage retrieves a giveaway by its public message ID
func (r *gormRepository) GetGiveawayByMessage(ctx context.Context, input *GetGiveawayByMessageInput) (*models.Giveaway, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	var g models.Giveaway
	err := r.db.WithContext(ctx).
		Where("message_id = ?", input.MessageID).
		Order("id desc").
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiveawayNotFound
		}
		return nil, fmt.Errorf("failed to get giveaway for message %s: %w", input.MessageID, err)
	}

	return &g, nil
}

// ListExpired returns active giveaways past their deadline, oldest deadline first
func (r *gormRepository) ListExpired(ctx context.Context, input *ListExpiredInput) (*ListExpiredOutput, error) {
	if input == nil || input.Now.IsZero() {
		return nil, errors.New("input and now cannot be empty")
	}

	var giveaways []*models.Giveaway
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_time <= ?", models.GiveawayStatusActive, input.Now.UTC()).
		Order("end_time asc, id asc").
		Find(&giveaways).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired giveaways: %w", err)
	}

	return &ListExpiredOutput{
		Giveaways: giveaways,
	}, nil
}

// AddParticipant inserts an entry, relying on the unique (giveaway_id, user_id) index
func (r *gormRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) error {
	if input == nil || input.GiveawayID == 0 || input.UserID == "" {
		return errors.New("input, giveaway ID and user ID cannot be empty")
	}

	participant := &models.Participant{
		GiveawayID: input.GiveawayID,
		UserID:     input.UserID,
		JoinedAt:   input.JoinedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyParticipating
		}
		return fmt.Errorf("failed to add participant %s to giveaway %d: %w", input.UserID, input.GiveawayID, err)
	}

	return nil
}

// CountParticipants returns the number of entries in a giveaway
func (r *gormRepository) CountParticipants(ctx context.Context, input *CountParticipantsInput) (int, error) {
	if input == nil || input.GiveawayID == 0 {
		return 0, errors.New("input and giveaway ID cannot be empty")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Where("giveaway_id = ?", input.GiveawayID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count participants of giveaway %d: %w", input.GiveawayID, err)
	}

	return int(count), nil
}

// ListParticipants returns the entrants of a giveaway in join order
func (r *gormRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil || input.GiveawayID == 0 {
		return nil, errors.New("input and giveaway ID cannot be empty")
	}

	userIDs := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.Participant{}).
		Where("giveaway_id = ?", input.GiveawayID).
		Order("id asc").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list participants of giveaway %d: %w", input.GiveawayID, err)
	}

	return &ListParticipantsOutput{
		UserIDs: userIDs,
	}, nil
}

// CancelGiveaway moves an active giveaway to cancelled
func (r *gormRepository) CancelGiveaway(ctx context.Context, input *CancelGiveawayInput) error {
	if input == nil || input.GiveawayID == 0 {
		return errors.New("input and giveaway ID cannot be empty")
	}

	return transition(r.db.WithContext(ctx), input.GiveawayID, models.GiveawayStatusCancelled, input.CancelledAt)
}

// FinalizeGiveaway records the winners and ends the giveaway in one transaction.
// Nothing is written when the giveaway is no longer active.
func (r *gormRepository) FinalizeGiveaway(ctx context.Context, input *FinalizeGiveawayInput) error {
	if input == nil || input.GiveawayID == 0 {
		return errors.New("input and giveaway ID cannot be empty")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transition(tx, input.GiveawayID, models.GiveawayStatusEnded, input.EndedAt); err != nil {
			return err
		}

		if len(input.WinnerIDs) == 0 {
			return nil
		}

		winners := make([]*models.Winner, 0, len(input.WinnerIDs))
		for _, userID := range input.WinnerIDs {
			winners = append(winners, &models.Winner{
				GiveawayID: input.GiveawayID,
				UserID:     userID,
				CreatedAt:  input.EndedAt.UTC(),
			})
		}

		if err := tx.Create(&winners).Error; err != nil {
			return fmt.Errorf("failed to store winners of giveaway %d: %w", input.GiveawayID, err)
		}

		return nil
	})
}

// transition moves a giveaway out of active; zero rows means it was missing or already terminal
func transition(db *gorm.DB, giveawayID uint, status models.GiveawayStatus, at time.Time) error {
	result := db.Model(&models.Giveaway{}).
		Where("id = ? AND status = ?", giveawayID, models.GiveawayStatusActive).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark giveaway %d %s: %w", giveawayID, status, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGiveawayNotActive
	}

	return nil
}

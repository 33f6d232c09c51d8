package repositories

import (
	"errors"
	"fmt"
	"time"

	"stashvest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// positionRepository implements PositionRepositoryInterface
type positionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) PositionRepositoryInterface {
	return &positionRepository{db: db}
}

// Create creates a new investment position
func (r *positionRepository) Create(position *models.InvestmentPosition) error {
	if err := r.db.Create(position).Error; err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}
	return nil
}

// GetByID retrieves a position by ID
func (r *positionRepository) GetByID(id uuid.UUID) (*models.InvestmentPosition, error) {
	position := &models.InvestmentPosition{ID: id}
	if err := r.db.First(position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return position, nil
}

// GetByOwnerID retrieves all positions for an owner
func (r *positionRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.InvestmentPosition, error) {
	var positions []models.InvestmentPosition
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("failed to get positions for owner: %w", err)
	}
	return positions, nil
}

// GetInvestedByOwner retrieves the owner's open positions
func (r *positionRepository) GetInvestedByOwner(ownerID uuid.UUID) ([]models.InvestmentPosition, error) {
	var positions []models.InvestmentPosition
	if err := r.db.Where("owner_id = ? AND status = ?", ownerID, models.PositionStatusInvested).
		Order("created_at ASC").Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("failed to get invested positions: %w", err)
	}
	return positions, nil
}

// GetOwnersWithOpenPositions lists owners holding at least one invested position
func (r *positionRepository) GetOwnersWithOpenPositions() ([]uuid.UUID, error) {
	var owners []uuid.UUID
	if err := r.db.Model(&models.InvestmentPosition{}).
		Where("status = ?", models.PositionStatusInvested).
		Distinct().Pluck("owner_id", &owners).Error; err != nil {
		return nil, fmt.Errorf("failed to list owners with open positions: %w", err)
	}
	return owners, nil
}

// Update updates a position
func (r *positionRepository) Update(position *models.InvestmentPosition) error {
	if err := r.db.Save(position).Error; err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	return nil
}

// UpdateValuation persists the derived valuation fields only. Purchase,
// sale and status columns stay untouched, so a background sync can never
// interfere with a concurrent settlement.
func (r *positionRepository) UpdateValuation(position *models.InvestmentPosition) error {
	result := r.db.Model(position).
		Select("current_price", "current_value", "return_rate", "is_profitable", "can_sell", "updated_at").
		Updates(map[string]interface{}{
			"current_price": position.CurrentPrice,
			"current_value": position.CurrentValue,
			"return_rate":   position.ReturnRate,
			"is_profitable": position.IsProfitable,
			"can_sell":      position.CanSell,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update position valuation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPositionNotFound
	}
	return nil
}

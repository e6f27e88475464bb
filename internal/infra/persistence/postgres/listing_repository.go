package postgres

import (
	"context"

	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	"beantrade/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listingRepository implements the repository.ListingRepository interface using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid seller reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAttributes.WrapMessage("quantity and price must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(ctx, id, false)
}

// FindByIDForUpdate retrieves a listing holding a FOR UPDATE row lock. This
// serializes concurrent economic-bound checks against the same listing.
func (repo *listingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *listingRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Listing, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var listingM model.ListingModel
	if err := query.Where("id = ?", id).First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// UpdateStatus sets the listing's lifecycle status.
func (repo *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// FindOpen retrieves all listings currently accepting transactions, newest first.
func (repo *listingRepository) FindOpen(ctx context.Context) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.ListingStatusOpen.String()).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:          data.ID,
		SellerID:    data.SellerID,
		ProductType: data.ProductType,
		QuantityKg:  data.QuantityKg,
		PricePerKg:  data.PricePerKg,
		Description: data.Description,
		Status:      entity.ListingStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		ProductType: data.ProductType,
		QuantityKg:  data.QuantityKg,
		PricePerKg:  data.PricePerKg,
		Description: data.Description,
		Status:      data.Status.String(),
	}
}

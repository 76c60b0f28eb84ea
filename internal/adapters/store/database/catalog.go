package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"gorm.io/gorm"
)

func (s *Store) CreateCarBrand(ctx context.Context, brand *model.CarBrand) error {
	if err := s.db.WithContext(ctx).Create(brand).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrSlugNotUnique
		}
		return fmt.Errorf("failed create car brand: %w", err)
	}

	return nil
}

func (s *Store) ListCarBrands(ctx context.Context) ([]*model.CarBrand, error) {
	brands := []*model.CarBrand{}
	if err := s.db.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed get car brands: %w", err)
	}

	return brands, nil
}

func (s *Store) CreateCarModel(ctx context.Context, carModel *model.CarModel) error {
	if err := s.db.WithContext(ctx).Create(carModel).Error; err != nil {
		return fmt.Errorf("failed create car model: %w", err)
	}

	return nil
}

func (s *Store) ListCarModels(ctx context.Context, brandID uint) ([]*model.CarModel, error) {
	models := []*model.CarModel{}
	if err := s.db.WithContext(ctx).Where(&model.CarModel{BrandID: brandID}).Order("name").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed get car models: %w", err)
	}

	return models, nil
}

func (s *Store) GetCarModel(ctx context.Context, carModelID uint) (model.CarModel, error) {
	carModel := model.CarModel{}
	if err := s.db.WithContext(ctx).Preload("Brand").First(&carModel, carModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return carModel, errstore.ErrNotFoundData
		}
		return carModel, fmt.Errorf("failed get car model: %w", err)
	}

	return carModel, nil
}

func (s *Store) CreateCarEngine(ctx context.Context, engine *model.CarEngine) error {
	if err := s.db.WithContext(ctx).Create(engine).Error; err != nil {
		return fmt.Errorf("failed create car engine: %w", err)
	}

	return nil
}

func (s *Store) ListCarEngines(ctx context.Context, carModelID uint) ([]*model.CarEngine, error) {
	engines := []*model.CarEngine{}
	if err := s.db.WithContext(ctx).Where(&model.CarEngine{ModelID: carModelID}).Order("name").
		Find(&engines).Error; err != nil {
		return nil, fmt.Errorf("failed get car engines: %w", err)
	}

	return engines, nil
}

func (s *Store) CreateSparePart(ctx context.Context, part *model.SparePart) error {
	if err := s.db.WithContext(ctx).Create(part).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrSlugNotUnique
		}
		return fmt.Errorf("failed create spare part: %w", err)
	}

	return nil
}

func (s *Store) GetSparePart(ctx context.Context, sparePartID uint) (model.SparePart, error) {
	part := model.SparePart{}
	if err := s.db.WithContext(ctx).First(&part, sparePartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return part, errstore.ErrNotFoundData
		}
		return part, fmt.Errorf("failed get spare part: %w", err)
	}

	return part, nil
}

func (s *Store) FindSparePartByNumber(ctx context.Context, partNumber, manufacturer string) (model.SparePart, error) {
	part := model.SparePart{}
	err := s.db.WithContext(ctx).
		Where(&model.SparePart{PartNumber: partNumber, Manufacturer: manufacturer}).
		First(&part).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return part, errstore.ErrNotFoundData
		}
		return part, fmt.Errorf("failed find spare part: %w", err)
	}

	return part, nil
}

// SaveStock persists the quantity and the recomputed availability flag in a
// single update.
func (s *Store) SaveStock(ctx context.Context, sparePartID uint, quantity int, available bool) error {
	result := s.db.WithContext(ctx).Model(&model.SparePart{}).
		Where("id = ?", sparePartID).
		Updates(map[string]interface{}{
			"stock_quantity": quantity,
			"is_available":   available,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed save stock: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) FindCompatibilities(ctx context.Context, sparePartID, carModelID uint) ([]*model.SparePartCompatibility, error) {
	rows := []*model.SparePartCompatibility{}
	err := s.db.WithContext(ctx).
		Where(&model.SparePartCompatibility{SparePartID: sparePartID, CarModelID: carModelID}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed get compatibilities: %w", err)
	}

	return rows, nil
}

func (s *Store) ListCompatibilities(ctx context.Context, sparePartID uint) ([]*model.SparePartCompatibility, error) {
	rows := []*model.SparePartCompatibility{}
	err := s.db.WithContext(ctx).Preload("CarModel").Preload("CarModel.Brand").
		Where(&model.SparePartCompatibility{SparePartID: sparePartID}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed get compatibilities: %w", err)
	}

	return rows, nil
}

// CreateCompatibility inserts a compatibility record. A second record for the
// same part, model and engine combination is a conflict.
func (s *Store) CreateCompatibility(ctx context.Context, compat *model.SparePartCompatibility) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := model.SparePartCompatibility{}
		query := tx.Where("spare_part_id = ? and car_model_id = ?", compat.SparePartID, compat.CarModelID)
		if compat.CarEngineID == nil {
			query = query.Where("car_engine_id is null")
		} else {
			query = query.Where("car_engine_id = ?", *compat.CarEngineID)
		}
		err := query.First(&existing).Error
		if err == nil {
			return errstore.ErrCompatibilityConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed find compatibility: %w", err)
		}

		if err := tx.Create(compat).Error; err != nil {
			return fmt.Errorf("failed create compatibility: %w", err)
		}

		return nil
	})
}

func (s *Store) ListAnalogs(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error) {
	rows := []*model.SparePartAnalog{}
	err := s.db.WithContext(ctx).Preload("AnalogSparePart").
		Where(&model.SparePartAnalog{SparePartID: sparePartID}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed get analogs: %w", err)
	}

	return rows, nil
}

// ListAnalogsFor is the reverse traversal: edges pointing at the given part.
func (s *Store) ListAnalogsFor(ctx context.Context, analogSparePartID uint) ([]*model.SparePartAnalog, error) {
	rows := []*model.SparePartAnalog{}
	err := s.db.WithContext(ctx).Preload("SparePart").
		Where(&model.SparePartAnalog{AnalogSparePartID: analogSparePartID}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed get analogs for part: %w", err)
	}

	return rows, nil
}

// CreateAnalog writes an analog edge, mirrored for direct analogs, in one
// transaction.
func (s *Store) CreateAnalog(ctx context.Context, analog *model.SparePartAnalog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target := model.SparePart{}
		if err := tx.First(&target, analog.AnalogSparePartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get analog part: %w", err)
		}

		if err := upsertAnalog(tx, analog.SparePartID, analog.AnalogSparePartID, analog.IsDirect, analog.Notes); err != nil {
			return err
		}
		if analog.IsDirect {
			if err := upsertAnalog(tx, analog.AnalogSparePartID, analog.SparePartID, true, analog.Notes); err != nil {
				return err
			}
		}

		err := tx.Where(&model.SparePartAnalog{SparePartID: analog.SparePartID, AnalogSparePartID: analog.AnalogSparePartID}).
			First(analog).Error
		if err != nil {
			return fmt.Errorf("failed get analog: %w", err)
		}

		return nil
	})
}

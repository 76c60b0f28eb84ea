package autoparts

import (
	"context"
	"fmt"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
)

func (a *AutoParts) CreateCarBrand(ctx context.Context, brand model.CarBrand) (model.CarBrand, error) {
	if brand.Slug == "" {
		brand.Slug = model.Slugify(brand.Name)
	}
	if err := a.store.CreateCarBrand(ctx, &brand); err != nil {
		return brand, fmt.Errorf("failed create car brand: %w", err)
	}

	return brand, nil
}

func (a *AutoParts) ListCarBrands(ctx context.Context) ([]*model.CarBrand, error) {
	brands, err := a.store.ListCarBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting car brands: %w", err)
	}
	return brands, nil
}

func (a *AutoParts) CreateCarModel(ctx context.Context, carModel model.CarModel) (model.CarModel, error) {
	if carModel.Slug == "" {
		carModel.Slug = model.Slugify(carModel.Name)
	}
	if err := a.store.CreateCarModel(ctx, &carModel); err != nil {
		return carModel, fmt.Errorf("failed create car model: %w", err)
	}

	return carModel, nil
}

func (a *AutoParts) ListCarModels(ctx context.Context, brandID uint) ([]*model.CarModel, error) {
	models, err := a.store.ListCarModels(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed getting car models: %w", err)
	}
	return models, nil
}

func (a *AutoParts) CreateCarEngine(ctx context.Context, engine model.CarEngine) (model.CarEngine, error) {
	if engine.Slug == "" {
		engine.Slug = model.Slugify(engine.Name)
	}
	if err := a.store.CreateCarEngine(ctx, &engine); err != nil {
		return engine, fmt.Errorf("failed create car engine: %w", err)
	}

	return engine, nil
}

func (a *AutoParts) ListCarEngines(ctx context.Context, carModelID uint) ([]*model.CarEngine, error) {
	engines, err := a.store.ListCarEngines(ctx, carModelID)
	if err != nil {
		return nil, fmt.Errorf("failed getting car engines: %w", err)
	}
	return engines, nil
}

func (a *AutoParts) CreateSparePart(ctx context.Context, part model.SparePart) (model.SparePart, error) {
	if part.Slug == "" {
		part.Slug = model.Slugify(part.Manufacturer, part.PartNumber)
	}
	part.IsAvailable = part.StockQuantity > 0
	if err := a.store.CreateSparePart(ctx, &part); err != nil {
		return part, fmt.Errorf("failed create spare part: %w", err)
	}

	return part, nil
}

func (a *AutoParts) GetSparePart(ctx context.Context, sparePartID uint) (model.SparePart, error) {
	part, err := a.store.GetSparePart(ctx, sparePartID)
	if err != nil {
		return part, fmt.Errorf("failed getting spare part: %w", err)
	}
	return part, nil
}

// UpdateAvailability applies a stock delta and recomputes the availability
// flag. With the clamp policy an over-sell floors the stock at zero instead
// of failing.
func (a *AutoParts) UpdateAvailability(ctx context.Context, sparePartID uint, delta int) (model.SparePart, error) {
	part, err := a.store.GetSparePart(ctx, sparePartID)
	if err != nil {
		return part, fmt.Errorf("failed getting spare part: %w", err)
	}

	quantity, clamped := clampStock(part.StockQuantity, delta)
	if clamped && a.cfg.Oversell == OversellReject {
		return part, fmt.Errorf("%w: part %d", errstore.ErrNotEnoughStock, sparePartID)
	}

	part.StockQuantity = quantity
	part.IsAvailable = quantity > 0
	if err := a.store.SaveStock(ctx, part.ID, part.StockQuantity, part.IsAvailable); err != nil {
		return part, fmt.Errorf("failed save stock: %w", err)
	}

	return part, nil
}

// PriceForUser applies the personal markup to the base part price. Admins see
// base prices.
func (a *AutoParts) PriceForUser(part model.SparePart, user model.User) float64 {
	if user.Role == model.RoleAdmin {
		return part.Price
	}
	markup := user.MarkupPercent
	if markup == 0 {
		markup = a.cfg.DefaultMarkupPercent
	}
	return part.Price * (1 + markup/100)
}

// IsCompatibleWith reports whether a compatibility record links the part to
// the car model. With an engine given an exact engine match is required,
// without one any record for the model counts.
func (a *AutoParts) IsCompatibleWith(ctx context.Context, sparePartID, carModelID uint, carEngineID *uint) (bool, error) {
	rows, err := a.store.FindCompatibilities(ctx, sparePartID, carModelID)
	if err != nil {
		return false, fmt.Errorf("failed getting compatibilities: %w", err)
	}

	return matchCompatibility(rows, carEngineID, nil), nil
}

// IsCompatibleWithYear layers the production-year check on top of
// IsCompatibleWith. Records without bounds are compatible with all years.
func (a *AutoParts) IsCompatibleWithYear(ctx context.Context, sparePartID, carModelID uint, carEngineID *uint, year int) (bool, error) {
	rows, err := a.store.FindCompatibilities(ctx, sparePartID, carModelID)
	if err != nil {
		return false, fmt.Errorf("failed getting compatibilities: %w", err)
	}

	return matchCompatibility(rows, carEngineID, &year), nil
}

func matchCompatibility(rows []*model.SparePartCompatibility, carEngineID *uint, year *int) bool {
	for _, row := range rows {
		if carEngineID != nil {
			if row.CarEngineID == nil || *row.CarEngineID != *carEngineID {
				continue
			}
		}
		if year != nil && !yearWithin(row.StartYear, row.EndYear, *year) {
			continue
		}
		return true
	}
	return false
}

// AddCompatibility records a verified compatibility directly, without the
// moderation workflow.
func (a *AutoParts) AddCompatibility(ctx context.Context, compat model.SparePartCompatibility) (model.SparePartCompatibility, error) {
	if _, err := a.store.GetSparePart(ctx, compat.SparePartID); err != nil {
		return compat, fmt.Errorf("failed getting spare part: %w", err)
	}
	if _, err := a.store.GetCarModel(ctx, compat.CarModelID); err != nil {
		return compat, fmt.Errorf("failed getting car model: %w", err)
	}

	compat.IsVerified = true
	if err := a.store.CreateCompatibility(ctx, &compat); err != nil {
		return compat, fmt.Errorf("failed create compatibility: %w", err)
	}

	return compat, nil
}

// AddAnalog records a verified analog edge directly. Direct analogs get the
// mirrored edge in the same write.
func (a *AutoParts) AddAnalog(ctx context.Context, analog model.SparePartAnalog) (model.SparePartAnalog, error) {
	if analog.SparePartID == analog.AnalogSparePartID {
		return analog, fmt.Errorf("%w: part is its own analog", ErrAnalogNotValid)
	}
	if _, err := a.store.GetSparePart(ctx, analog.SparePartID); err != nil {
		return analog, fmt.Errorf("failed getting spare part: %w", err)
	}

	analog.IsVerified = true
	if err := a.store.CreateAnalog(ctx, &analog); err != nil {
		return analog, fmt.Errorf("failed create analog: %w", err)
	}

	return analog, nil
}

func (a *AutoParts) ListCompatibilities(ctx context.Context, sparePartID uint) ([]*model.SparePartCompatibility, error) {
	rows, err := a.store.ListCompatibilities(ctx, sparePartID)
	if err != nil {
		return nil, fmt.Errorf("failed getting compatibilities: %w", err)
	}
	return rows, nil
}

// ListAnalogs returns the outgoing analog edges of a part.
func (a *AutoParts) ListAnalogs(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error) {
	rows, err := a.store.ListAnalogs(ctx, sparePartID)
	if err != nil {
		return nil, fmt.Errorf("failed getting analogs: %w", err)
	}
	return rows, nil
}

// ListAnalogsFor returns the reverse traversal, parts this one is an analog
// for.
func (a *AutoParts) ListAnalogsFor(ctx context.Context, sparePartID uint) ([]*model.SparePartAnalog, error) {
	rows, err := a.store.ListAnalogsFor(ctx, sparePartID)
	if err != nil {
		return nil, fmt.Errorf("failed getting analogs for part: %w", err)
	}
	return rows, nil
}

package autoparts

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	"go.uber.org/zap"
)

const vinLength = 17

// VIN alphabet excludes I, O and Q.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// DecodeVin resolves a VIN through the external decoder and records the
// lookup. Decoder failures are terminal, there is no retry.
func (a *AutoParts) DecodeVin(ctx context.Context, userID uint, vin string) (vindecoder.Vehicle, error) {
	vehicle := vindecoder.Vehicle{}
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if !vinPattern.MatchString(vin) {
		return vehicle, fmt.Errorf("%w: expected %d characters without I, O or Q", ErrVinNotValid, vinLength)
	}
	if a.vin == nil {
		return vehicle, fmt.Errorf("%w: decoder is not configured", vindecoder.ErrDecodeFailed)
	}

	vehicle, err := a.vin.Decode(ctx, vin)
	if err != nil {
		return vehicle, fmt.Errorf("failed decode vin: %w", err)
	}

	request := model.VinRequest{
		UserID:    userID,
		Vin:       vin,
		Make:      vehicle.Make,
		ModelName: vehicle.Model,
		Year:      vehicle.Year,
	}
	if err := a.store.CreateVinRequest(ctx, &request); err != nil {
		a.log.Error("failed save vin request", zap.String("vin", vin), zap.Error(err))
	}

	return vehicle, nil
}

func (a *AutoParts) ListVinRequests(ctx context.Context) ([]*model.VinRequest, error) {
	requests, err := a.store.ListVinRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting vin requests: %w", err)
	}
	return requests, nil
}

package autoparts

import (
	"context"
	"testing"

	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/playmixer/autoparts/internal/adapters/vindecoder"
	mockstore "github.com/playmixer/autoparts/internal/mocks/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, cfg *Config) (*AutoParts, *mockstore.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	if cfg == nil {
		cfg = &Config{
			DefaultMarkupPercent: 25,
			Oversell:             OversellClamp,
		}
	}
	storeMock := mockstore.NewMockStore(ctrl)
	return New(cfg, storeMock), storeMock
}

func TestClampStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		delta    int
		want     int
		clamped  bool
	}{
		{name: "increase", quantity: 0, delta: 4, want: 4},
		{name: "decrease", quantity: 5, delta: -3, want: 2},
		{name: "to zero", quantity: 2, delta: -2, want: 0},
		{name: "oversell clamps", quantity: 5, delta: -10, want: 0, clamped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := clampStock(tt.quantity, tt.delta)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clamped, clamped)
		})
	}
}

func TestYearWithin(t *testing.T) {
	start := 2010
	end := 2015
	tests := []struct {
		name  string
		start *int
		end   *int
		year  int
		want  bool
	}{
		{name: "inside", start: &start, end: &end, year: 2012, want: true},
		{name: "after", start: &start, end: &end, year: 2020, want: false},
		{name: "before", start: &start, end: &end, year: 2005, want: false},
		{name: "open end", start: &start, end: nil, year: 2030, want: true},
		{name: "open start", start: nil, end: &end, year: 1990, want: true},
		{name: "unbounded", start: nil, end: nil, year: 2000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, yearWithin(tt.start, tt.end, tt.year))
		})
	}
}

func TestPriceForUser(t *testing.T) {
	service, _ := newTestService(t, nil)
	part := model.SparePart{Price: 100}

	tests := []struct {
		name string
		user model.User
		want float64
	}{
		{name: "admin sees base price", user: model.User{Role: model.RoleAdmin}, want: 100},
		{name: "personal markup", user: model.User{Role: model.RoleUser, MarkupPercent: 10}, want: 110},
		{name: "default markup", user: model.User{Role: model.RoleUser}, want: 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.PriceForUser(part, tt.user), 0.001)
		})
	}
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Balance: 100}, nil).
			Times(1)
		storeMock.EXPECT().
			ApplyBalanceChange(ctx, uint(1), float64(-30), model.OperationWithdraw, gomock.Any(), gomock.Any()).
			Return(model.BalanceTransaction{UserID: 1, Amount: -30, BalanceAfter: 70, OperationType: model.OperationWithdraw}, nil).
			Times(1)

		transaction, err := service.Withdraw(ctx, 1, 30, "", nil)
		assert.NoError(t, err)
		assert.InDelta(t, 70, transaction.BalanceAfter, 0.001)
	})

	t.Run("not enough funds", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, Balance: 10}, nil).
			Times(1)

		_, err := service.Withdraw(ctx, 1, 30, "", nil)
		assert.ErrorIs(t, err, errstore.ErrBalanceNotEnough)
	})

	t.Run("amount not positive", func(t *testing.T) {
		service, _ := newTestService(t, nil)
		_, err := service.Withdraw(ctx, 1, 0, "", nil)
		assert.ErrorIs(t, err, ErrAmountNotPositive)
	})
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("may go negative", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			ApplyBalanceChange(ctx, uint(1), float64(-150), model.OperationAdjustment, gomock.Any(), gomock.Any()).
			Return(model.BalanceTransaction{UserID: 1, Amount: -150, BalanceAfter: -50, OperationType: model.OperationAdjustment}, nil).
			Times(1)

		transaction, err := service.AdjustBalance(ctx, 1, -150, "correction", 2)
		assert.NoError(t, err)
		assert.InDelta(t, -50, transaction.BalanceAfter, 0.001)
	})

	t.Run("zero delta", func(t *testing.T) {
		service, _ := newTestService(t, nil)
		_, err := service.AdjustBalance(ctx, 1, 0, "", 2)
		assert.ErrorIs(t, err, ErrAmountNotPositive)
	})
}

func TestUpdateAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("clamp floors at zero", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSparePart(ctx, uint(1)).
			Return(model.SparePart{ID: 1, StockQuantity: 5, IsAvailable: true}, nil).
			Times(1)
		storeMock.EXPECT().
			SaveStock(ctx, uint(1), 0, false).
			Return(nil).
			Times(1)

		part, err := service.UpdateAvailability(ctx, 1, -10)
		assert.NoError(t, err)
		assert.Equal(t, 0, part.StockQuantity)
		assert.False(t, part.IsAvailable)
	})

	t.Run("reject policy fails the oversell", func(t *testing.T) {
		service, storeMock := newTestService(t, &Config{DefaultMarkupPercent: 25, Oversell: OversellReject})
		storeMock.EXPECT().
			GetSparePart(ctx, uint(1)).
			Return(model.SparePart{ID: 1, StockQuantity: 5, IsAvailable: true}, nil).
			Times(1)

		_, err := service.UpdateAvailability(ctx, 1, -10)
		assert.ErrorIs(t, err, errstore.ErrNotEnoughStock)
	})

	t.Run("restock turns available", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSparePart(ctx, uint(1)).
			Return(model.SparePart{ID: 1, StockQuantity: 0, IsAvailable: false}, nil).
			Times(1)
		storeMock.EXPECT().
			SaveStock(ctx, uint(1), 7, true).
			Return(nil).
			Times(1)

		part, err := service.UpdateAvailability(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, part.StockQuantity)
		assert.True(t, part.IsAvailable)
	})
}

func TestIsCompatibleWithYear(t *testing.T) {
	ctx := context.Background()
	start := 2010
	end := 2015
	engineID := uint(3)

	tests := []struct {
		name        string
		rows        []*model.SparePartCompatibility
		carEngineID *uint
		year        int
		want        bool
	}{
		{
			name: "year inside range",
			rows: []*model.SparePartCompatibility{{StartYear: &start, EndYear: &end}},
			year: 2012,
			want: true,
		},
		{
			name: "year outside range",
			rows: []*model.SparePartCompatibility{{StartYear: &start, EndYear: &end}},
			year: 2020,
			want: false,
		},
		{
			name:        "engine mismatch",
			rows:        []*model.SparePartCompatibility{{CarEngineID: nil}},
			carEngineID: &engineID,
			year:        2012,
			want:        false,
		},
		{
			name:        "engine match unbounded years",
			rows:        []*model.SparePartCompatibility{{CarEngineID: &engineID}},
			carEngineID: &engineID,
			year:        2012,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, storeMock := newTestService(t, nil)
			storeMock.EXPECT().
				FindCompatibilities(ctx, uint(1), uint(2)).
				Return(tt.rows, nil).
				Times(1)

			got, err := service.IsCompatibleWithYear(ctx, 1, 2, tt.carEngineID, tt.year)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestAnalog(t *testing.T) {
	ctx := context.Background()

	t.Run("missing article", func(t *testing.T) {
		service, _ := newTestService(t, nil)
		_, err := service.SuggestAnalog(ctx, AnalogSuggestionRequest{UserID: 1, SparePartID: 1, Brand: "Bosch"})
		assert.ErrorIs(t, err, ErrSuggestionNotValid)
	})

	t.Run("unknown analog stages part creation", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSparePart(ctx, uint(1)).
			Return(model.SparePart{ID: 1}, nil).
			Times(1)
		storeMock.EXPECT().
			FindSparePartByNumber(ctx, "0986452041", "Bosch").
			Return(model.SparePart{}, errstore.ErrNotFoundData).
			Times(1)
		storeMock.EXPECT().
			CreateSuggestion(ctx, gomock.Any()).
			Return(nil).
			Times(1)

		suggestion, err := service.SuggestAnalog(ctx, AnalogSuggestionRequest{
			UserID:      1,
			SparePartID: 1,
			Article:     "0986452041",
			Brand:       "Bosch",
		})
		assert.NoError(t, err)
		assert.True(t, suggestion.Data.NeedCreatePart)
		assert.Nil(t, suggestion.AnalogSparePartID)
		assert.Equal(t, model.SuggestionAnalog, suggestion.Type)
	})

	t.Run("known analog is linked", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSparePart(ctx, uint(1)).
			Return(model.SparePart{ID: 1}, nil).
			Times(1)
		storeMock.EXPECT().
			FindSparePartByNumber(ctx, "0986452041", "Bosch").
			Return(model.SparePart{ID: 7}, nil).
			Times(1)
		storeMock.EXPECT().
			CreateSuggestion(ctx, gomock.Any()).
			Return(nil).
			Times(1)

		suggestion, err := service.SuggestAnalog(ctx, AnalogSuggestionRequest{
			UserID:      1,
			SparePartID: 1,
			Article:     "0986452041",
			Brand:       "Bosch",
		})
		assert.NoError(t, err)
		assert.False(t, suggestion.Data.NeedCreatePart)
		if assert.NotNil(t, suggestion.AnalogSparePartID) {
			assert.Equal(t, uint(7), *suggestion.AnalogSparePartID)
		}
	})
}

func TestRejectSuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("comment required", func(t *testing.T) {
		service, _ := newTestService(t, nil)
		_, err := service.RejectSuggestion(ctx, 1, 2, "  ")
		assert.ErrorIs(t, err, ErrCommentRequired)
	})

	t.Run("terminal once", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			RejectSuggestion(ctx, uint(1), uint(2), "duplicate").
			Return(model.UserSuggestion{}, errstore.ErrSuggestionNotPending).
			Times(1)

		_, err := service.RejectSuggestion(ctx, 1, 2, "duplicate")
		assert.ErrorIs(t, err, errstore.ErrSuggestionNotPending)
	})
}

func TestDeleteOwnSuggestion(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign suggestion hidden", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSuggestion(ctx, uint(5)).
			Return(model.UserSuggestion{ID: 5, UserID: 2, Status: model.SuggestionPending}, nil).
			Times(1)

		err := service.DeleteOwnSuggestion(ctx, 5, 1)
		assert.ErrorIs(t, err, errstore.ErrNotFoundData)
	})

	t.Run("moderated suggestion locked", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetSuggestion(ctx, uint(5)).
			Return(model.UserSuggestion{ID: 5, UserID: 1, Status: model.SuggestionApproved}, nil).
			Times(1)

		err := service.DeleteOwnSuggestion(ctx, 5, 1)
		assert.ErrorIs(t, err, errstore.ErrSuggestionNotPending)
	})
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty order", func(t *testing.T) {
		service, _ := newTestService(t, nil)
		_, err := service.CreateOrder(ctx, 1, nil)
		assert.ErrorIs(t, err, ErrOrderEmpty)
	})

	t.Run("bad quantity", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1}, nil).
			Times(1)

		_, err := service.CreateOrder(ctx, 1, []OrderItemRequest{{SparePartID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, ErrQuantityNotValid)
	})

	t.Run("price snapshot with markup", func(t *testing.T) {
		service, storeMock := newTestService(t, nil)
		storeMock.EXPECT().
			GetUserByID(ctx, uint(1)).
			Return(model.User{ID: 1, MarkupPercent: 10}, nil).
			Times(1)
		storeMock.EXPECT().
			GetSparePart(ctx, uint(3)).
			Return(model.SparePart{ID: 3, Price: 100, StockQuantity: 5}, nil).
			Times(1)
		storeMock.EXPECT().
			CreateOrder(ctx, gomock.Any(), false).
			Return(nil).
			Times(1)

		order, err := service.CreateOrder(ctx, 1, []OrderItemRequest{{SparePartID: 3, Quantity: 2}})
		assert.NoError(t, err)
		assert.Len(t, order.Items, 1)
		assert.InDelta(t, 110, order.Items[0].Price, 0.001)
		assert.InDelta(t, 220, order.TotalPrice, 0.001)
	})
}

func TestDecodeVin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		vin  string
		want error
	}{
		{name: "too short", vin: "too short", want: ErrVinNotValid},
		{name: "bad characters", vin: "!!!!!!!!!!!!!!!!!", want: ErrVinNotValid},
		{name: "forbidden letter", vin: "1HGCM82633A00435O", want: ErrVinNotValid},
		{name: "valid but no decoder", vin: "1hgcm82633a004352", want: vindecoder.ErrDecodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t, nil)
			_, err := service.DecodeVin(ctx, 1, tt.vin)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

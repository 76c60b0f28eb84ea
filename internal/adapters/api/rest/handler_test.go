package rest_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/playmixer/autoparts/internal/adapters/api/rest"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"github.com/playmixer/autoparts/internal/core/autoparts"
	"github.com/playmixer/autoparts/internal/mocks/store"
	"github.com/playmixer/autoparts/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	cookieKey = "UserID"
	secretKey = []byte("secret_key")
)

func newTestServer(t *testing.T, storeMock *store.MockStore) *rest.Server {
	t.Helper()
	cfg := &autoparts.Config{
		DefaultMarkupPercent: 25,
		Oversell:             autoparts.OversellClamp,
	}
	service := autoparts.New(cfg, storeMock)
	server, err := rest.New(service, rest.SecretKey(secretKey))
	assert.NoError(t, err)
	return server
}

func authCookie(t *testing.T, r *http.Request, w *httptest.ResponseRecorder, userID uint) {
	t.Helper()
	jwtRest := jwt.New(secretKey)
	signedCookie, err := jwtRest.Create(cookieKey, strconv.Itoa(int(userID)))
	assert.NoError(t, err)
	userCookie := &http.Cookie{
		Name:  "token",
		Value: signedCookie,
		Path:  "/",
	}
	r.AddCookie(userCookie)
	http.SetCookie(w, userCookie)
}

func TestServer_handlerRegister(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "not unique",
			login:    "user",
			password: "pass",
			status:   http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)

			if tt.status != http.StatusBadRequest {
				if tt.status == http.StatusConflict {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
						Return(errstore.ErrLoginNotUnique).
						Times(1)
				} else {
					storeMock.EXPECT().
						RegisterUser(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
						Return(nil).
						Times(1)
					hashPass, err := autoparts.HashPassword(tt.password)
					assert.NoError(t, err)
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: hashPass,
						}, nil).
						Times(1)
				}
			}
			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerLogin(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		login    string
		password string
		status   int
	}{
		{
			name:     "correct",
			login:    "user",
			password: "pass",
			status:   http.StatusOK,
		},
		{
			name:     "empty",
			login:    "",
			password: "",
			status:   http.StatusBadRequest,
		},
		{
			name:     "unauthorize",
			login:    "user",
			password: "pass",
			status:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			hashPass, err := autoparts.HashPassword(tt.password)
			assert.NoError(t, err)
			if tt.status != http.StatusBadRequest {
				if tt.status == http.StatusUnauthorized {
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: "wrong pass",
						}, nil).
						Times(1)
				} else {
					storeMock.EXPECT().
						GetUserByLogin(ctx, tt.login).
						Return(model.User{
							PasswordHash: hashPass,
						}, nil).
						Times(1)
				}
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"login":%q, "password":%q}`, tt.login, tt.password))
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", body)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err = result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerCreateOrder(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		userID   uint
		body     string
		status   int
		errstore error
	}{
		{
			name:   "created",
			userID: 1,
			body:   `{"items":[{"spare_part_id":3,"quantity":2}]}`,
			status: http.StatusCreated,
		},
		{
			name:   "empty items",
			userID: 1,
			body:   `{"items":[]}`,
			status: http.StatusBadRequest,
		},
		{
			name:     "not enough stock",
			userID:   1,
			body:     `{"items":[{"spare_part_id":3,"quantity":2}]}`,
			status:   http.StatusConflict,
			errstore: errstore.ErrNotEnoughStock,
		},
		{
			name:   "unauthorize",
			userID: 1,
			body:   `{"items":[{"spare_part_id":3,"quantity":2}]}`,
			status: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.status == http.StatusCreated || tt.errstore != nil {
				storeMock.EXPECT().
					GetUserByID(ctx, tt.userID).
					Return(model.User{ID: tt.userID}, nil).
					Times(1)
				storeMock.EXPECT().
					GetSparePart(ctx, uint(3)).
					Return(model.SparePart{ID: 3, Price: 100, StockQuantity: 5}, nil).
					Times(1)
				storeMock.EXPECT().
					CreateOrder(ctx, gomock.Any(), false).
					Return(tt.errstore).
					Times(1)
			}
			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/user/orders", strings.NewReader(tt.body))
			if tt.status != http.StatusUnauthorized {
				authCookie(t, r, w, tt.userID)
			}

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerGetSparePart(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetSparePart(ctx, uint(3)).
				Return(model.SparePart{ID: 3, Price: 100, StockQuantity: 1, IsAvailable: true}, tt.errstore).
				Times(1)

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/catalog/parts/3", http.NoBody)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"price":125`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminApproveSuggestion(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		adminID  uint
		role     model.Role
		status   int
		errstore error
	}{
		{
			name:    "approved",
			adminID: 2,
			role:    model.RoleAdmin,
			status:  http.StatusOK,
		},
		{
			name:     "already moderated",
			adminID:  2,
			role:     model.RoleAdmin,
			status:   http.StatusBadRequest,
			errstore: errstore.ErrSuggestionNotPending,
		},
		{
			name:     "not found",
			adminID:  2,
			role:     model.RoleAdmin,
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:    "forbidden for user",
			adminID: 2,
			role:    model.RoleUser,
			status:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, tt.adminID).
				Return(model.User{ID: tt.adminID, Role: tt.role}, nil).
				Times(1)
			if tt.role == model.RoleAdmin {
				storeMock.EXPECT().
					ApproveSuggestion(ctx, uint(5), tt.adminID).
					Return(model.UserSuggestion{ID: 5, Status: model.SuggestionApproved}, tt.errstore).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/suggestions/5/approve", http.NoBody)
			authCookie(t, r, w, tt.adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"success":true`)
			}
			if tt.status == http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminRejectSuggestion(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "rejected",
			body:   `{"admin_comment":"duplicate of existing analog"}`,
			status: http.StatusOK,
		},
		{
			name:   "comment required",
			body:   `{"admin_comment":""}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminID := uint(2)
			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, adminID).
				Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil).
				Times(1)
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					RejectSuggestion(ctx, uint(5), adminID, gomock.Any()).
					Return(model.UserSuggestion{ID: 5, Status: model.SuggestionRejected}, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/suggestions/5/reject", strings.NewReader(tt.body))
			authCookie(t, r, w, adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminAdjustBalance(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{
			name:   "adjusted",
			body:   `{"amount":-50,"description":"correction"}`,
			status: http.StatusOK,
		},
		{
			name:   "zero amount",
			body:   `{"amount":0}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminID := uint(2)
			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, adminID).
				Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil).
				Times(1)
			if tt.status == http.StatusOK {
				storeMock.EXPECT().
					ApplyBalanceChange(ctx, uint(7), float64(-50), model.OperationAdjustment, gomock.Any(), gomock.Any()).
					Return(model.BalanceTransaction{UserID: 7, Amount: -50, BalanceAfter: -10}, nil).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/users/7/balance", strings.NewReader(tt.body))
			authCookie(t, r, w, adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"balance_after":-10`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminUpdateStock(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		delta  int
		stock  int
		want   int
		status int
	}{
		{
			name:   "restock",
			delta:  5,
			stock:  0,
			want:   5,
			status: http.StatusOK,
		},
		{
			name:   "oversell clamps to zero",
			delta:  -10,
			stock:  5,
			want:   0,
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminID := uint(2)
			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, adminID).
				Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil).
				Times(1)
			storeMock.EXPECT().
				GetSparePart(ctx, uint(3)).
				Return(model.SparePart{ID: 3, StockQuantity: tt.stock, IsAvailable: tt.stock > 0}, nil).
				Times(1)
			storeMock.EXPECT().
				SaveStock(ctx, uint(3), tt.want, tt.want > 0).
				Return(nil).
				Times(1)

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"delta":%d}`, tt.delta))
			r := httptest.NewRequest(http.MethodPut, "/api/admin/parts/3/stock", body)
			authCookie(t, r, w, adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminCreateCompatibility(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   int
		errstore error
	}{
		{
			name:   "created",
			status: http.StatusOK,
		},
		{
			name:     "duplicate",
			status:   http.StatusBadRequest,
			errstore: errstore.ErrCompatibilityConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminID := uint(2)
			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, adminID).
				Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil).
				Times(1)
			storeMock.EXPECT().
				GetSparePart(ctx, uint(3)).
				Return(model.SparePart{ID: 3}, nil).
				Times(1)
			storeMock.EXPECT().
				GetCarModel(ctx, uint(2)).
				Return(model.CarModel{ID: 2}, nil).
				Times(1)
			storeMock.EXPECT().
				CreateCompatibility(ctx, gomock.Any()).
				Return(tt.errstore).
				Times(1)

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(`{"car_model_id":2,"start_year":2010,"end_year":2015}`)
			r := httptest.NewRequest(http.MethodPost, "/api/admin/parts/3/compatibilities", body)
			authCookie(t, r, w, adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"success":true`)
			}
			if tt.status == http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerAdminCreateAnalog(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		analogID uint
		status   int
		errstore error
	}{
		{
			name:     "created",
			analogID: 7,
			status:   http.StatusOK,
		},
		{
			name:     "unknown analog part",
			analogID: 99,
			status:   http.StatusNotFound,
			errstore: errstore.ErrNotFoundData,
		},
		{
			name:     "self analog",
			analogID: 3,
			status:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminID := uint(2)
			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				GetUserByID(ctx, adminID).
				Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil).
				Times(1)
			if tt.analogID != 3 {
				storeMock.EXPECT().
					GetSparePart(ctx, uint(3)).
					Return(model.SparePart{ID: 3}, nil).
					Times(1)
				storeMock.EXPECT().
					CreateAnalog(ctx, gomock.Any()).
					Return(tt.errstore).
					Times(1)
			}

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			body := strings.NewReader(fmt.Sprintf(`{"analog_spare_part_id":%d,"is_direct":true}`, tt.analogID))
			r := httptest.NewRequest(http.MethodPost, "/api/admin/parts/3/analogs", body)
			authCookie(t, r, w, adminID)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, tt.status, result.StatusCode)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

func TestServer_handlerCheckCompatibility(t *testing.T) {
	ctx := context.Background()
	start := 2010
	end := 2015

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "compatible year",
			query: "car_model_id=2&year=2012",
			want:  `"compatible":true`,
		},
		{
			name:  "incompatible year",
			query: "car_model_id=2&year=2020",
			want:  `"compatible":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			storeMock.EXPECT().
				FindCompatibilities(ctx, uint(3), uint(2)).
				Return([]*model.SparePartCompatibility{{SparePartID: 3, CarModelID: 2, StartYear: &start, EndYear: &end}}, nil).
				Times(1)

			server := newTestServer(t, storeMock)
			engin := server.Engine()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/catalog/parts/3/compatible?"+tt.query, http.NoBody)

			engin.ServeHTTP(w, r)

			result := w.Result()

			assert.Equal(t, http.StatusOK, result.StatusCode)
			assert.Contains(t, w.Body.String(), tt.want)

			err := result.Body.Close()
			assert.NoError(t, err)
		})
	}
}

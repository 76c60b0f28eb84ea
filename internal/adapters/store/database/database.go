package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/playmixer/autoparts/internal/adapters/store/errstore"
	"github.com/playmixer/autoparts/internal/adapters/store/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.CarBrand{},
		&model.CarModel{},
		&model.CarEngine{},
		&model.SparePart{},
		&model.SparePartCompatibility{},
		&model.SparePartAnalog{},
		&model.UserSuggestion{},
		&model.BalanceTransaction{},
		&model.Order{},
		&model.OrderItem{},
		&model.Payment{},
		&model.VinRequest{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}

func (s *Store) RegisterUser(ctx context.Context, login, hashPassword string, markupPercent float64) error {
	user := model.User{
		Login:         login,
		PasswordHash:  hashPassword,
		MarkupPercent: markupPercent,
	}
	result := s.db.WithContext(ctx).Create(&user)
	if err := result.Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrLoginNotUnique
		}
		return fmt.Errorf("failed save user: %w", err)
	}

	return nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (model.User, error) {
	user := model.User{}
	result := s.db.WithContext(ctx).Where(&model.User{Login: login}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uint) (model.User, error) {
	user := model.User{}
	result := s.db.WithContext(ctx).First(&user, userID)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errstore.ErrNotFoundData
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

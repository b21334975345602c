package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davonjagah/JagahVA/config"
	"github.com/davonjagah/JagahVA/models"
)

// userRow holds one user record as a JSON document. The record is opaque to
// SQL; the store only ever reads and writes it whole.
type userRow struct {
	UserID    string `gorm:"primaryKey;column:user_id"`
	Record    []byte `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRow) TableName() string {
	return "users"
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("storage: connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&userRow{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	var row userRow
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewUserRecord(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get user %s: %w", userID, err)
	}

	record := models.NewUserRecord()
	if err := json.Unmarshal(row.Record, record); err != nil {
		return nil, fmt.Errorf("storage: decode record for user %s: %w", userID, err)
	}
	record.Normalize()
	return record, nil
}

func (s *PostgresStore) SaveUser(ctx context.Context, userID string, record *models.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("storage: encode record for user %s: %w", userID, err)
	}

	row := userRow{UserID: userID, Record: data}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"record", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("storage: save user %s: %w", userID, err)
	}
	return nil
}

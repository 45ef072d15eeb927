package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-checkin/models"
)

// GormStorage keeps keys in the local_storage_items table through gorm.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (s *GormStorage) GetItem(ctx context.Context, key string) (string, error) {
	var item models.StorageItem
	err := s.DB.WithContext(ctx).Where("item_key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get storage item %s: %w", key, err)
	}
	return string(item.Value), nil
}

func (s *GormStorage) SetItem(ctx context.Context, key, value string) error {
	item := models.StorageItem{Key: key, Value: datatypes.JSON(value)}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"item_value", "updated_at"}),
		}).
		Create(&item).Error
	if err != nil {
		return fmt.Errorf("set storage item %s: %w", key, err)
	}
	return nil
}

func (s *GormStorage) RemoveItem(ctx context.Context, key string) error {
	err := s.DB.WithContext(ctx).Where("item_key = ?", key).Delete(&models.StorageItem{}).Error
	if err != nil {
		return fmt.Errorf("remove storage item %s: %w", key, err)
	}
	return nil
}

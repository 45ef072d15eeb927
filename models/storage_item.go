package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageItem is one key of the device-local storage when it is kept in
// MySQL. Value holds the raw JSON document stored under Key.
type StorageItem struct {
	Key       string         `gorm:"primaryKey;size:191;column:item_key" json:"key"`
	Value     datatypes.JSON `gorm:"column:item_value" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (StorageItem) TableName() string {
	return "local_storage_items"
}

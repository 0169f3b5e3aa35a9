package database

import (
	"linha-viva/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the local cache tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.InventoryItem{},
		&model.MaterialRequest{},
		&model.RequestedItem{},
		&model.Transaction{},
		&model.Setting{},
	)
}

// SeedInventory loads the initial inventory when the cache is empty. It
// reports whether anything was inserted.
func SeedInventory(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&model.InventoryItem{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	items := make([]model.InventoryItem, len(model.InitialInventory))
	copy(items, model.InitialInventory)
	for i := range items {
		items[i].Position = i
		items[i].CreatedBy = "system"
		items[i].UpdatedBy = "system"
	}
	if err := db.CreateInBatches(items, 100).Error; err != nil {
		return false, err
	}
	return true, nil
}

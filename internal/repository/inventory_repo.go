package repository

import (
	"database/sql"

	"linha-viva/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	FindAll() ([]model.InventoryItem, error)
	FindByID(id string) (*model.InventoryItem, error)
	Count() (int64, error)
	CountCritical(region model.Region, threshold int) (int64, error)
	NextHeadPosition() (int, error)
	Create(tx *gorm.DB, item *model.InventoryItem) error
	UpdateBalances(tx *gorm.DB, item *model.InventoryItem) error
	ReplaceAll(items []model.InventoryItem) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// FindAll returns the snapshot in list order.
func (r *inventoryRepo) FindAll() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Order("position ASC").Order("id ASC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByID(id string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *inventoryRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.InventoryItem{}).Count(&n).Error
	return n, err
}

func (r *inventoryRepo) CountCritical(region model.Region, threshold int) (int64, error) {
	column := "balance_itabaiana"
	if region == model.RegionDores {
		column = "balance_dores"
	}
	var n int64
	err := r.db.Model(&model.InventoryItem{}).Where(column+" <= ?", threshold).Count(&n).Error
	return n, err
}

// NextHeadPosition is the position that puts a new item before every other.
func (r *inventoryRepo) NextHeadPosition() (int, error) {
	var minPos sql.NullInt64
	if err := r.db.Model(&model.InventoryItem{}).Select("MIN(position)").Row().Scan(&minPos); err != nil {
		return 0, err
	}
	if !minPos.Valid {
		return 0, nil
	}
	return int(minPos.Int64) - 1, nil
}

func (r *inventoryRepo) Create(tx *gorm.DB, item *model.InventoryItem) error {
	return pick(r.db, tx).Create(item).Error
}

// UpdateBalances menerima tx agar bisa berjalan dalam transaksi
func (r *inventoryRepo) UpdateBalances(tx *gorm.DB, item *model.InventoryItem) error {
	return pick(r.db, tx).Model(&model.InventoryItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"balance_itabaiana": item.BalanceItabaiana,
			"balance_dores":     item.BalanceDores,
			"updated_by":        item.UpdatedBy,
		}).Error
}

// ReplaceAll swaps the whole snapshot for items, keeping their order.
func (r *inventoryRepo) ReplaceAll(items []model.InventoryItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]model.InventoryItem, len(items))
		copy(rows, items)
		for i := range rows {
			rows[i].Position = i
			rows[i].UpdatedBy = "sync"
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

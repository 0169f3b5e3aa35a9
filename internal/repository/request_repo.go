package repository

import (
	"linha-viva/internal/model"

	"gorm.io/gorm"
)

type RequestRepository interface {
	FindAll(status model.RequestStatus) ([]model.MaterialRequest, error)
	FindByID(id string) (*model.MaterialRequest, error)
	Exists(id string) (bool, error)
	CountByStatus() (map[model.RequestStatus]int64, error)
	Create(tx *gorm.DB, req *model.MaterialRequest) error
	UpdateStatus(tx *gorm.DB, id string, status model.RequestStatus, updatedBy string) error
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindAll returns requests newest first. An empty status lists all of them.
func (r *requestRepo) FindAll(status model.RequestStatus) ([]model.MaterialRequest, error) {
	var requests []model.MaterialRequest
	q := r.db.Preload("Items", orderedItems).Order("timestamp DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByID(id string) (*model.MaterialRequest, error) {
	var req model.MaterialRequest
	if err := r.db.Preload("Items", orderedItems).First(&req, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &req, nil
}

func (r *requestRepo) Exists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&model.MaterialRequest{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *requestRepo) CountByStatus() (map[model.RequestStatus]int64, error) {
	rows, err := r.db.Model(&model.MaterialRequest{}).
		Select("status, COUNT(*)").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[model.RequestStatus]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[model.RequestStatus(status)] = n
	}
	return counts, rows.Err()
}

// Create inserts the request with its line items.
func (r *requestRepo) Create(tx *gorm.DB, req *model.MaterialRequest) error {
	for i := range req.Items {
		req.Items[i].Position = i
	}
	return pick(r.db, tx).Create(req).Error
}

func (r *requestRepo) UpdateStatus(tx *gorm.DB, id string, status model.RequestStatus, updatedBy string) error {
	res := pick(r.db, tx).Model(&model.MaterialRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

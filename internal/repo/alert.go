package repo

import (
	"context"

	"github.com/b3watch/stock-alert/internal/entity"
	"gorm.io/gorm"
)

type AlertRepo interface {
	Create(ctx context.Context, alert entity.Alert) (int64, error)
	FindBySymbol(ctx context.Context, symbol string) ([]entity.Alert, error)
	FindSince(ctx context.Context, since int64) ([]entity.Alert, error)
}

type alertRepo struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) AlertRepo {
	return &alertRepo{
		db: db,
	}
}

func (r *alertRepo) Create(ctx context.Context, alert entity.Alert) (int64, error) {
	err := r.db.WithContext(ctx).Create(&alert).Error
	if err != nil {
		return 0, err
	}
	return alert.Id, nil
}

func (r *alertRepo) FindBySymbol(ctx context.Context, symbol string) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).Order("created_at DESC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) FindSince(ctx context.Context, since int64) ([]entity.Alert, error) {
	var alerts []entity.Alert
	err := r.db.WithContext(ctx).Where("id > ?", since).Order("id ASC").Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

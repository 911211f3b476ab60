package eco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
)

func listPage[T any](
	ctx context.Context,
	conn *gorm.DB,
	f ListFilter,
	dateColumn string,
	scope func(*gorm.DB) *gorm.DB,
) (*Page[T], error) {
	filtered := func(tx *gorm.DB) *gorm.DB {
		if scope != nil {
			tx = scope(tx)
		}
		if f.StartDate != nil {
			tx = tx.Where(dateColumn+" >= ?", f.StartDate.UTC())
		}
		if f.EndDate != nil {
			tx = tx.Where(dateColumn+" <= ?", f.EndDate.UTC())
		}
		return tx
	}

	page, limit, offset := common.Paginate(f.Page, f.Limit, DefaultPageLimit, MaxPageLimit)

	var total int64
	if err := conn.WithContext(ctx).Model(new(T)).Scopes(filtered).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0)
	err := conn.WithContext(ctx).
		Scopes(filtered).
		Order(dateColumn + " desc").
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &Page[T]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func findOwned[T any](ctx context.Context, conn *gorm.DB, userID string, id uint) (*T, error) {
	var rec T
	err := conn.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func deleteOwned[T any](ctx context.Context, conn *gorm.DB, userID string, id uint) error {
	res := conn.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// findInRange loads a user's records with from <= date, and date < before
// when before is set, oldest first.
func findInRange[T any](ctx context.Context, conn *gorm.DB, userID string, from time.Time, before *time.Time) ([]T, error) {
	tx := conn.WithContext(ctx).Where("user_id = ? AND date >= ?", userID, from.UTC())
	if before != nil {
		tx = tx.Where("date < ?", before.UTC())
	}

	var out []T
	if err := tx.Order("date asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

package eco

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	"liyu1981.xyz/ecotrack-service/pkg/notify"
	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

type NotificationFilter struct {
	ListFilter
	IsRead   *bool
	Category models.NotificationCategory
}

type NotificationPage struct {
	Page[models.Notification]
	UnreadCount int64
}

func notificationLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoNotification),
	)
}

// notify stores n and pushes it to the owner's room. Delivery failures are
// logged only, the stored notification is the source of truth.
func (e *Eco) notify(ctx context.Context, n *models.Notification) error {
	logger := notificationLogger()

	if n.UserID == "" || n.Title == "" || n.Message == "" {
		return fmt.Errorf("%w: notification needs a user, a title and a message", ErrInvalidInput)
	}
	if n.Type == "" {
		n.Type = models.NotificationTypeInfo
	}
	if n.Category == "" {
		n.Category = models.NotificationCategoryGeneral
	}
	if n.Priority == "" {
		n.Priority = models.NotificationPriorityMedium
	}

	if err := e.Db.Conn.WithContext(ctx).Create(n).Error; err != nil {
		return err
	}

	logger.Info("Notification saved", zap.Reflect("notification", n))
	observability.RecordNotification(string(n.Category))

	if e.Notifier == nil {
		return nil
	}
	if err := e.Notifier.Publish(ctx, notify.EventFromNotification(n)); err != nil {
		logger.Warn("Failed to publish notification", zap.Uint("id", n.ID), zap.Error(err))
		observability.RecordPublishFailure("realtime")
	}
	return nil
}

func (e *Eco) checkActivity(ctx context.Context, activity *models.Activity) error {
	if activity.CarbonEmissions <= e.Thresholds.HighEmission {
		return nil
	}

	notificationLogger().Info("Alert found",
		zap.String("rule", "high_emission"),
		zap.Float64("carbonEmissions", activity.CarbonEmissions))

	return e.notify(ctx, &models.Notification{
		UserID: activity.UserID,
		Title:  "High Carbon Activity Detected",
		Message: fmt.Sprintf(
			"Your recent %s activity generated %.2f kg CO2. Consider greener alternatives!",
			activity.ActivityType, activity.CarbonEmissions,
		),
		Type:     models.NotificationTypeWarning,
		Category: models.NotificationCategoryCarbon,
		Icon:     "⚠️",
	})
}

func (e *Eco) checkPlasticUsage(ctx context.Context, userID string, monthlyTotal float64) error {
	if monthlyTotal <= e.Thresholds.PlasticMonthly {
		return nil
	}

	notificationLogger().Info("Alert found",
		zap.String("rule", "plastic_monthly"),
		zap.Float64("monthlyTotal", monthlyTotal))

	return e.notify(ctx, &models.Notification{
		UserID: userID,
		Title:  "⚠️ High Plastic Usage Alert",
		Message: fmt.Sprintf(
			"You've used %.0f plastic items this month. Consider switching to reusable alternatives!",
			monthlyTotal,
		),
		Type:     models.NotificationTypeWarning,
		Category: models.NotificationCategoryPlastic,
		Icon:     "♻️",
	})
}

func (e *Eco) checkRenewableEnergy(ctx context.Context, record *models.RenewableEnergy) error {
	if record.EnergyGenerated <= e.Thresholds.RenewableAchievement {
		return nil
	}

	notificationLogger().Info("Alert found",
		zap.String("rule", "renewable_achievement"),
		zap.Float64("energyGenerated", record.EnergyGenerated))

	return e.notify(ctx, &models.Notification{
		UserID: record.UserID,
		Title:  "🌟 Green Energy Champion!",
		Message: fmt.Sprintf(
			"Amazing! You generated %s kWh of %s energy, offsetting %.2f kg CO2!",
			strconv.FormatFloat(record.EnergyGenerated, 'f', -1, 64), record.EnergySource, record.CarbonOffset,
		),
		Type:     models.NotificationTypeAchievement,
		Category: models.NotificationCategoryEnergy,
		Icon:     "⚡",
	})
}

func (e *Eco) listNotifications(ctx context.Context, userID string, filter NotificationFilter) (*NotificationPage, error) {
	page, err := listPage[models.Notification](ctx, e.Db.Conn, filter.ListFilter, "created_at", func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", userID)
		if filter.IsRead != nil {
			tx = tx.Where("is_read = ?", *filter.IsRead)
		}
		if filter.Category != "" {
			tx = tx.Where("category = ?", filter.Category)
		}
		return tx
	})
	if err != nil {
		return nil, err
	}

	var unread int64
	err = e.Db.Conn.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error
	if err != nil {
		return nil, err
	}

	return &NotificationPage{Page: *page, UnreadCount: unread}, nil
}

func (e *Eco) markRead(ctx context.Context, userID string, id uint) (*models.Notification, error) {
	n, err := findOwned[models.Notification](ctx, e.Db.Conn, userID, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return n, nil
	}

	n.IsRead = true
	if err := e.Db.Conn.WithContext(ctx).Model(n).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (e *Eco) markAllRead(ctx context.Context, userID string) (int64, error) {
	res := e.Db.Conn.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (e *Eco) deleteReadNotifications(ctx context.Context, userID string) (int64, error) {
	res := e.Db.Conn.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

type INotificationImpl struct {
	eco *Eco
}

func (in *INotificationImpl) Notify(ctx context.Context, n *models.Notification) error {
	return in.eco.notify(ctx, n)
}

func (in *INotificationImpl) CheckActivity(ctx context.Context, activity *models.Activity) error {
	return in.eco.checkActivity(ctx, activity)
}

func (in *INotificationImpl) CheckPlasticUsage(ctx context.Context, userID string, monthlyTotal float64) error {
	return in.eco.checkPlasticUsage(ctx, userID, monthlyTotal)
}

func (in *INotificationImpl) CheckRenewableEnergy(ctx context.Context, record *models.RenewableEnergy) error {
	return in.eco.checkRenewableEnergy(ctx, record)
}

func (in *INotificationImpl) ListNotifications(ctx context.Context, userID string, filter NotificationFilter) (*NotificationPage, error) {
	return in.eco.listNotifications(ctx, userID, filter)
}

func (in *INotificationImpl) MarkRead(ctx context.Context, userID string, id uint) (*models.Notification, error) {
	return in.eco.markRead(ctx, userID, id)
}

func (in *INotificationImpl) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return in.eco.markAllRead(ctx, userID)
}

func (in *INotificationImpl) DeleteNotification(ctx context.Context, userID string, id uint) error {
	return deleteOwned[models.Notification](ctx, in.eco.Db.Conn, userID, id)
}

func (in *INotificationImpl) DeleteReadNotifications(ctx context.Context, userID string) (int64, error) {
	return in.eco.deleteReadNotifications(ctx, userID)
}

func (e *Eco) GetINotification() INotification {
	return &INotificationImpl{eco: e}
}

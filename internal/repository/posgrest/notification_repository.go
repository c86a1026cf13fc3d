package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Jorgemunera/payment-notification-service/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// NotificationFilters narrows FindAll; zero values mean "no filter".
type NotificationFilters struct {
	Status    models.NotificationStatus
	PaymentID string
}

func (r *NotificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// Update persists the full row. Save is used instead of Updates so cleared
// fields (error message, sent at) are written back as NULL.
func (r *NotificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *NotificationRepository) FindAll(ctx context.Context, filters NotificationFilters, limit, offset int) ([]models.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Notification{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.PaymentID != "" {
		query = query.Where("payment_id = ?", filters.PaymentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepository) CountByStatus(ctx context.Context) (map[models.NotificationStatus]int64, error) {
	var rows []struct {
		Status models.NotificationStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.NotificationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

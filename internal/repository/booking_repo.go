package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	pkgerrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
)

// BookingFilter 预订列表过滤条件（所有条件 AND 组合）
type BookingFilter struct {
	UserID     string
	FacilityID string
	Statuses   []model.Status
	Page       int
	PageSize   int
}

// BookingRepository 设施预订数据访问接口
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, filter *BookingFilter) ([]model.Booking, int64, error)
	Update(ctx context.Context, booking *model.Booking) error
	// CountOverlapping 统计同一设施同一日期内与 [start, end) 重叠的
	// 非 rejected 预订数。设施档期完全由数据层持有，业务层不做缓存。
	CountOverlapping(ctx context.Context, facilityID, date, startTime, endTime, excludeID string) (int64, error)
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo 创建 BookingRepository 实例
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("Facility").
		Preload("User").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, filter *BookingFilter) ([]model.Booking, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Booking{})

	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.FacilityID != "" {
		db = db.Where("facility_id = ?", filter.FacilityID)
	}
	if len(filter.Statuses) > 0 {
		db = db.Where("status IN ?", filter.Statuses)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var bookings []model.Booking
	err := db.Preload("Facility").
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	oldVersion := booking.Version
	result := r.db.WithContext(ctx).
		Model(booking).
		Where("booking_id = ? AND version = ?", booking.BookingID, oldVersion).
		Updates(map[string]interface{}{
			"status":         booking.Status,
			"admin_response": booking.AdminResponse,
			"updated_by":     booking.UpdatedBy,
			"version":        oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	booking.Version = oldVersion + 1
	return nil
}

func (r *bookingRepo) CountOverlapping(ctx context.Context, facilityID, date, startTime, endTime, excludeID string) (int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("facility_id = ? AND booking_date = ?", facilityID, date).
		Where("status <> ?", model.StatusRejected).
		// 区间重叠判定：已有区间与候选区间互相跨越
		Where("start_time < ? AND end_time > ?", endTime, startTime)

	if excludeID != "" {
		db = db.Where("booking_id <> ?", excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count, err
}

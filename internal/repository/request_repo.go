package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	pkgerrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
)

// RequestFilter 申报列表过滤条件（所有条件 AND 组合）
type RequestFilter struct {
	UserID   string
	Type     model.RequestType
	Statuses []model.Status
	Page     int
	PageSize int
}

// RequestRepository 住户申报数据访问接口
type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	GetByID(ctx context.Context, id string) (*model.Request, error)
	List(ctx context.Context, filter *RequestFilter) ([]model.Request, int64, error)
	Update(ctx context.Context, request *model.Request) error
}

type requestRepo struct {
	db *gorm.DB
}

// NewRequestRepo 创建 RequestRepository 实例
func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db: db}
}

func (r *requestRepo) Create(ctx context.Context, request *model.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (*model.Request, error) {
	var request model.Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("request_id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) List(ctx context.Context, filter *RequestFilter) ([]model.Request, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Request{})

	if filter.UserID != "" {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
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

	var requests []model.Request
	err := db.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&requests).Error
	return requests, total, err
}

func (r *requestRepo) Update(ctx context.Context, request *model.Request) error {
	oldVersion := request.Version
	result := r.db.WithContext(ctx).
		Model(request).
		Where("request_id = ? AND version = ?", request.RequestID, oldVersion).
		Updates(map[string]interface{}{
			"reason":         request.Reason,
			"start_date":     request.StartDate,
			"end_date":       request.EndDate,
			"status":         request.Status,
			"admin_response": request.AdminResponse,
			"updated_by":     request.UpdatedBy,
			"version":        oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	request.Version = oldVersion + 1
	return nil
}

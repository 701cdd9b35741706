package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/repository"
)

// ── 设施模块业务错误 ──

var (
	ErrFacilityNotFound = errors.New("Tiện ích không tồn tại")
	ErrFacilityInactive = errors.New("Tiện ích đang ngừng phục vụ")
)

// FacilityService 公共设施业务接口
type FacilityService interface {
	List(ctx context.Context, req *dto.FacilityListRequest, callerRole string) ([]dto.FacilityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FacilityResponse, error)
	Create(ctx context.Context, req *dto.CreateFacilityRequest, callerID string) (*dto.FacilityResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateFacilityRequest, callerID string) (*dto.FacilityResponse, error)
	Delete(ctx context.Context, id, callerID string) error
}

type facilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacilityService 创建 FacilityService 实例
func NewFacilityService(repo *repository.Repository, logger *zap.Logger) FacilityService {
	return &facilityService{repo: repo, logger: logger}
}

func (s *facilityService) List(ctx context.Context, req *dto.FacilityListRequest, callerRole string) ([]dto.FacilityResponse, error) {
	// 停用设施仅对管理员可见
	includeInactive := req.IncludeInactive && callerRole == "admin"

	facilities, err := s.repo.Facility.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("列出设施失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FacilityResponse, 0, len(facilities))
	for i := range facilities {
		result = append(result, *toFacilityResponse(&facilities[i]))
	}
	return result, nil
}

func (s *facilityService) GetByID(ctx context.Context, id string) (*dto.FacilityResponse, error) {
	facility, err := s.repo.Facility.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("查询设施失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toFacilityResponse(facility), nil
}

func (s *facilityService) Create(ctx context.Context, req *dto.CreateFacilityRequest, callerID string) (*dto.FacilityResponse, error) {
	facility := &model.Facility{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		HourlyPrice: req.HourlyPrice,
		IsActive:    true,
	}
	facility.CreatedBy = &callerID
	facility.UpdatedBy = &callerID

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.logger.Error("创建设施失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("设施已创建", zap.String("id", facility.FacilityID), zap.String("name", facility.Name))
	return toFacilityResponse(facility), nil
}

func (s *facilityService) Update(ctx context.Context, id string, req *dto.UpdateFacilityRequest, callerID string) (*dto.FacilityResponse, error) {
	facility, err := s.repo.Facility.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}
	if req.Location != nil {
		facility.Location = *req.Location
	}
	if req.Capacity != nil {
		facility.Capacity = req.Capacity
	}
	if req.HourlyPrice != nil {
		facility.HourlyPrice = req.HourlyPrice
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}
	facility.UpdatedBy = &callerID

	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.logger.Error("更新设施失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toFacilityResponse(facility), nil
}

func (s *facilityService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.Facility.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacilityNotFound
		}
		return err
	}

	if err := s.repo.Facility.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除设施失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("设施已删除", zap.String("id", id))
	return nil
}

func toFacilityResponse(f *model.Facility) *dto.FacilityResponse {
	return &dto.FacilityResponse{
		ID:          f.FacilityID,
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Capacity:    f.Capacity,
		HourlyPrice: f.HourlyPrice,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   f.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

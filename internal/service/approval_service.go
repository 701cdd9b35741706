package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/repository"
)

// ApprovalService 管理员审批台业务接口。
// 视图切换、类别过滤、审批动作之后的列表刷新均走全量重查，
// 不在内存中维护列表副本
type ApprovalService interface {
	ListBookings(ctx context.Context, req *dto.ApprovalBookingListRequest) ([]dto.BookingResponse, int64, error)
	ListRequests(ctx context.Context, req *dto.ApprovalRequestListRequest) ([]dto.RequestResponse, int64, error)
}

type approvalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewApprovalService 创建 ApprovalService 实例
func NewApprovalService(repo *repository.Repository, logger *zap.Logger) ApprovalService {
	return &approvalService{repo: repo, logger: logger}
}

// viewStatuses 视图名映射到状态集合；缺省视图为 pending
func viewStatuses(view string, withCompleted bool) []model.Status {
	if view == "history" {
		statuses := []model.Status{model.StatusApproved, model.StatusRejected}
		if withCompleted {
			statuses = append(statuses, model.StatusCompleted)
		}
		return statuses
	}
	return []model.Status{model.StatusPending}
}

func (s *approvalService) ListBookings(ctx context.Context, req *dto.ApprovalBookingListRequest) ([]dto.BookingResponse, int64, error) {
	filter := &repository.BookingFilter{
		FacilityID: req.FacilityID,
		Statuses:   viewStatuses(req.View, true),
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	bookings, total, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		s.logger.Error("审批台列出预订失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}

	return result, total, nil
}

func (s *approvalService) ListRequests(ctx context.Context, req *dto.ApprovalRequestListRequest) ([]dto.RequestResponse, int64, error) {
	filter := &repository.RequestFilter{
		Type:     model.RequestType(req.Type),
		Statuses: viewStatuses(req.View, false),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	requests, total, err := s.repo.Request.List(ctx, filter)
	if err != nil {
		s.logger.Error("审批台列出申报失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toRequestResponse(&requests[i]))
	}

	return result, total, nil
}

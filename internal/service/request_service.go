package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/model"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/repository"
	apperrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
)

// ── 申报模块业务错误 ──

var (
	ErrRequestNotFound    = errors.New("Đơn khai báo không tồn tại")
	ErrRequestNotEditable = errors.New("Chỉ có thể chỉnh sửa đơn đang chờ duyệt")
	ErrMissingDestination = errors.New("Vui lòng nhập nơi đến")
	ErrMissingOrigin      = errors.New("Vui lòng nhập nơi ở hiện tại")
	ErrEndBeforeStart     = errors.New("Ngày kết thúc phải sau ngày bắt đầu")
)

// RequestService 住户申报业务接口
type RequestService interface {
	Create(ctx context.Context, req *dto.CreateRequestRequest, userID string) (*dto.RequestResponse, error)
	GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.RequestResponse, error)
	ListMine(ctx context.Context, userID string, req *dto.RequestListRequest) ([]dto.RequestResponse, int64, error)
	UpdateMine(ctx context.Context, id string, req *dto.UpdateRequestRequest, userID string) (*dto.RequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateRequestStatusRequest, callerID string) (*dto.RequestResponse, error)
}

type requestService struct {
	repo   *repository.Repository
	guard  TransitionGuard
	logger *zap.Logger
}

// NewRequestService 创建 RequestService 实例
func NewRequestService(repo *repository.Repository, guard TransitionGuard, logger *zap.Logger) RequestService {
	return &requestService{repo: repo, guard: guard, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *requestService) Create(ctx context.Context, req *dto.CreateRequestRequest, userID string) (*dto.RequestResponse, error) {
	typ := model.RequestType(req.Type)

	fields := ReasonFields{
		Member:        strings.TrimSpace(req.Member),
		Destination:   strings.TrimSpace(req.Destination),
		Origin:        strings.TrimSpace(req.Origin),
		Justification: strings.TrimSpace(req.Justification),
	}

	if err := validateReasonFields(typ, fields); err != nil {
		return nil, err
	}
	if err := validateRequestDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	request := &model.Request{
		UserID:    userID,
		Type:      typ,
		Reason:    EncodeReason(typ, fields),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    model.StatusPending,
	}
	request.CreatedBy = &userID
	request.UpdatedBy = &userID

	if err := s.repo.Request.Create(ctx, request); err != nil {
		s.logger.Error("创建申报失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Request.GetByID(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}

	return toRequestResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *requestService) GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.RequestResponse, error) {
	request, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("查询申报失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if callerRole != "admin" && request.UserID != callerID {
		return nil, ErrNotOwner
	}

	return toRequestResponse(request), nil
}

// ────────────────────── ListMine ──────────────────────

func (s *requestService) ListMine(ctx context.Context, userID string, req *dto.RequestListRequest) ([]dto.RequestResponse, int64, error) {
	filter := &repository.RequestFilter{
		UserID:   userID,
		Type:     model.RequestType(req.Type),
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		filter.Statuses = []model.Status{model.Status(req.Status)}
	}

	requests, total, err := s.repo.Request.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出申报失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toRequestResponse(&requests[i]))
	}

	return result, total, nil
}

// ────────────────────── UpdateMine ──────────────────────

// UpdateMine 申报人修改自己的申报。
// 权属与状态检查先于一切字段处理：非 pending 的申报直接拒绝修改
func (s *requestService) UpdateMine(ctx context.Context, id string, req *dto.UpdateRequestRequest, userID string) (*dto.RequestResponse, error) {
	request, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("查询申报失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if request.UserID != userID {
		return nil, ErrNotOwner
	}
	if request.Status != model.StatusPending {
		return nil, ErrRequestNotEditable
	}

	// 解出当前子字段，叠加本次提交的增量，再整体重编码
	fields := DecodeReason(request.Type, request.Reason)
	if req.Member != nil {
		fields.Member = strings.TrimSpace(*req.Member)
	}
	if req.Destination != nil {
		fields.Destination = strings.TrimSpace(*req.Destination)
	}
	if req.Origin != nil {
		fields.Origin = strings.TrimSpace(*req.Origin)
	}
	if req.Justification != nil {
		fields.Justification = strings.TrimSpace(*req.Justification)
	}

	startDate := request.StartDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := request.EndDate
	if req.EndDate != nil {
		endDate = req.EndDate
	}

	if err := validateReasonFields(request.Type, fields); err != nil {
		return nil, err
	}
	if err := validateRequestDates(startDate, endDate); err != nil {
		return nil, err
	}

	request.Reason = EncodeReason(request.Type, fields)
	request.StartDate = startDate
	request.EndDate = endDate
	request.UpdatedBy = &userID

	if err := s.repo.Request.Update(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, ErrTransitionInFlight
		}
		s.logger.Error("更新申报失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toRequestResponse(request), nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *requestService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateRequestStatusRequest, callerID string) (*dto.RequestResponse, error) {
	next := model.Status(req.Status)

	if next == model.StatusRejected && strings.TrimSpace(req.AdminResponse) == "" {
		return nil, ErrRejectReasonRequired
	}

	if !s.guard.TryAcquire(ctx, id) {
		return nil, ErrTransitionInFlight
	}
	defer s.guard.Release(ctx, id)

	request, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("查询申报失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	request.Status = next
	if next == model.StatusRejected {
		request.AdminResponse = strings.TrimSpace(req.AdminResponse)
	}
	request.UpdatedBy = &callerID

	if err := s.repo.Request.Update(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, ErrTransitionInFlight
		}
		s.logger.Error("更新申报状态失败",
			zap.String("id", id),
			zap.String("next", string(next)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("申报状态已流转",
		zap.String("id", id),
		zap.String("status", string(next)),
		zap.String("operator", callerID),
	)

	return toRequestResponse(request), nil
}

// ── 内部辅助方法 ──

// validateReasonFields 按申报类型检查必填子字段
func validateReasonFields(typ model.RequestType, f ReasonFields) error {
	switch typ {
	case model.RequestTemporaryAbsence:
		if f.Destination == "" {
			return ErrMissingDestination
		}
	case model.RequestTemporaryResidence:
		if f.Origin == "" {
			return ErrMissingOrigin
		}
	}
	return nil
}

// validateRequestDates 检查日期格式及起止顺序
func validateRequestDates(startDate string, endDate *string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ErrInvalidDate
	}
	if endDate != nil && *endDate != "" {
		end, err := time.Parse(dateLayout, *endDate)
		if err != nil {
			return ErrInvalidDate
		}
		if !end.After(start) {
			return ErrEndBeforeStart
		}
	}
	return nil
}

func toRequestResponse(r *model.Request) *dto.RequestResponse {
	fields := DecodeReason(r.Type, r.Reason)

	resp := &dto.RequestResponse{
		ID:            r.RequestID,
		UserID:        r.UserID,
		Type:          string(r.Type),
		Reason:        r.Reason,
		Member:        fields.Member,
		Destination:   fields.Destination,
		Origin:        fields.Origin,
		Justification: fields.Justification,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Status:        string(r.Status),
		AdminResponse: r.AdminResponse,
		CreatedAt:     r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     r.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}

	if r.User != nil {
		resp.UserName = r.User.Name
		resp.Apartment = r.User.Apartment
	}

	return resp
}

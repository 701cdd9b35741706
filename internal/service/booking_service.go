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

// ── 预订模块业务错误 ──

var (
	ErrBookingNotFound      = errors.New("Đơn đặt chỗ không tồn tại")
	ErrSlotConflict         = errors.New(apperrors.MsgSlotConflict)
	ErrInvalidTransition    = errors.New("Trạng thái hiện tại không cho phép thao tác này")
	ErrRejectReasonRequired = errors.New("Vui lòng nhập lý do từ chối")
	ErrTransitionInFlight   = errors.New("Thao tác đang được xử lý, vui lòng thử lại")
	ErrNotOwner             = errors.New("Không có quyền truy cập bản ghi này")
)

// BookingService 设施预订业务接口
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, userID string) (*dto.BookingResponse, error)
	GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.BookingResponse, error)
	ListMine(ctx context.Context, userID string, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateBookingStatusRequest, callerID string) (*dto.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	guard  TransitionGuard
	logger *zap.Logger
}

// NewBookingService 创建 BookingService 实例
func NewBookingService(repo *repository.Repository, guard TransitionGuard, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, guard: guard, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest, userID string) (*dto.BookingResponse, error) {
	// 1. 校验设施存在且在服务中
	facility, err := s.repo.Facility.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("查询设施失败", zap.String("facility_id", req.FacilityID), zap.Error(err))
		return nil, err
	}
	if !facility.IsActive {
		return nil, ErrFacilityInactive
	}

	// 2. 时间规则：过去时刻/起止颠倒在本地拒绝，不落库
	if err := CheckBookingTime(req.BookingDate, req.StartTime, req.EndTime, time.Now()); err != nil {
		return nil, err
	}

	// 3. 档期冲突：同设施同日与候选时段重叠的非 rejected 预订
	overlap, err := s.repo.Booking.CountOverlapping(ctx, req.FacilityID, req.BookingDate, req.StartTime, req.EndTime, "")
	if err != nil {
		s.logger.Error("检查档期冲突失败", zap.String("facility_id", req.FacilityID), zap.Error(err))
		return nil, err
	}
	if overlap > 0 {
		return nil, ErrSlotConflict
	}

	// 4. 计价快照：按提交时刻的设施单价固定总价
	price, err := CalcBookingPrice(req.StartTime, req.EndTime, facility.HourlyPrice)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		FacilityID:     req.FacilityID,
		UserID:         userID,
		BookingDate:    req.BookingDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Purpose:        req.Purpose,
		AttendeesCount: req.AttendeesCount,
		TotalPrice:     price,
		Status:         model.StatusPending,
	}
	booking.CreatedBy = &userID
	booking.UpdatedBy = &userID

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.logger.Error("创建预订失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以获取关联
	created, err := s.repo.Booking.GetByID(ctx, booking.BookingID)
	if err != nil {
		return nil, err
	}

	return toBookingResponse(created), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *bookingService) GetByID(ctx context.Context, id, callerID, callerRole string) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 住户只能查看自己的预订
	if callerRole != "admin" && booking.UserID != callerID {
		return nil, ErrNotOwner
	}

	return toBookingResponse(booking), nil
}

// ────────────────────── ListMine ──────────────────────

func (s *bookingService) ListMine(ctx context.Context, userID string, req *dto.BookingListRequest) ([]dto.BookingResponse, int64, error) {
	filter := &repository.BookingFilter{
		UserID:     userID,
		FacilityID: req.FacilityID,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if req.Status != "" {
		filter.Statuses = []model.Status{model.Status(req.Status)}
	}

	bookings, total, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		s.logger.Error("列出预订失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *toBookingResponse(&bookings[i]))
	}

	return result, total, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateBookingStatusRequest, callerID string) (*dto.BookingResponse, error) {
	next := model.Status(req.Status)

	// 拒绝必须附说明；不满足时本地拒绝，不发起任何写入
	if next == model.StatusRejected && strings.TrimSpace(req.AdminResponse) == "" {
		return nil, ErrRejectReasonRequired
	}

	// 同一记录同一时刻只允许一个审批动作在途
	if !s.guard.TryAcquire(ctx, id) {
		return nil, ErrTransitionInFlight
	}
	defer s.guard.Release(ctx, id)

	// 持锁内重读再检查状态机，晚到的重复动作不可能落在别的记录上
	booking, err := s.repo.Booking.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("查询预订失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	booking.Status = next
	if next == model.StatusRejected {
		booking.AdminResponse = strings.TrimSpace(req.AdminResponse)
	}
	booking.UpdatedBy = &callerID

	// 写入失败时内存状态不保留，由调用方重试
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, ErrTransitionInFlight
		}
		s.logger.Error("更新预订状态失败",
			zap.String("id", id),
			zap.String("next", string(next)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("预订状态已流转",
		zap.String("id", id),
		zap.String("status", string(next)),
		zap.String("operator", callerID),
	)

	return toBookingResponse(booking), nil
}

// ── 内部辅助方法 ──

func toBookingResponse(b *model.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:             b.BookingID,
		FacilityID:     b.FacilityID,
		UserID:         b.UserID,
		BookingDate:    b.BookingDate,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Purpose:        b.Purpose,
		AttendeesCount: b.AttendeesCount,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		AdminResponse:  b.AdminResponse,
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      b.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}

	if b.Facility != nil {
		resp.Facility = &dto.FacilityBrief{
			ID:          b.Facility.FacilityID,
			Name:        b.Facility.Name,
			Location:    b.Facility.Location,
			HourlyPrice: b.Facility.HourlyPrice,
		}
	}
	if b.User != nil {
		resp.UserName = b.User.Name
		resp.Apartment = b.User.Apartment
	}

	return resp
}

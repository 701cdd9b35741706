package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	apperrors "github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/errors"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

// BookingHandler 设施预订模块 HTTP 处理器
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler 创建 BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Create 创建预订
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 31001, "Thiếu thông tin bắt buộc")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// Get 获取预订详情
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 31001, "Thiếu thông tin bắt buộc")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// ListMine 获取我的预订列表
// GET /api/v1/bookings
func (h *BookingHandler) ListMine(c *gin.Context) {
	var req dto.BookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 31001, "Tham số không hợp lệ")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	items, total, err := h.bookingSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OKPage(c, items, total, req.GetPage(), req.GetPageSize())
}

// UpdateStatus 审批预订（管理员）
// PUT /api/v1/admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 31001, "Thiếu thông tin bắt buộc")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 31001, "Thiếu thông tin bắt buộc")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingSvc.UpdateStatus(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// handleBookingError 统一处理预订模块业务错误。
// 档期冲突使用约定的结构化错误码与原文消息，客户端按码识别
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSlotConflict):
		response.BadRequest(c, apperrors.CodeSlotConflict, apperrors.MsgSlotConflict)
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 31101, service.ErrBookingNotFound.Error())
	case errors.Is(err, service.ErrFacilityNotFound):
		response.NotFound(c, 21101, service.ErrFacilityNotFound.Error())
	case errors.Is(err, service.ErrFacilityInactive):
		response.BadRequest(c, 21102, service.ErrFacilityInactive.Error())
	case errors.Is(err, service.ErrTimeInPast):
		response.BadRequest(c, 31002, service.ErrTimeInPast.Error())
	case errors.Is(err, service.ErrEndNotAfterStart):
		response.BadRequest(c, 31003, service.ErrEndNotAfterStart.Error())
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrInvalidClock):
		response.BadRequest(c, 31001, "Thiếu thông tin bắt buộc")
	case errors.Is(err, service.ErrInvalidTransition):
		response.BadRequest(c, 31102, service.ErrInvalidTransition.Error())
	case errors.Is(err, service.ErrRejectReasonRequired):
		response.BadRequest(c, 31103, service.ErrRejectReasonRequired.Error())
	case errors.Is(err, service.ErrTransitionInFlight):
		response.Error(c, http.StatusConflict, 31104, service.ErrTransitionInFlight.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, 31105, service.ErrNotOwner.Error())
	default:
		response.InternalError(c)
	}
}

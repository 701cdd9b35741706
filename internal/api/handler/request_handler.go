package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

// RequestHandler 住户申报模块 HTTP 处理器
type RequestHandler struct {
	requestSvc service.RequestService
}

// NewRequestHandler 创建 RequestHandler
func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

// Create 创建申报
// POST /api/v1/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	request, err := h.requestSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.Created(c, request)
}

// Get 获取申报详情
// GET /api/v1/requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
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

	request, err := h.requestSvc.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, request)
}

// ListMine 获取我的申报列表
// GET /api/v1/requests
func (h *RequestHandler) ListMine(c *gin.Context) {
	var req dto.RequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 41001, "Tham số không hợp lệ")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	items, total, err := h.requestSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OKPage(c, items, total, req.GetPage(), req.GetPageSize())
}

// Update 申报人修改申报（仅 pending）
// PUT /api/v1/requests/:id
func (h *RequestHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
		return
	}

	var req dto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 41001, "Tham số không hợp lệ")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	request, err := h.requestSvc.UpdateMine(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, request)
}

// UpdateStatus 审批申报（管理员）
// PUT /api/v1/admin/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	request, err := h.requestSvc.UpdateStatus(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, request)
}

// handleRequestError 统一处理申报模块业务错误
func (h *RequestHandler) handleRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 41101, service.ErrRequestNotFound.Error())
	case errors.Is(err, service.ErrRequestNotEditable):
		response.BadRequest(c, 41102, service.ErrRequestNotEditable.Error())
	case errors.Is(err, service.ErrMissingDestination):
		response.BadRequest(c, 41103, service.ErrMissingDestination.Error())
	case errors.Is(err, service.ErrMissingOrigin):
		response.BadRequest(c, 41104, service.ErrMissingOrigin.Error())
	case errors.Is(err, service.ErrEndBeforeStart):
		response.BadRequest(c, 41105, service.ErrEndBeforeStart.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 41001, "Thiếu thông tin bắt buộc")
	case errors.Is(err, service.ErrInvalidTransition):
		response.BadRequest(c, 41106, service.ErrInvalidTransition.Error())
	case errors.Is(err, service.ErrRejectReasonRequired):
		response.BadRequest(c, 41107, service.ErrRejectReasonRequired.Error())
	case errors.Is(err, service.ErrTransitionInFlight):
		response.Error(c, http.StatusConflict, 41108, service.ErrTransitionInFlight.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, 41109, service.ErrNotOwner.Error())
	default:
		response.InternalError(c)
	}
}

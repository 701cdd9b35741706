package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

// ApprovalHandler 管理员审批台 HTTP 处理器
type ApprovalHandler struct {
	approvalSvc service.ApprovalService
}

// NewApprovalHandler 创建 ApprovalHandler
func NewApprovalHandler(approvalSvc service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalSvc: approvalSvc}
}

// ListBookings 审批台预订列表（待审/历史视图）
// GET /api/v1/admin/bookings
func (h *ApprovalHandler) ListBookings(c *gin.Context) {
	var req dto.ApprovalBookingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 51001, "Tham số không hợp lệ")
		return
	}

	items, total, err := h.approvalSvc.ListBookings(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, items, total, req.GetPage(), req.GetPageSize())
}

// ListRequests 审批台申报列表（待审/历史视图）
// GET /api/v1/admin/requests
func (h *ApprovalHandler) ListRequests(c *gin.Context) {
	var req dto.ApprovalRequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 51001, "Tham số không hợp lệ")
		return
	}

	items, total, err := h.approvalSvc.ListRequests(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, items, total, req.GetPage(), req.GetPageSize())
}

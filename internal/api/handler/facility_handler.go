package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/dto"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/internal/service"
	"github.com/sldz0907/QuanLyNhaVanHoa-sub001/pkg/response"
)

// FacilityHandler 公共设施模块 HTTP 处理器
type FacilityHandler struct {
	facilitySvc service.FacilityService
}

// NewFacilityHandler 创建 FacilityHandler
func NewFacilityHandler(facilitySvc service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilitySvc: facilitySvc}
}

// List 获取设施列表
// GET /api/v1/facilities
func (h *FacilityHandler) List(c *gin.Context) {
	var req dto.FacilityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 21001, "Tham số không hợp lệ")
		return
	}

	role, _ := MustGetRole(c)

	items, err := h.facilitySvc.List(c.Request.Context(), &req, role)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// Get 获取设施详情
// GET /api/v1/facilities/:id
func (h *FacilityHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 21001, "Thiếu thông tin bắt buộc")
		return
	}

	facility, err := h.facilitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.OK(c, facility)
}

// Create 创建设施（管理员）
// POST /api/v1/admin/facilities
func (h *FacilityHandler) Create(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, "Thiếu thông tin bắt buộc")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	facility, err := h.facilitySvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.Created(c, facility)
}

// Update 更新设施（管理员）
// PUT /api/v1/admin/facilities/:id
func (h *FacilityHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 21001, "Thiếu thông tin bắt buộc")
		return
	}

	var req dto.UpdateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, "Tham số không hợp lệ")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	facility, err := h.facilitySvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.OK(c, facility)
}

// Delete 删除设施（管理员，软删除）
// DELETE /api/v1/admin/facilities/:id
func (h *FacilityHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 21001, "Thiếu thông tin bắt buộc")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.facilitySvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFacilityError 统一处理设施模块业务错误
func (h *FacilityHandler) handleFacilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		response.NotFound(c, 21101, service.ErrFacilityNotFound.Error())
	case errors.Is(err, service.ErrFacilityInactive):
		response.BadRequest(c, 21102, service.ErrFacilityInactive.Error())
	default:
		response.InternalError(c)
	}
}

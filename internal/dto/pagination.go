package dto

// ── 分页参数缺省值 ──

const (
	defaultPage     = 1
	defaultPageSize = 20
)

func normalizePage(page int) int {
	if page <= 0 {
		return defaultPage
	}
	return page
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return defaultPageSize
	}
	return size
}

// GetPage 返回规范化后的页码
func (r *BookingListRequest) GetPage() int { return normalizePage(r.Page) }

// GetPageSize 返回规范化后的每页条数
func (r *BookingListRequest) GetPageSize() int { return normalizePageSize(r.PageSize) }

// GetPage 返回规范化后的页码
func (r *RequestListRequest) GetPage() int { return normalizePage(r.Page) }

// GetPageSize 返回规范化后的每页条数
func (r *RequestListRequest) GetPageSize() int { return normalizePageSize(r.PageSize) }

// GetPage 返回规范化后的页码
func (r *ApprovalBookingListRequest) GetPage() int { return normalizePage(r.Page) }

// GetPageSize 返回规范化后的每页条数
func (r *ApprovalBookingListRequest) GetPageSize() int { return normalizePageSize(r.PageSize) }

// GetPage 返回规范化后的页码
func (r *ApprovalRequestListRequest) GetPage() int { return normalizePage(r.Page) }

// GetPageSize 返回规范化后的每页条数
func (r *ApprovalRequestListRequest) GetPageSize() int { return normalizePageSize(r.PageSize) }

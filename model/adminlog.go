package model

// AdminLog records every moderation action for audit.
type AdminLog struct {
	DTO
	AdminId    uint   `gorm:"not null;index" json:"adminId"`
	AdminEmail string `gorm:"not null" json:"adminEmail"`
	Action     string `gorm:"not null" json:"action"`
	Details    string `json:"details"`

	Admin User `gorm:"foreignKey:AdminId" json:"-"`
}

type AdminLogs []AdminLog

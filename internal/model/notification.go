package model

const NotificationMessageTableName = "notification_messages"

// NotificationMessage 待发送的通知(发件箱), 发送成功后删除
type NotificationMessage struct {
	BaseModel
	Type        string  `gorm:"size:20;not null" json:"type"` // SQS, AMQP
	Destination string  `gorm:"size:200;not null" json:"destination"`
	Text        string  `gorm:"type:text;not null" json:"text"`
	Attempts    int     `gorm:"not null;default:0" json:"attempts"`
	LastError   *string `gorm:"type:text" json:"last_error,omitempty"`
}

func (NotificationMessage) TableName() string {
	return NotificationMessageTableName
}

package dto

// PublishNotificationsResponse 一次发件箱发送的统计
type PublishNotificationsResponse struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

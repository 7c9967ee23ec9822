package constants

// BusinessObjectDataStatus 业务对象数据状态
const (
	DataStatusValid         = "VALID"
	DataStatusInvalid       = "INVALID"
	DataStatusUploading     = "UPLOADING"
	DataStatusPendingUpload = "PENDING_UPLOAD"
	DataStatusReEncrypting  = "RE-ENCRYPTING"
	DataStatusArchived      = "ARCHIVED"
	DataStatusDeleted       = "DELETED"
	DataStatusExpired       = "EXPIRED"
)

// DataStatuses 所有可登记的数据状态
var DataStatuses = []string{
	DataStatusValid,
	DataStatusInvalid,
	DataStatusUploading,
	DataStatusPendingUpload,
	DataStatusReEncrypting,
	DataStatusArchived,
	DataStatusDeleted,
	DataStatusExpired,
}

// ReasonNotRegistered 可用性检查中未登记(或不在指定存储)的原因码
const ReasonNotRegistered = "NOT_REGISTERED"

// StorageUnitStatus 存储单元状态
const (
	StorageUnitStatusEnabled  = "ENABLED"
	StorageUnitStatusDisabled = "DISABLED"
)

// MaxSubPartitions 子分区列的最大数量
const MaxSubPartitions = 4

// NotificationType 通知消息类型
const (
	NotificationTypeSQS  = "SQS"
	NotificationTypeAMQP = "AMQP"
)

// 消息提供方
const (
	MessagingProviderNone = "none"
	MessagingProviderSQS  = "sqs"
	MessagingProviderAMQP = "amqp"
)

// 通知事件
const (
	EventDataRegistered    = "BUS_OBJCT_DATA_RGSTN"
	EventDataStatusChanged = "BUS_OBJCT_DATA_STTS_CHG"
	EventEmrClusterCreated = "EMR_CLSTR_CRTD"
)

// JWT 相关
const (
	JWTContextKey  = "jwt_user"
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// 未登录时记录的审计用户
const SystemUser = "system"

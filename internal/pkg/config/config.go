package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Emr       EmrConfig       `mapstructure:"emr"`
	Messaging MessagingConfig `mapstructure:"messaging"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	Enabled bool       `mapstructure:"enabled"` // 写操作是否需要token
	JWT     JWTConfig  `mapstructure:"jwt"`
	LDAP    LDAPConfig `mapstructure:"ldap"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret             string `mapstructure:"secret"`
	AccessTokenExpire  int    `mapstructure:"access_token_expire"`  // 秒
	RefreshTokenExpire int    `mapstructure:"refresh_token_expire"` // 秒
}

// LDAPConfig LDAP配置, 启用后可通过 /auth/login 换取Token
type LDAPConfig struct {
	Enabled      bool           `mapstructure:"enabled"`
	Host         string         `mapstructure:"host"`
	Port         int            `mapstructure:"port"`
	UseSSL       bool           `mapstructure:"use_ssl"`
	BindDN       string         `mapstructure:"bind_dn"`
	BindPassword string         `mapstructure:"bind_password"`
	BaseDN       string         `mapstructure:"base_dn"`
	UserFilter   string         `mapstructure:"user_filter"` // 例如 (uid=%s)
	Attributes   LDAPAttributes `mapstructure:"attributes"`
}

// LDAPAttributes LDAP属性映射
type LDAPAttributes struct {
	Username    string `mapstructure:"username"`
	Email       string `mapstructure:"email"`
	DisplayName string `mapstructure:"display_name"`
}

// URL ldap:// 或 ldaps:// 地址
func (c *LDAPConfig) URL() string {
	scheme := "ldap"
	if c.UseSSL {
		scheme = "ldaps"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// CatalogConfig 元数据目录配置
type CatalogConfig struct {
	DefaultStorage     string `mapstructure:"default_storage"`      // 可用性检查未指定存储时使用
	MaxPartitionValues int    `mapstructure:"max_partition_values"` // 单次可用性检查最多展开的分区值数量, 0 不限制
}

// EmrConfig EMR集群配置
type EmrConfig struct {
	Region            string   `mapstructure:"region"`
	DryRun            bool     `mapstructure:"dry_run"`             // 只校验不创建
	MandatoryNodeTags []string `mapstructure:"mandatory_node_tags"` // 必须出现的节点标签
}

// MessagingConfig 消息通知配置
type MessagingConfig struct {
	Provider    string     `mapstructure:"provider"`    // none, sqs, amqp
	Destination string     `mapstructure:"destination"` // 队列名称
	SQS         SQSConfig  `mapstructure:"sqs"`
	AMQP        AMQPConfig `mapstructure:"amqp"`
}

// SQSConfig AWS SQS配置
type SQSConfig struct {
	Region        string `mapstructure:"region"`
	HTTPProxyHost string `mapstructure:"http_proxy_host"`
	HTTPProxyPort int    `mapstructure:"http_proxy_port"`
}

// AMQPConfig RabbitMQ配置
type AMQPConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	VHost    string `mapstructure:"vhost"`
}

// BuildURL 生成 amqp 连接地址, 显式配置的 url 优先
func (c *AMQPConfig) BuildURL() string {
	if c.URL != "" {
		return c.URL
	}
	vhost := c.VHost
	if vhost == "" {
		vhost = "/"
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%d%s", c.Username, c.Password, c.Host, c.Port, vhost)
}

// SchedulerConfig 定时任务配置
type SchedulerConfig struct {
	NotificationCron string `mapstructure:"notification_cron"` // 秒 分 时 日 月 周
	PublishBatchSize int    `mapstructure:"publish_batch_size"`
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// 读取环境变量: CATALOG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("catalog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	GlobalConfig = config

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "data-catalog")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("auth.jwt.access_token_expire", 7200)
	v.SetDefault("auth.jwt.refresh_token_expire", 604800)
	v.SetDefault("auth.ldap.port", 389)
	v.SetDefault("auth.ldap.user_filter", "(uid=%s)")
	v.SetDefault("auth.ldap.attributes.username", "uid")
	v.SetDefault("auth.ldap.attributes.email", "mail")
	v.SetDefault("auth.ldap.attributes.display_name", "cn")
	v.SetDefault("catalog.max_partition_values", 5000)
	v.SetDefault("messaging.provider", "none")
	v.SetDefault("scheduler.notification_cron", "*/30 * * * * *")
	v.SetDefault("scheduler.publish_batch_size", 100)
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

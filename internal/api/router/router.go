package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"data-catalog/internal/api/handler"
	"data-catalog/internal/api/middleware"
	"data-catalog/internal/pkg/config"
	"data-catalog/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, services *service.Services) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Handler
	authHandler := handler.NewAuthHandler(services.Auth)
	storageHandler := handler.NewStorageHandler(services.Storage)
	groupHandler := handler.NewPartitionKeyGroupHandler(services.PartitionKeyGroup)
	formatHandler := handler.NewFormatHandler(services.Format)
	dataHandler := handler.NewBusinessObjectDataHandler(services.BusinessObjectData)
	tagHandler := handler.NewTagHandler(services.Tag)
	ruleTypeHandler := handler.NewStoragePolicyRuleTypeHandler(services.StoragePolicyRuleType)
	emrHandler := handler.NewEmrHandler(services.EmrClusterDefinition, services.EmrCluster)
	notificationHandler := handler.NewNotificationHandler(services.Notification)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(optionalAuth(cfg.Auth)))
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/refresh", authHandler.Refresh)
		v1.GET("/auth/me", authHandler.GetMe)

		// 只读接口
		v1.GET("/storages", storageHandler.List)
		v1.GET("/storages/:name", storageHandler.Get)
		v1.GET("/partition-key-groups/:name", groupHandler.Get)
		v1.GET("/partition-key-groups/:name/expected-partition-values", groupHandler.ListExpectedValues)
		v1.GET("/formats", formatHandler.Get)
		v1.GET("/business-object-data", dataHandler.Get)
		v1.POST("/business-object-data/availability", dataHandler.CheckAvailability)
		v1.GET("/tag-types", tagHandler.ListTagTypes)
		v1.GET("/tag-types/:code", tagHandler.GetTagType)
		v1.GET("/tag-types/:code/tags", tagHandler.ListTags)
		v1.GET("/tag-types/:code/tags/:tagCode", tagHandler.GetTag)
		v1.GET("/storage-policy-rule-types/:code", ruleTypeHandler.Get)
		v1.GET("/emr-cluster-definitions/:namespace", emrHandler.ListDefinitions)
		v1.GET("/emr-cluster-definitions/:namespace/:name", emrHandler.GetDefinition)
		v1.GET("/emr-cluster-definitions/:namespace/:name/clusters", emrHandler.ListCreationLogs)
		v1.POST("/emr-cluster-definitions/validate", emrHandler.ValidateDefinition)
	}

	// 写接口, 启用认证时必须携带访问Token
	authed := r.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware(cfg.Auth))
	{
		authed.POST("/storages", storageHandler.Create)

		authed.POST("/partition-key-groups", groupHandler.Create)
		authed.DELETE("/partition-key-groups/:name", groupHandler.Delete)
		authed.POST("/expected-partition-values", groupHandler.AddExpectedValues)
		authed.POST("/expected-partition-values/delete", groupHandler.DeleteExpectedValues)

		authed.POST("/formats", formatHandler.Create)

		authed.POST("/business-object-data", dataHandler.Register)
		authed.PUT("/business-object-data/status", dataHandler.UpdateStatus)

		authed.POST("/tag-types", tagHandler.CreateTagType)
		authed.POST("/tags", tagHandler.CreateTag)

		authed.POST("/storage-policy-rule-types", ruleTypeHandler.Create)

		authed.POST("/emr-cluster-definitions", emrHandler.CreateDefinition)
		authed.PUT("/emr-cluster-definitions", emrHandler.UpdateDefinition)
		authed.DELETE("/emr-cluster-definitions/:namespace/:name", emrHandler.DeleteDefinition)
		authed.PUT("/emr-cluster-definitions/:namespace/:name/yaml", emrHandler.ImportDefinition)
		authed.POST("/emr-clusters", emrHandler.CreateCluster)

		authed.POST("/notifications/publish", notificationHandler.Publish)
	}

	return r
}

// optionalAuth 只读接口不强制认证, 携带Token时仍记录用户
func optionalAuth(cfg config.AuthConfig) config.AuthConfig {
	cfg.Enabled = false
	return cfg
}

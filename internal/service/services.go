package service

import (
	"gorm.io/gorm"

	"data-catalog/internal/adapter/notification"
	"data-catalog/internal/adapter/provision"
	"data-catalog/internal/core/availability"
	"data-catalog/internal/core/clusterdef"
	"data-catalog/internal/pkg/config"
	"data-catalog/internal/repository"
)

// Services 路由与定时任务共用的服务集合
type Services struct {
	Auth                  AuthService
	Storage               StorageService
	PartitionKeyGroup     PartitionKeyGroupService
	Format                FormatService
	BusinessObjectData    BusinessObjectDataService
	Tag                   TagService
	StoragePolicyRuleType StoragePolicyRuleTypeService
	EmrClusterDefinition  EmrClusterDefinitionService
	EmrCluster            EmrClusterService
	Notification          NotificationService
}

// NewServices 初始化Repository并组装全部服务
func NewServices(cfg *config.Config, db *gorm.DB, publisher notification.Publisher, provisioner provision.Provisioner) *Services {
	storageRepo := repository.NewStorageRepository(db)
	groupRepo := repository.NewPartitionKeyGroupRepository(db)
	formatRepo := repository.NewFormatRepository(db)
	dataRepo := repository.NewBusinessObjectDataRepository(db)
	emrDefRepo := repository.NewEmrClusterDefinitionRepository(db)

	reconciler := availability.NewReconciler(
		repository.NewCatalog(groupRepo, dataRepo),
		cfg.Catalog.DefaultStorage,
		cfg.Catalog.MaxPartitionValues,
	)
	validator := clusterdef.NewValidator(cfg.Emr.MandatoryNodeTags)
	outbox := NewOutbox(publisher.Type(), cfg.Messaging.Destination)

	return &Services{
		Auth:                  NewAuthService(cfg.Auth, NewLDAPService(&cfg.Auth.LDAP)),
		Storage:               NewStorageService(storageRepo),
		PartitionKeyGroup:     NewPartitionKeyGroupService(groupRepo, formatRepo),
		Format:                NewFormatService(db, formatRepo, groupRepo),
		BusinessObjectData:    NewBusinessObjectDataService(db, dataRepo, formatRepo, storageRepo, reconciler, outbox),
		Tag:                   NewTagService(repository.NewTagTypeRepository(db), repository.NewTagRepository(db)),
		StoragePolicyRuleType: NewStoragePolicyRuleTypeService(repository.NewStoragePolicyRuleTypeRepository(db)),
		EmrClusterDefinition:  NewEmrClusterDefinitionService(emrDefRepo, validator),
		EmrCluster: NewEmrClusterService(db, emrDefRepo, repository.NewEmrClusterCreationLogRepository(db),
			validator, provisioner, outbox, cfg.Emr.DryRun),
		Notification: NewNotificationService(repository.NewNotificationRepository(db), publisher, cfg.Scheduler.PublishBatchSize),
	}
}

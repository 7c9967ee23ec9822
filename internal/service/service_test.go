package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"data-catalog/internal/core/availability"
	"data-catalog/internal/dto"
	"data-catalog/internal/pkg/database/dbtest"
	"data-catalog/internal/repository"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

const testUser = "tester"

// fixture 基于内存库组装的服务
type fixture struct {
	db        *gorm.DB
	storages  StorageService
	groups    PartitionKeyGroupService
	formats   FormatService
	data      BusinessObjectDataService
	tags      TagService
	ruleTypes StoragePolicyRuleTypeService
	outbox    repository.NotificationRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)

	storageRepo := repository.NewStorageRepository(db)
	groupRepo := repository.NewPartitionKeyGroupRepository(db)
	formatRepo := repository.NewFormatRepository(db)
	dataRepo := repository.NewBusinessObjectDataRepository(db)
	reconciler := availability.NewReconciler(repository.NewCatalog(groupRepo, dataRepo), "", 100)
	outbox := NewOutbox(constants.NotificationTypeSQS, "catalog-events")

	return &fixture{
		db:        db,
		storages:  NewStorageService(storageRepo),
		groups:    NewPartitionKeyGroupService(groupRepo, formatRepo),
		formats:   NewFormatService(db, formatRepo, groupRepo),
		data:      NewBusinessObjectDataService(db, dataRepo, formatRepo, storageRepo, reconciler, outbox),
		tags:      NewTagService(repository.NewTagTypeRepository(db), repository.NewTagRepository(db)),
		ruleTypes: NewStoragePolicyRuleTypeService(repository.NewStoragePolicyRuleTypeRepository(db)),
		outbox:    repository.NewNotificationRepository(db),
	}
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, pkgErrors.CodeOf(err), err.Error())
}

var testFormatKey = dto.FormatKey{
	Namespace:                    "NS",
	BusinessObjectDefinitionName: "TRADES",
	BusinessObjectFormatUsage:    "PRC",
	BusinessObjectFormatFileType: "TXT",
}

func strPtr(s string) *string {
	return &s
}

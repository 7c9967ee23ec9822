package repository

import (
	"context"

	"data-catalog/internal/core/availability"
)

// catalog 由分区键组与数据登记两个仓储组合成可用性检查所需的只读目录
type catalog struct {
	groups PartitionKeyGroupRepository
	data   BusinessObjectDataRepository
}

func NewCatalog(groups PartitionKeyGroupRepository, data BusinessObjectDataRepository) availability.Catalog {
	return &catalog{groups: groups, data: data}
}

func (c *catalog) ExpectedPartitionValues(ctx context.Context, group string) ([]string, error) {
	return c.groups.ExpectedPartitionValues(ctx, group)
}

func (c *catalog) FindRegistrations(ctx context.Context, query availability.RegistrationQuery) ([]availability.Registration, error) {
	return c.data.FindRegistrations(ctx, query)
}

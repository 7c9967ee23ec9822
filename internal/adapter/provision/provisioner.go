package provision

import (
	"context"

	"data-catalog/internal/core/clusterdef"
)

// ClusterRequest 创建集群请求, Definition 已通过校验
type ClusterRequest struct {
	Name       string
	Definition *clusterdef.ClusterDefinition
}

// Provisioner 集群创建适配器接口
type Provisioner interface {
	// CreateCluster 提交创建请求, 返回集群ID
	CreateCluster(ctx context.Context, req *ClusterRequest) (string, error)
}

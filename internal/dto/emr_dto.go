package dto

import "data-catalog/internal/core/clusterdef"

// EmrClusterDefinitionRequest 创建/更新EMR集群定义请求
type EmrClusterDefinitionRequest struct {
	Namespace  string                        `json:"namespace" binding:"required,max=100"`
	Name       string                        `json:"emr_cluster_definition_name" binding:"required,max=100"`
	Definition *clusterdef.ClusterDefinition `json:"emr_cluster_definition" binding:"required"`
}

// EmrClusterDefinitionResponse EMR集群定义响应
type EmrClusterDefinitionResponse struct {
	ID         int64                         `json:"id"`
	Namespace  string                        `json:"namespace"`
	Name       string                        `json:"emr_cluster_definition_name"`
	Definition *clusterdef.ClusterDefinition `json:"emr_cluster_definition"`
	UpdatedBy  string                        `json:"updated_by"`
	UpdatedAt  string                        `json:"updated_at"`
}

// CreateEmrClusterRequest 按已保存的定义创建集群, Override 不为空时整体替换定义
type CreateEmrClusterRequest struct {
	Namespace      string                        `json:"namespace" binding:"required,max=100"`
	DefinitionName string                        `json:"emr_cluster_definition_name" binding:"required,max=100"`
	ClusterName    string                        `json:"emr_cluster_name" binding:"required,max=200"`
	Override       *clusterdef.ClusterDefinition `json:"emr_cluster_definition_override"`
	DryRun         *bool                         `json:"dry_run"`
}

// EmrClusterResponse 集群创建结果
type EmrClusterResponse struct {
	Namespace      string                        `json:"namespace"`
	DefinitionName string                        `json:"emr_cluster_definition_name"`
	ClusterName    string                        `json:"emr_cluster_name"`
	ClusterID      string                        `json:"id,omitempty"`
	DryRun         bool                          `json:"dry_run"`
	Definition     *clusterdef.ClusterDefinition `json:"emr_cluster_definition"`
}

// EmrClusterCreationLogResponse 集群创建记录
type EmrClusterCreationLogResponse struct {
	ClusterName string `json:"emr_cluster_name"`
	ClusterID   string `json:"id"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

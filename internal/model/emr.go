package model

import "gorm.io/datatypes"

const EmrClusterDefinitionTableName = "emr_cluster_definitions"
const EmrClusterCreationLogTableName = "emr_cluster_creation_logs"

// EmrClusterDefinition 已校验的集群定义, configuration 为 clusterdef.ClusterDefinition 的 JSON
type EmrClusterDefinition struct {
	BaseModel
	Namespace     string         `gorm:"size:100;not null;uniqueIndex:uk_emr_def" json:"namespace"`
	Name          string         `gorm:"size:100;not null;uniqueIndex:uk_emr_def" json:"name"`
	Configuration datatypes.JSON `gorm:"type:json;not null" json:"configuration"`
}

func (EmrClusterDefinition) TableName() string {
	return EmrClusterDefinitionTableName
}

// EmrClusterCreationLog 集群创建记录
type EmrClusterCreationLog struct {
	BaseModel
	Namespace      string         `gorm:"size:100;not null;index:idx_emr_log" json:"namespace"`
	DefinitionName string         `gorm:"size:100;not null;index:idx_emr_log" json:"definition_name"`
	ClusterName    string         `gorm:"size:200;not null" json:"cluster_name"`
	ClusterID      string         `gorm:"size:100;not null" json:"cluster_id"`
	Definition     datatypes.JSON `gorm:"type:json" json:"definition"`
}

func (EmrClusterCreationLog) TableName() string {
	return EmrClusterCreationLogTableName
}

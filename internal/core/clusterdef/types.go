// Package clusterdef 描述并校验 EMR 集群定义.
package clusterdef

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ClusterDefinition 提交到集群创建接口之前的集群定义
type ClusterDefinition struct {
	// SubnetID 单个子网或逗号分隔的子网列表
	SubnetID            string               `json:"subnet_id" yaml:"subnet_id"`
	InstanceDefinitions *InstanceDefinitions `json:"instance_definitions" yaml:"instance_definitions"`
	NodeTags            []NodeTag            `json:"node_tags,omitempty" yaml:"node_tags,omitempty"`

	ReleaseLabel string   `json:"release_label,omitempty" yaml:"release_label,omitempty"`
	ServiceRole  string   `json:"service_role,omitempty" yaml:"service_role,omitempty"`
	JobFlowRole  string   `json:"job_flow_role,omitempty" yaml:"job_flow_role,omitempty"`
	KeepAlive    bool     `json:"keep_alive,omitempty" yaml:"keep_alive,omitempty"`
	Applications []string `json:"applications,omitempty" yaml:"applications,omitempty"`
}

// InstanceDefinitions master 必填, core/task 可选
type InstanceDefinitions struct {
	Master *InstanceGroupSpec `json:"master_instances" yaml:"master_instances"`
	Core   *InstanceGroupSpec `json:"core_instances,omitempty" yaml:"core_instances,omitempty"`
	Task   *InstanceGroupSpec `json:"task_instances,omitempty" yaml:"task_instances,omitempty"`
}

// InstanceGroupSpec 一组同构节点
type InstanceGroupSpec struct {
	InstanceCount     int              `json:"instance_count" yaml:"instance_count"`
	InstanceType      string           `json:"instance_type" yaml:"instance_type"`
	SpotPrice         *decimal.Decimal `json:"instance_spot_price,omitempty" yaml:"instance_spot_price,omitempty"`
	MaxSearchPrice    *decimal.Decimal `json:"instance_max_search_price,omitempty" yaml:"instance_max_search_price,omitempty"`
	OnDemandThreshold *decimal.Decimal `json:"instance_on_demand_threshold,omitempty" yaml:"instance_on_demand_threshold,omitempty"`
}

type NodeTag struct {
	Name  string `json:"tag_name" yaml:"tag_name"`
	Value string `json:"tag_value" yaml:"tag_value"`
}

// Subnets 拆分后的子网列表(已去除空白)
func (d *ClusterDefinition) Subnets() []string {
	parts := strings.Split(d.SubnetID, ",")
	subnets := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			subnets = append(subnets, s)
		}
	}
	return subnets
}

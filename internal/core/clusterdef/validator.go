package clusterdef

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Validator 集群定义校验器, 遇到第一条违反的规则即返回
type Validator struct {
	// MandatoryNodeTags 必须出现且值非空的节点标签名
	MandatoryNodeTags []string
}

func NewValidator(mandatoryNodeTags []string) *Validator {
	return &Validator{MandatoryNodeTags: mandatoryNodeTags}
}

// Validate 使用默认规则校验
func Validate(def *ClusterDefinition) error {
	return (&Validator{}).Validate(def)
}

type instanceGroup struct {
	label    string // Master, Core, Task
	field    string
	spec     *InstanceGroupSpec
	minCount int
}

func (g instanceGroup) name() string {
	return strings.ToLower(g.label)
}

// Validate 规则顺序: 子网 -> 各组数量与类型 -> 各组价格 -> 节点标签
func (v *Validator) Validate(def *ClusterDefinition) error {
	if def == nil {
		return newError(MissingRequiredField, "", "An EMR cluster definition must be specified.")
	}

	if err := validateSubnet(def.SubnetID); err != nil {
		return err
	}

	if def.InstanceDefinitions == nil {
		return newError(MissingRequiredField, "instance_definitions", "Instance definitions must be specified.")
	}
	if def.InstanceDefinitions.Master == nil {
		return newError(MissingRequiredField, "instance_definitions.master_instances", "Master instances must be specified.")
	}

	groups := []instanceGroup{
		{label: "Master", field: "instance_definitions.master_instances", spec: def.InstanceDefinitions.Master, minCount: 1},
		{label: "Core", field: "instance_definitions.core_instances", spec: def.InstanceDefinitions.Core, minCount: 0},
		{label: "Task", field: "instance_definitions.task_instances", spec: def.InstanceDefinitions.Task, minCount: 0},
	}

	for _, g := range groups {
		if err := validateSizing(g); err != nil {
			return err
		}
	}
	for _, g := range groups {
		if err := validatePricing(g); err != nil {
			return err
		}
	}

	return v.validateNodeTags(def.NodeTags)
}

func validateSubnet(subnetID string) error {
	if strings.TrimSpace(subnetID) == "" {
		return newError(MissingRequiredField, "subnet_id", "Subnet ID must be specified.")
	}
	for _, s := range strings.Split(subnetID, ",") {
		if strings.TrimSpace(s) == "" {
			return newError(BlankListElement, "subnet_id", "No blank is allowed in the list of subnet IDs.")
		}
	}
	return nil
}

func validateSizing(g instanceGroup) error {
	if g.spec == nil {
		return nil
	}
	if g.spec.InstanceCount < g.minCount {
		return newError(NegativeOrZeroValue, g.field+".instance_count",
			"At least %d %s instance must be specified.", g.minCount, g.name())
	}
	// EMR 实例数为 int32
	if g.spec.InstanceCount > math.MaxInt32 {
		return newError(ValueOutOfRange, g.field+".instance_count",
			"At most %d %s instances can be specified.", math.MaxInt32, g.name())
	}
	if strings.TrimSpace(g.spec.InstanceType) == "" {
		return newError(MissingRequiredField, g.field+".instance_type",
			"An instance type for %s instances must be specified.", g.name())
	}
	return nil
}

func validatePricing(g instanceGroup) error {
	spec := g.spec
	if spec == nil {
		return nil
	}

	if spec.SpotPrice != nil && spec.MaxSearchPrice != nil {
		return newError(MutuallyExclusiveFieldsSet, g.field,
			"%s instance spot price and max search price cannot both be specified.", g.label)
	}
	if spec.SpotPrice != nil && !isPositive(spec.SpotPrice) {
		return newError(NegativeOrZeroValue, g.field+".instance_spot_price",
			"%s instance spot price must be greater than 0", g.label)
	}
	if spec.MaxSearchPrice != nil && !isPositive(spec.MaxSearchPrice) {
		return newError(NegativeOrZeroValue, g.field+".instance_max_search_price",
			"%s instance max search price must be greater than 0", g.label)
	}
	if spec.OnDemandThreshold != nil {
		if spec.MaxSearchPrice == nil {
			return newError(DependentFieldMissingPrerequisite, g.field+".instance_on_demand_threshold",
				"%s instance on-demand threshold is not allowed unless max search price is specified.", g.label)
		}
		if !isPositive(spec.OnDemandThreshold) {
			return newError(NegativeOrZeroValue, g.field+".instance_on_demand_threshold",
				"%s instance on-demand threshold must be greater than 0", g.label)
		}
	}
	return nil
}

func isPositive(d *decimal.Decimal) bool {
	return d.Cmp(decimal.Zero) > 0
}

// validateNodeTags 允许重名标签
func (v *Validator) validateNodeTags(tags []NodeTag) error {
	present := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag.Name) == "" {
			return newError(MissingRequiredField, "node_tags.tag_name", "A node tag name must be specified.")
		}
		if strings.TrimSpace(tag.Value) != "" {
			present[tag.Name] = true
		}
	}

	for _, name := range v.MandatoryNodeTags {
		if !present[name] {
			return newError(MissingRequiredField, "node_tags",
				"Mandatory AWS tag not specified. The mandatory tag is: \"%s\".", name)
		}
	}
	return nil
}

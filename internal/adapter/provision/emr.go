package provision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"data-catalog/internal/core/clusterdef"
)

type emrAPI interface {
	RunJobFlow(ctx context.Context, params *emr.RunJobFlowInput, optFns ...func(*emr.Options)) (*emr.RunJobFlowOutput, error)
}

// EmrProvisioner 通过 RunJobFlow 创建 EMR 集群
type EmrProvisioner struct {
	client emrAPI
	logger *zap.Logger
}

func NewEmrProvisioner(ctx context.Context, region string, logger *zap.Logger) (*EmrProvisioner, error) {
	opts := []func(*awscfg.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awscfg.WithRegion(region))
	}
	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %w", err)
	}
	return &EmrProvisioner{client: emr.NewFromConfig(cfg), logger: logger}, nil
}

func (p *EmrProvisioner) CreateCluster(ctx context.Context, req *ClusterRequest) (string, error) {
	out, err := p.client.RunJobFlow(ctx, BuildRunJobFlowInput(req))
	if err != nil {
		return "", fmt.Errorf("创建EMR集群失败: %w", err)
	}

	clusterID := aws.ToString(out.JobFlowId)
	p.logger.Info("EMR集群已提交创建",
		zap.String("cluster_name", req.Name),
		zap.String("cluster_id", clusterID))
	return clusterID, nil
}

// BuildRunJobFlowInput 将集群定义转换为 RunJobFlow 参数
// 指定了最高搜索价时以该价格作为竞价上限
func BuildRunJobFlowInput(req *ClusterRequest) *emr.RunJobFlowInput {
	def := req.Definition

	input := &emr.RunJobFlowInput{
		Name: aws.String(req.Name),
		Instances: &emrtypes.JobFlowInstancesConfig{
			Ec2SubnetIds:                def.Subnets(),
			KeepJobFlowAliveWhenNoSteps: aws.Bool(def.KeepAlive),
			InstanceGroups:              instanceGroups(def.InstanceDefinitions),
		},
		VisibleToAllUsers: aws.Bool(true),
		Applications: lo.Map(def.Applications, func(name string, _ int) emrtypes.Application {
			return emrtypes.Application{Name: aws.String(name)}
		}),
		Tags: lo.Map(def.NodeTags, func(tag clusterdef.NodeTag, _ int) emrtypes.Tag {
			return emrtypes.Tag{Key: aws.String(tag.Name), Value: aws.String(tag.Value)}
		}),
	}
	if def.ReleaseLabel != "" {
		input.ReleaseLabel = aws.String(def.ReleaseLabel)
	}
	if def.ServiceRole != "" {
		input.ServiceRole = aws.String(def.ServiceRole)
	}
	if def.JobFlowRole != "" {
		input.JobFlowRole = aws.String(def.JobFlowRole)
	}
	return input
}

func instanceGroups(defs *clusterdef.InstanceDefinitions) []emrtypes.InstanceGroupConfig {
	if defs == nil {
		return nil
	}

	var groups []emrtypes.InstanceGroupConfig
	for _, g := range []struct {
		role emrtypes.InstanceRoleType
		spec *clusterdef.InstanceGroupSpec
	}{
		{emrtypes.InstanceRoleTypeMaster, defs.Master},
		{emrtypes.InstanceRoleTypeCore, defs.Core},
		{emrtypes.InstanceRoleTypeTask, defs.Task},
	} {
		// EMR 不接受数量为 0 的实例组
		if g.spec == nil || g.spec.InstanceCount <= 0 {
			continue
		}

		group := emrtypes.InstanceGroupConfig{
			Name:          aws.String(string(g.role)),
			InstanceRole:  g.role,
			InstanceType:  aws.String(g.spec.InstanceType),
			InstanceCount: aws.Int32(int32(g.spec.InstanceCount)),
			Market:        emrtypes.MarketTypeOnDemand,
		}
		if bid := lo.CoalesceOrEmpty(g.spec.SpotPrice, g.spec.MaxSearchPrice); bid != nil {
			group.Market = emrtypes.MarketTypeSpot
			group.BidPrice = aws.String(bid.String())
		}
		groups = append(groups, group)
	}
	return groups
}

package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/emr"
	emrtypes "github.com/aws/aws-sdk-go-v2/service/emr/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"data-catalog/internal/core/clusterdef"
)

type mockEMR struct {
	mock.Mock
}

func (m *mockEMR) RunJobFlow(ctx context.Context, params *emr.RunJobFlowInput, _ ...func(*emr.Options)) (*emr.RunJobFlowOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*emr.RunJobFlowOutput)
	return out, args.Error(1)
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newDefinition() *clusterdef.ClusterDefinition {
	return &clusterdef.ClusterDefinition{
		SubnetID:     "subnet-a, subnet-b",
		ReleaseLabel: "emr-6.15.0",
		ServiceRole:  "EMR_DefaultRole",
		JobFlowRole:  "EMR_EC2_DefaultRole",
		Applications: []string{"Spark", "Hive"},
		InstanceDefinitions: &clusterdef.InstanceDefinitions{
			Master: &clusterdef.InstanceGroupSpec{InstanceCount: 1, InstanceType: "m5.xlarge"},
			Core:   &clusterdef.InstanceGroupSpec{InstanceCount: 3, InstanceType: "r5.2xlarge", SpotPrice: price("0.25")},
			Task:   &clusterdef.InstanceGroupSpec{InstanceCount: 0, InstanceType: "r5.2xlarge"},
		},
		NodeTags: []clusterdef.NodeTag{{Name: "owner", Value: "data-eng"}},
	}
}

func TestBuildRunJobFlowInput(t *testing.T) {
	input := BuildRunJobFlowInput(&ClusterRequest{Name: "nightly", Definition: newDefinition()})

	assert.Equal(t, "nightly", aws.ToString(input.Name))
	assert.Equal(t, "emr-6.15.0", aws.ToString(input.ReleaseLabel))
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, input.Instances.Ec2SubnetIds)
	assert.Len(t, input.Applications, 2)
	require.Len(t, input.Tags, 1)
	assert.Equal(t, "owner", aws.ToString(input.Tags[0].Key))

	groups := input.Instances.InstanceGroups
	require.Len(t, groups, 2, "task group with no instances is skipped")
	assert.Equal(t, emrtypes.InstanceRoleTypeMaster, groups[0].InstanceRole)
	assert.Equal(t, emrtypes.MarketTypeOnDemand, groups[0].Market)
	assert.Nil(t, groups[0].BidPrice)
	assert.Equal(t, emrtypes.MarketTypeSpot, groups[1].Market)
	assert.Equal(t, "0.25", aws.ToString(groups[1].BidPrice))
	assert.Equal(t, int32(3), aws.ToInt32(groups[1].InstanceCount))
}

func TestBuildRunJobFlowInputMaxSearchPrice(t *testing.T) {
	def := newDefinition()
	def.InstanceDefinitions.Master.MaxSearchPrice = price("1.5")
	def.InstanceDefinitions.Master.OnDemandThreshold = price("0.1")

	groups := BuildRunJobFlowInput(&ClusterRequest{Name: "c", Definition: def}).Instances.InstanceGroups
	assert.Equal(t, emrtypes.MarketTypeSpot, groups[0].Market)
	assert.Equal(t, "1.5", aws.ToString(groups[0].BidPrice))
}

func TestEmrProvisionerCreateCluster(t *testing.T) {
	client := new(mockEMR)
	client.On("RunJobFlow", mock.Anything, mock.Anything).
		Return(&emr.RunJobFlowOutput{JobFlowId: aws.String("j-123")}, nil).Once()
	p := &EmrProvisioner{client: client, logger: zap.NewNop()}

	id, err := p.CreateCluster(context.Background(), &ClusterRequest{Name: "c", Definition: newDefinition()})
	require.NoError(t, err)
	assert.Equal(t, "j-123", id)

	client.On("RunJobFlow", mock.Anything, mock.Anything).Return(nil, errors.New("ValidationException"))
	_, err = p.CreateCluster(context.Background(), &ClusterRequest{Name: "c", Definition: newDefinition()})
	assert.ErrorContains(t, err, "ValidationException")
}

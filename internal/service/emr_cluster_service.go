package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"data-catalog/internal/adapter/provision"
	"data-catalog/internal/core/clusterdef"
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/pkg/logger"
	"data-catalog/internal/repository"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

type EmrClusterService interface {
	Create(ctx context.Context, req *dto.CreateEmrClusterRequest, user string) (*dto.EmrClusterResponse, error)
	ListCreationLogs(namespace, definitionName string) ([]*dto.EmrClusterCreationLogResponse, error)
}

type emrClusterService struct {
	db          *gorm.DB
	defRepo     repository.EmrClusterDefinitionRepository
	logRepo     repository.EmrClusterCreationLogRepository
	validator   *clusterdef.Validator
	provisioner provision.Provisioner
	outbox      *Outbox
	dryRun      bool
}

func NewEmrClusterService(
	db *gorm.DB,
	defRepo repository.EmrClusterDefinitionRepository,
	logRepo repository.EmrClusterCreationLogRepository,
	validator *clusterdef.Validator,
	provisioner provision.Provisioner,
	outbox *Outbox,
	dryRun bool,
) EmrClusterService {
	return &emrClusterService{
		db:          db,
		defRepo:     defRepo,
		logRepo:     logRepo,
		validator:   validator,
		provisioner: provisioner,
		outbox:      outbox,
		dryRun:      dryRun,
	}
}

// Create 校验失败时不会调用创建接口; dry-run 只返回最终定义
func (s *emrClusterService) Create(ctx context.Context, req *dto.CreateEmrClusterRequest, user string) (*dto.EmrClusterResponse, error) {
	user = operator(user)

	entity, err := s.defRepo.FindByKey(req.Namespace, req.DefinitionName)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, pkgErrors.NotFound("EMR cluster definition with name \"%s\" doesn't exist for namespace \"%s\".", req.DefinitionName, req.Namespace)
	}

	def := req.Override
	if def == nil {
		if def, err = decodeDefinition(entity); err != nil {
			return nil, err
		}
	}
	if err := translateError(s.validator.Validate(def)); err != nil {
		return nil, err
	}

	resp := &dto.EmrClusterResponse{
		Namespace:      entity.Namespace,
		DefinitionName: entity.Name,
		ClusterName:    req.ClusterName,
		DryRun:         s.dryRun || (req.DryRun != nil && *req.DryRun),
		Definition:     def,
	}
	if resp.DryRun {
		logger.Info("dry-run, 跳过EMR集群创建", zap.String("cluster_name", req.ClusterName))
		return resp, nil
	}

	clusterID, err := s.provisioner.CreateCluster(ctx, &provision.ClusterRequest{Name: req.ClusterName, Definition: def})
	if err != nil {
		logger.Error("EMR集群创建失败", zap.String("cluster_name", req.ClusterName), zap.Error(err))
		return nil, pkgErrors.Wrap(pkgErrors.CodeProvisionError, "EMR集群创建失败", err)
	}
	resp.ClusterID = clusterID

	configuration, err := encodeDefinition(def)
	if err != nil {
		return nil, err
	}
	creationLog := &model.EmrClusterCreationLog{
		Namespace:      entity.Namespace,
		DefinitionName: entity.Name,
		ClusterName:    req.ClusterName,
		ClusterID:      clusterID,
		Definition:     configuration,
	}
	creationLog.Stamp(user)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewEmrClusterCreationLogRepository(tx).Create(creationLog); err != nil {
			return err
		}
		return s.outbox.Enqueue(tx, constants.EventEmrClusterCreated, user, resp)
	})
	if err != nil {
		// 集群已提交, 记录失败不影响返回
		logger.Error("记录EMR集群创建日志失败", zap.String("cluster_id", clusterID), zap.Error(err))
	}

	logger.Info("EMR集群创建成功",
		zap.String("namespace", entity.Namespace),
		zap.String("definition", entity.Name),
		zap.String("cluster_id", clusterID))
	return resp, nil
}

func (s *emrClusterService) ListCreationLogs(namespace, definitionName string) ([]*dto.EmrClusterCreationLogResponse, error) {
	logs, err := s.logRepo.ListByDefinition(namespace, definitionName)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EmrClusterCreationLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = &dto.EmrClusterCreationLogResponse{
			ClusterName: l.ClusterName,
			ClusterID:   l.ClusterID,
			CreatedBy:   l.CreatedBy,
			CreatedAt:   formatTime(l.CreatedAt),
		}
	}
	return responses, nil
}

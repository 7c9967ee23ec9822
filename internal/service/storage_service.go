package service

import (
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type StorageService interface {
	Create(req *dto.CreateStorageRequest, user string) (*dto.StorageResponse, error)
	Get(name string) (*dto.StorageResponse, error)
	List() ([]*dto.StorageResponse, error)
}

type storageService struct {
	repo repository.StorageRepository
}

func NewStorageService(repo repository.StorageRepository) StorageService {
	return &storageService{repo: repo}
}

func (s *storageService) Create(req *dto.CreateStorageRequest, user string) (*dto.StorageResponse, error) {
	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists("Storage with name \"%s\" already exists.", req.Name)
	}

	storage := &model.Storage{Name: req.Name, Type: req.Type}
	storage.Stamp(operator(user))
	if err := s.repo.Create(storage); err != nil {
		return nil, err
	}
	return s.toResponse(storage), nil
}

func (s *storageService) Get(name string) (*dto.StorageResponse, error) {
	storage, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if storage == nil {
		return nil, pkgErrors.NotFound("Storage with name \"%s\" doesn't exist.", name)
	}
	return s.toResponse(storage), nil
}

func (s *storageService) List() ([]*dto.StorageResponse, error) {
	storages, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StorageResponse, len(storages))
	for i, storage := range storages {
		responses[i] = s.toResponse(storage)
	}
	return responses, nil
}

func (s *storageService) toResponse(storage *model.Storage) *dto.StorageResponse {
	return &dto.StorageResponse{
		Name:      storage.Name,
		Type:      storage.Type,
		CreatedBy: storage.CreatedBy,
		CreatedAt: formatTime(storage.CreatedAt),
	}
}

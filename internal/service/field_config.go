package service

import (
	"context"
	"errors"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// FieldConfigService provides field-mapping configuration operations. The
// active mapping resolves logical field keys to record-store field ids.
type FieldConfigService interface {
	GetActive(ctx context.Context) (*repository.FieldConfig, error)
	Create(ctx context.Context, mapping map[string]string, createdBy string) (*repository.FieldConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*repository.FieldConfig, error)
	List(ctx context.Context, limit int) ([]repository.FieldConfig, error)

	// ActiveMapping returns the active key→field-id mapping, keyed by
	// model.FieldKey. A nil map means no configuration is active.
	ActiveMapping(ctx context.Context) (map[model.FieldKey]string, error)
}

// FieldConfigServiceImpl implements FieldConfigService.
type FieldConfigServiceImpl struct {
	fieldConfigRepo repository.FieldConfigRepositoryInterface
}

// NewFieldConfigService creates a new field configuration service.
func NewFieldConfigService(fieldConfigRepo repository.FieldConfigRepositoryInterface) FieldConfigService {
	if fieldConfigRepo == nil {
		return &FieldConfigServiceImpl{}
	}
	return &FieldConfigServiceImpl{
		fieldConfigRepo: fieldConfigRepo,
	}
}

func (s *FieldConfigServiceImpl) GetActive(ctx context.Context) (*repository.FieldConfig, error) {
	if s.fieldConfigRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.fieldConfigRepo.GetActive(ctx)
}

func (s *FieldConfigServiceImpl) Create(ctx context.Context, mapping map[string]string, createdBy string) (*repository.FieldConfig, error) {
	if s.fieldConfigRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.fieldConfigRepo.Create(ctx, mapping, createdBy)
}

func (s *FieldConfigServiceImpl) Update(ctx context.Context, id primitive.ObjectID, mapping map[string]string, updatedBy string) (*repository.FieldConfig, error) {
	if s.fieldConfigRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.fieldConfigRepo.Update(ctx, id, mapping, updatedBy)
}

func (s *FieldConfigServiceImpl) List(ctx context.Context, limit int) ([]repository.FieldConfig, error) {
	if s.fieldConfigRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.fieldConfigRepo.List(ctx, limit)
}

func (s *FieldConfigServiceImpl) ActiveMapping(ctx context.Context) (map[model.FieldKey]string, error) {
	config, err := s.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil || len(config.Mapping) == 0 {
		return nil, nil
	}

	mapping := make(map[model.FieldKey]string, len(config.Mapping))
	for key, fieldID := range config.Mapping {
		if fieldID != "" {
			mapping[model.FieldKey(key)] = fieldID
		}
	}
	return mapping, nil
}

// DefaultFieldMapping maps every field key to a field id equal to the key
// itself. It seeds a fresh database so the cascade is usable out of the box.
func DefaultFieldMapping() map[string]string {
	keys := model.AllFieldKeys()
	mapping := make(map[string]string, len(keys))
	for _, key := range keys {
		mapping[string(key)] = string(key)
	}
	return mapping
}

package systemconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agilefinance/internal/common"
	"agilefinance/internal/dbsql"

	"go.uber.org/zap"
)

const (
	KeyDBVersion         = "db_version"
	InitialDBVersion     = "0.0.0"
	dbVersionDescription = "Versão atual do banco de dados"
)

// Default is a key registered at startup when it does not exist yet.
type Default struct {
	Key         string
	Value       string
	Description string
}

var Defaults = []Default{
	{Key: KeyDBVersion, Value: "1.0.0.1", Description: "Versão inicial do banco de dados"},
	{Key: "boleto_bank_code", Value: "001", Description: "Banco emissor dos boletos"},
	{Key: "installment_default_status", Value: "PENDING", Description: "Status inicial das parcelas"},
}

type SetConfigRequest struct {
	Key         string  `json:"configKey" validate:"required,max=100"`
	Value       string  `json:"configValue" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

type Service interface {
	List(ctx context.Context) ([]dbsql.SystemConfig, error)
	Get(ctx context.Context, key string) (*dbsql.SystemConfig, error)
	Set(ctx context.Context, req SetConfigRequest) (*dbsql.SystemConfig, error)
	Delete(ctx context.Context, key string) error
	DBVersion(ctx context.Context) string
	SetDBVersion(ctx context.Context, version string) error
	RegisterDefaults(ctx context.Context, defaults []Default) int
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) List(ctx context.Context) ([]dbsql.SystemConfig, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, key string) (*dbsql.SystemConfig, error) {
	return s.repo.ByKey(ctx, key)
}

func (s *service) Set(ctx context.Context, req SetConfigRequest) (*dbsql.SystemConfig, error) {
	req.Key = strings.TrimSpace(req.Key)
	if err := common.Validate(req); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, req.Key, req.Value, req.Description); err != nil {
		return nil, fmt.Errorf("save config %s: %w", req.Key, err)
	}
	return s.repo.ByKey(ctx, req.Key)
}

func (s *service) Delete(ctx context.Context, key string) error {
	removed, err := s.repo.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("config %s: %w", key, common.ErrNotFound)
	}
	return nil
}

// DBVersion never fails; a missing or unreadable row reads as InitialDBVersion.
func (s *service) DBVersion(ctx context.Context) string {
	cfg, err := s.repo.ByKey(ctx, KeyDBVersion)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn("failed to read db version", zap.Error(err))
		}
		return InitialDBVersion
	}
	if cfg.Value == "" {
		return InitialDBVersion
	}
	return cfg.Value
}

func (s *service) SetDBVersion(ctx context.Context, version string) error {
	desc := dbVersionDescription
	if err := s.repo.Upsert(ctx, KeyDBVersion, version, &desc); err != nil {
		return fmt.Errorf("update db version: %w", err)
	}
	s.log.Info("db version updated", zap.String("version", version))
	return nil
}

// RegisterDefaults inserts the missing keys and returns how many were
// created. Failures are logged and skipped.
func (s *service) RegisterDefaults(ctx context.Context, defaults []Default) int {
	created := 0
	for _, d := range defaults {
		_, err := s.repo.ByKey(ctx, d.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error("failed to check default config", zap.String("key", d.Key), zap.Error(err))
			continue
		}

		desc := d.Description
		if err := s.repo.Upsert(ctx, d.Key, d.Value, &desc); err != nil {
			s.log.Error("failed to register default config", zap.String("key", d.Key), zap.Error(err))
			continue
		}
		created++
	}
	if created > 0 {
		s.log.Info("default configs registered", zap.Int("count", created))
	}
	return created
}

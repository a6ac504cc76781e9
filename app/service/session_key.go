package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vibast-solutions/ms-go-session-keys/app/entity"
)

var (
	ErrSessionKeyNotFound = errors.New("session key not found")
	ErrInvalidSessionKey  = errors.New("session key must not be empty")
)

type SessionKeyRepository interface {
	Create(ctx context.Context, key *entity.SessionKey) error
	FindAll(ctx context.Context) ([]*entity.SessionKey, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SessionKey, error)
}

type SessionKeyService interface {
	List(ctx context.Context) ([]*entity.SessionKey, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.SessionKey, error)
	Create(ctx context.Context, sessionKey string) (*entity.SessionKey, error)
}

type sessionKeyService struct {
	repo SessionKeyRepository
}

func NewSessionKeyService(repo SessionKeyRepository) SessionKeyService {
	return &sessionKeyService{repo: repo}
}

func (s *sessionKeyService) List(ctx context.Context) ([]*entity.SessionKey, error) {
	keys, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session keys: %w", err)
	}
	return keys, nil
}

func (s *sessionKeyService) Get(ctx context.Context, id uuid.UUID) (*entity.SessionKey, error) {
	key, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find session key %s: %w", id, err)
	}
	if key == nil {
		return nil, ErrSessionKeyNotFound
	}
	return key, nil
}

func (s *sessionKeyService) Create(ctx context.Context, sessionKey string) (*entity.SessionKey, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return nil, ErrInvalidSessionKey
	}

	key := &entity.SessionKey{
		ID:         uuid.New(),
		SessionKey: sessionKey,
	}
	if err := s.repo.Create(ctx, key); err != nil {
		return nil, fmt.Errorf("insert session key: %w", err)
	}
	return key, nil
}

// Package memory holds mutex-guarded in-memory repositories used when no
// database is configured. State does not survive a restart.
package memory

import (
	"context"
	"sync"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/pkg/apperror"
)

type Store struct {
	mu           sync.RWMutex
	usersByID    map[string]domain.User
	userIDByName map[string]string
	skillsByUser map[string][]domain.UserSkill
}

func NewStore() *Store {
	return &Store{
		usersByID:    make(map[string]domain.User),
		userIDByName: make(map[string]string),
		skillsByUser: make(map[string][]domain.UserSkill),
	}
}

// Users returns the store as a user repository.
func (s *Store) Users() domain.UserRepository { return (*userStore)(s) }

// Skills returns the store as a skill repository.
func (s *Store) Skills() domain.SkillRepository { return (*skillStore)(s) }

type userStore Store

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userIDByName[user.Username]; ok {
		return apperror.Conflict("Username is already taken")
	}
	s.usersByID[user.ID] = *user
	s.userIDByName[user.Username] = user.ID
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByName[username]
	if !ok {
		return nil, nil
	}
	user := s.usersByID[id]
	return &user, nil
}

type skillStore Store

func (s *skillStore) GetByUserID(ctx context.Context, userID string) ([]domain.UserSkill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.skillsByUser[userID]
	skills := make([]domain.UserSkill, len(stored))
	copy(skills, stored)
	return skills, nil
}

func (s *skillStore) ReplaceForUser(ctx context.Context, userID string, skills []domain.UserSkill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.UserSkill, len(skills))
	copy(stored, skills)
	s.skillsByUser[userID] = stored
	return nil
}

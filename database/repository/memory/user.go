package memoryRepo

import (
	"context"
	"sort"
	"time"

	"seminarly/database"
	"seminarly/models"

	"go.mongodb.org/mongo-driver/bson"
)

type UserRepo struct {
	s *Store
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetAll(_ context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		user.PasswordHash = ""
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[user.ID]; exists {
		return database.ErrDuplicate
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return database.ErrDuplicate
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) UpdateSetDocument(_ context.Context, id string, fields bson.M) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return database.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name, _ = value.(string)
		case "phoneNumber":
			user.PhoneNumber, _ = value.(string)
		case "role":
			user.Role, _ = value.(string)
		case "password_hash":
			user.PasswordHash, _ = value.(string)
		case "updatedAt":
			if t, ok := value.(time.Time); ok {
				user.UpdatedAt = t
			}
		}
	}
	r.s.users[id] = user
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return database.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

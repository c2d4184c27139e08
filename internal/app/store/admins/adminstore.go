// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/lekithkishore/blood-bank-management-system/internal/app/system/faults"
	"github.com/lekithkishore/blood-bank-management-system/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid admin credentials")

// Store owns the admins collection. Passwords are stored only as bcrypt
// hashes.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// EnsureDefault creates the configured default admin if no record with
// that email exists yet. Called once at startup; idempotent.
func (s *Store) EnsureDefault(ctx context.Context, email, password string, logger *zap.Logger) error {
	if email == "" || password == "" {
		return nil
	}
	emailCI := text.Fold(email)

	err := s.c.FindOne(ctx, bson.M{"email": emailCI}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return faults.Storage("lookup default admin", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.Admin{
		ID:           primitive.NewObjectID(),
		Email:        emailCI,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, admin); err != nil {
		return faults.Storage("insert default admin", err)
	}
	logger.Info("default admin created", zap.String("email", emailCI))
	return nil
}

// Verify checks an email/password pair against the stored hash. It returns
// the admin record on success and ErrBadCredentials when either the record
// is missing or the password does not match, so callers cannot tell the
// two apart.
func (s *Store) Verify(ctx context.Context, email, password string) (models.Admin, error) {
	var admin models.Admin
	err := s.c.FindOne(ctx, bson.M{"email": text.Fold(email)}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return models.Admin{}, ErrBadCredentials
	}
	if err != nil {
		return models.Admin{}, faults.Storage("get admin", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return models.Admin{}, ErrBadCredentials
	}
	return admin, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"liveTrading/internal/errs"
	"liveTrading/internal/models"
)

type AuthenticationRepository struct {
	users *mongo.Collection
}

func NewAuthenticationRepository(db *mongo.Database) *AuthenticationRepository {
	return &AuthenticationRepository{
		users: db.Collection("users"),
	}
}

func (ar *AuthenticationRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, []error) {
	var errorList []error

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	result, err := ar.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			errorList = append(errorList, errs.ErrUserAlreadyExists)
		} else {
			errorList = append(errorList, err)
		}
		return nil, errorList
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (ar *AuthenticationRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := ar.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ar *AuthenticationRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := ar.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (ar *AuthenticationRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	update["updated_at"] = time.Now()

	result := ar.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		findAfterUpdate(),
	)

	var user models.User
	if err := result.Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, errs.ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

func (ar *AuthenticationRepository) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := ar.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login": at}})
	return err
}

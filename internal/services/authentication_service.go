package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"liveTrading/configs"
	"liveTrading/internal/enums"
	"liveTrading/internal/errs"
	"liveTrading/internal/models"
	"liveTrading/internal/repositories"
	"liveTrading/internal/utils"
	"liveTrading/internal/validators"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(ctx context.Context, body *models.RegisterRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateRegistration(body)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}

	role := body.Role
	if role != enums.ROLE_STREAMER {
		role = enums.ROLE_USER
	}

	passwordHash, err := utils.HashPassword(body.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	user, createErrs := as.authRepo.CreateUser(ctx, &models.User{
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if len(createErrs) > 0 {
		return nil, createErrs
	}

	token, err := as.issueToken(user)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  *user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) Login(ctx context.Context, loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, err := as.authRepo.FindUserByEmail(ctx, loginData.Email)
	if err != nil {
		errors = append(errors, errs.ErrWrongCredentials)
		return nil, errors
	}

	if err := utils.CompareHashAndPassword(user.PasswordHash, loginData.Password); err != nil {
		errors = append(errors, errs.ErrWrongCredentials)
		return nil, errors
	}

	if !user.IsActive {
		errors = append(errors, errs.ErrUserInactive)
		return nil, errors
	}

	now := time.Now()
	if err := as.authRepo.SetLastLogin(ctx, user.ID, now); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.LastLogin = &now

	token, err := as.issueToken(user)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  *user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.ProfileResponse, []error) {
	var errors []error

	user, err := as.authRepo.FindUserByID(ctx, userID)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, body *models.UpdateProfileRequestBody) (*models.ProfileResponse, []error) {
	var errors []error

	update := bson.M{}
	if body.Username != "" {
		if len(body.Username) < 3 {
			errors = append(errors, errs.ErrInvalidUsername)
			return nil, errors
		}
		update["username"] = body.Username
	}
	if body.Avatar != "" {
		update["avatar"] = body.Avatar
	}
	if len(update) == 0 {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return nil, errors
	}

	user, err := as.authRepo.UpdateUser(ctx, userID, update)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) ChangePassword(ctx context.Context, userID primitive.ObjectID, body *models.ChangePasswordRequestBody) []error {
	var errors []error

	user, err := as.authRepo.FindUserByID(ctx, userID)
	if err != nil {
		errors = append(errors, err)
		return errors
	}

	if err := utils.CompareHashAndPassword(user.PasswordHash, body.CurrentPassword); err != nil {
		errors = append(errors, errs.ErrWrongCredentials)
		return errors
	}

	if !validators.ValidatePassword(body.NewPassword) {
		errors = append(errors, errs.ErrWeakPassword)
		return errors
	}

	passwordHash, err := utils.HashPassword(body.NewPassword)
	if err != nil {
		errors = append(errors, err)
		return errors
	}

	if _, err := as.authRepo.UpdateUser(ctx, userID, bson.M{"password_hash": passwordHash}); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

// SetUserActive flips an account's active flag. Deactivated users fail login
// and token verification until reactivated.
func (as *AuthenticationService) SetUserActive(ctx context.Context, userID primitive.ObjectID, active bool) (*models.ProfileResponse, []error) {
	var errors []error

	user, err := as.authRepo.UpdateUser(ctx, userID, bson.M{"is_active": active})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return user.ToProfileResponse(), nil
}

// VerifyUserToken resolves a bearer token to its claims and checks the
// account still exists and is active.
func (as *AuthenticationService) VerifyUserToken(ctx context.Context, token string) (*models.Claims, error) {
	claims, err := utils.VerifyToken(token, as.jwtKey())
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	user, err := as.authRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, errs.ErrUserInactive
	}

	return claims, nil
}

// Verify implements hub.TokenVerifier.
func (as *AuthenticationService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := as.VerifyUserToken(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (as *AuthenticationService) issueToken(user *models.User) (string, error) {
	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	return utils.CreateJwtToken(user.ID.Hex(), user.Username, user.Role, as.jwtKey(), expiration)
}

func (as *AuthenticationService) jwtKey() []byte {
	return []byte(as.config.Viper.GetString("jwt.secret"))
}

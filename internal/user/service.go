package user

import (
	"errors"

	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(user User) (string, error) {
	userRetrieved, err := u.repo.CreateUser(user.Username, user.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(userRetrieved.ID, userRetrieved.Username)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(user User) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(user.Username, user.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(userRetrieved.ID, userRetrieved.Username)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetProfile(userID uint) (*ProfileResponse, error) {
	account, err := u.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.NewNotFoundError("user not found", errors.New("user not found"))
	}

	return &ProfileResponse{
		ID:       account.ID,
		Username: account.Username,
	}, nil
}

// internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pricewise/pricewise-backend/internal/config"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	store   *store.MemoryStore
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	utils.SetJWTSecret("test-secret")

	suite.store = store.NewMemoryStore()
	suite.service = NewAuthService(suite.store, &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
	})
}

func (suite *AuthServiceTestSuite) register() *AuthResponse {
	resp, err := suite.service.Register(context.Background(), &RegisterRequest{
		Username: "dealhunter",
		Email:    "hunter@example.com",
		Password: "SuperSecret1",
	})
	suite.Require().NoError(err)
	return resp
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesToken() {
	resp := suite.register()

	suite.NotEmpty(resp.Token)
	suite.Equal("dealhunter", resp.User.Username)
	suite.NotEqual("SuperSecret1", resp.User.PasswordHash)

	claims, err := utils.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(resp.User.ID.String(), claims.UserID)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.register()

	_, err := suite.service.Register(context.Background(), &RegisterRequest{
		Username: "othername",
		Email:    "hunter@example.com",
		Password: "SuperSecret1",
	})
	suite.Error(err)
	suite.Contains(err.Error(), "already")
}

func (suite *AuthServiceTestSuite) TestLogin() {
	suite.register()

	resp, err := suite.service.Login(context.Background(), &LoginRequest{
		Email:    "hunter@example.com",
		Password: "SuperSecret1",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.register()

	_, err := suite.service.Login(context.Background(), &LoginRequest{
		Email:    "hunter@example.com",
		Password: "WrongPassword1",
	})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

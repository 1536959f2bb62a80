package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/core/services"
	"github.com/videotube/videotube_backend/internal/platform/config"
	"github.com/videotube/videotube_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		AccessTokenSecret:          "test-access-secret",
		AccessTokenExpiryDuration:  15 * time.Minute,
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 240 * time.Hour,
		JWTIssuer:                  "videotube-backend-test",
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserRepo)
}

func (suite *TokenServiceTestSuite) assertUnauthorized(err error, message string) {
	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusUnauthorized, appErr.Code)
	suite.Equal(message, appErr.Message)
}

// mintStoredRefreshToken produces a refresh token the way the service
// would have minted it on a previous login.
func (suite *TokenServiceTestSuite) mintStoredRefreshToken(userID string) string {
	token, err := utils.GenerateRefreshToken(
		userID, suite.cfg.RefreshTokenSecret, suite.cfg.RefreshTokenExpiryDuration, suite.cfg.JWTIssuer,
	)
	suite.Require().NoError(err)
	return token
}

func (suite *TokenServiceTestSuite) TestIssueTokenPair_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{
		UserID:   userID,
		Username: "creator",
		Email:    "creator@example.com",
		FullName: "Creator One",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, mock.AnythingOfType("string")).Return(nil).Once()

	pair, err := suite.service.IssueTokenPair(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)

	// The access token carries the user's identity claims.
	claims, err := utils.ParseAccessToken(pair.AccessToken, suite.cfg.AccessTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(userID, claims.Subject)
	suite.Equal("creator", claims.Username)
	suite.Equal("creator@example.com", claims.Email)
	suite.Equal("Creator One", claims.FullName)

	// The refresh token carries only the user id.
	subject, err := utils.ParseRefreshToken(pair.RefreshToken, suite.cfg.RefreshTokenSecret)
	suite.Require().NoError(err)
	suite.Equal(userID, subject)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueTokenPair_PersistsMintedRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "creator", Email: "c@example.com", FullName: "C"}

	var stored string
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { stored = args.String(2) }).Return(nil).Once()

	pair, err := suite.service.IssueTokenPair(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(pair.RefreshToken, stored)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueTokenPair_PersistError() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "creator", Email: "c@example.com", FullName: "C"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, mock.AnythingOfType("string")).
		Return(apperrors.ErrInternal).Once()

	pair, err := suite.service.IssueTokenPair(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(pair)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusInternalServerError, appErr.Code)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	presented := suite.mintStoredRefreshToken(userID)
	user := &domain.User{
		UserID:       userID,
		Username:     "creator",
		Email:        "creator@example.com",
		FullName:     "Creator One",
		RefreshToken: presented,
	}

	suite.mockUserRepo.On("FindUserWithCredentials", ctx, userID).Return(user, nil).Once()
	suite.mockUserRepo.On("RotateRefreshToken", ctx, userID, presented, mock.AnythingOfType("string")).
		Return(nil).Once()

	pair, err := suite.service.RefreshTokenPair(ctx, presented)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.NotEmpty(pair.AccessToken)
	suite.NotEmpty(pair.RefreshToken)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_EmptyToken() {
	pair, err := suite.service.RefreshTokenPair(context.Background(), "")

	suite.Nil(pair)
	suite.assertUnauthorized(err, "Unauthorized request")
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_MalformedToken() {
	pair, err := suite.service.RefreshTokenPair(context.Background(), "not-a-jwt")

	suite.Require().Error(err)
	suite.Nil(pair)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusUnauthorized, appErr.Code)
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_ExpiredToken() {
	userID := uuid.NewString()
	expired, err := utils.GenerateRefreshToken(
		userID, suite.cfg.RefreshTokenSecret, -time.Minute, suite.cfg.JWTIssuer,
	)
	suite.Require().NoError(err)

	pair, err := suite.service.RefreshTokenPair(context.Background(), expired)

	suite.Require().Error(err)
	suite.Nil(pair)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusUnauthorized, appErr.Code)
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_UserGone() {
	ctx := context.Background()
	userID := uuid.NewString()
	presented := suite.mintStoredRefreshToken(userID)

	suite.mockUserRepo.On("FindUserWithCredentials", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.RefreshTokenPair(ctx, presented)

	suite.Nil(pair)
	suite.assertUnauthorized(err, "Invalid refresh token")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_SlotAlreadyRotated() {
	ctx := context.Background()
	userID := uuid.NewString()
	presented := suite.mintStoredRefreshToken(userID)
	// The slot holds a newer token; the presented one has been consumed.
	user := &domain.User{UserID: userID, RefreshToken: suite.mintStoredRefreshToken(userID) + "x"}

	suite.mockUserRepo.On("FindUserWithCredentials", ctx, userID).Return(user, nil).Once()

	pair, err := suite.service.RefreshTokenPair(ctx, presented)

	suite.Nil(pair)
	suite.assertUnauthorized(err, "Refresh token is expired or used")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_EmptySlot() {
	ctx := context.Background()
	userID := uuid.NewString()
	presented := suite.mintStoredRefreshToken(userID)
	user := &domain.User{UserID: userID, RefreshToken: ""}

	suite.mockUserRepo.On("FindUserWithCredentials", ctx, userID).Return(user, nil).Once()

	pair, err := suite.service.RefreshTokenPair(ctx, presented)

	suite.Nil(pair)
	suite.assertUnauthorized(err, "Refresh token is expired or used")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestRefreshTokenPair_LostConcurrentRotation() {
	ctx := context.Background()
	userID := uuid.NewString()
	presented := suite.mintStoredRefreshToken(userID)
	user := &domain.User{UserID: userID, RefreshToken: presented}

	suite.mockUserRepo.On("FindUserWithCredentials", ctx, userID).Return(user, nil).Once()
	// Another exchange won the compare-and-swap between the read and the write.
	suite.mockUserRepo.On("RotateRefreshToken", ctx, userID, presented, mock.AnythingOfType("string")).
		Return(apperrors.ErrUnauthorized).Once()

	pair, err := suite.service.RefreshTokenPair(ctx, presented)

	suite.Nil(pair)
	suite.assertUnauthorized(err, "Refresh token is expired or used")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/videotube/videotube_backend/internal/apperrors"
	"github.com/videotube/videotube_backend/internal/core/domain"
	portssvc "github.com/videotube/videotube_backend/internal/core/ports/services"
	"github.com/videotube/videotube_backend/internal/core/services"
)

type ChannelServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockSubRepo  *MockSubscriptionRepository
	service      portssvc.ChannelSvcFacade
}

func (suite *ChannelServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.service = services.NewChannelService(suite.mockUserRepo, suite.mockSubRepo)
}

func (suite *ChannelServiceTestSuite) assertAppError(err error, code int, message string) {
	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(code, appErr.Code)
	suite.Equal(message, appErr.Message)
}

func channelFixture() *domain.User {
	return &domain.User{
		UserID:        uuid.NewString(),
		Username:      "creator",
		Email:         "creator@example.com",
		FullName:      "Creator One",
		AvatarURL:     "https://cdn.example.com/avatar.png",
		CoverImageURL: "https://cdn.example.com/cover.png",
	}
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_Success() {
	ctx := context.Background()
	channel := channelFixture()
	requesterID := uuid.NewString()
	stats := &domain.ChannelStats{SubscribersCount: 42, ChannelsSubscribedToCount: 7, IsSubscribed: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator").Return(channel, nil).Once()
	suite.mockSubRepo.On("GetChannelStats", ctx, channel.UserID, requesterID).Return(stats, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "Creator", requesterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal("Creator One", profile.FullName)
	suite.Equal("creator", profile.Username)
	suite.Equal(int64(42), profile.SubscribersCount)
	suite.Equal(int64(7), profile.ChannelsSubscribedToCount)
	suite.True(profile.IsSubscribed)
	suite.Equal(channel.AvatarURL, profile.AvatarURL)
	suite.Equal(channel.CoverImageURL, profile.CoverImageURL)
	suite.Equal(channel.Email, profile.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_AnonymousViewer() {
	ctx := context.Background()
	channel := channelFixture()
	stats := &domain.ChannelStats{SubscribersCount: 0, ChannelsSubscribedToCount: 0, IsSubscribed: false}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator").Return(channel, nil).Once()
	suite.mockSubRepo.On("GetChannelStats", ctx, channel.UserID, "").Return(stats, nil).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "creator", "")

	suite.Require().NoError(err)
	suite.False(profile.IsSubscribed)
	suite.Zero(profile.SubscribersCount)
	suite.Zero(profile.ChannelsSubscribedToCount)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_MissingUsername() {
	profile, err := suite.service.GetChannelProfile(context.Background(), "   ", "")

	suite.Nil(profile)
	suite.assertAppError(err, http.StatusBadRequest, "username is missing")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *ChannelServiceTestSuite) TestGetChannelProfile_UnknownChannel() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetChannelProfile(ctx, "ghost", "")

	suite.Nil(profile)
	suite.assertAppError(err, http.StatusNotFound, "channel does not exist")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ChannelServiceTestSuite) TestSubscribe_Success() {
	ctx := context.Background()
	channel := channelFixture()
	requesterID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator").Return(channel, nil).Once()
	suite.mockSubRepo.On("CreateSubscription", ctx, mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.SubscriberID == requesterID && sub.ChannelID == channel.UserID && sub.SubscriptionID != ""
	})).Return(nil).Once()

	err := suite.service.Subscribe(ctx, requesterID, "creator")

	suite.Require().NoError(err)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *ChannelServiceTestSuite) TestSubscribe_OwnChannel() {
	ctx := context.Background()
	channel := channelFixture()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator").Return(channel, nil).Once()

	err := suite.service.Subscribe(ctx, channel.UserID, "creator")

	suite.assertAppError(err, http.StatusBadRequest, "cannot subscribe to your own channel")
	suite.mockSubRepo.AssertNotCalled(suite.T(), "CreateSubscription", mock.Anything, mock.Anything)
}

func (suite *ChannelServiceTestSuite) TestUnsubscribe_Success() {
	ctx := context.Background()
	channel := channelFixture()
	requesterID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator").Return(channel, nil).Once()
	suite.mockSubRepo.On("DeleteSubscription", ctx, requesterID, channel.UserID).Return(nil).Once()

	err := suite.service.Unsubscribe(ctx, requesterID, "creator")

	suite.Require().NoError(err)
	suite.mockSubRepo.AssertExpectations(suite.T())
}

func (suite *ChannelServiceTestSuite) TestUnsubscribe_UnknownChannel() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.Unsubscribe(ctx, uuid.NewString(), "ghost")

	suite.assertAppError(err, http.StatusNotFound, "channel does not exist")
	suite.mockSubRepo.AssertNotCalled(suite.T(), "DeleteSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestChannelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChannelServiceTestSuite))
}

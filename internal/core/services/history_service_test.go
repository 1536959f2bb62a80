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

type WatchHistoryServiceTestSuite struct {
	suite.Suite
	mockVideoRepo *MockVideoRepository
	service       portssvc.WatchHistorySvcFacade
}

func (suite *WatchHistoryServiceTestSuite) SetupTest() {
	suite.mockVideoRepo = new(MockVideoRepository)
	suite.service = services.NewWatchHistoryService(suite.mockVideoRepo)
}

func (suite *WatchHistoryServiceTestSuite) TestGetWatchHistory_PreservesStoredOrder() {
	ctx := context.Background()
	userID := uuid.NewString()
	entries := []domain.WatchHistoryEntry{
		{Video: domain.Video{VideoID: "vid-1", Title: "First watched"}, Owner: &domain.VideoOwner{Username: "alice"}},
		{Video: domain.Video{VideoID: "vid-2", Title: "Second watched"}, Owner: &domain.VideoOwner{Username: "bob"}},
		{Video: domain.Video{VideoID: "vid-3", Title: "Third watched"}, Owner: nil},
	}

	suite.mockVideoRepo.On("FindWatchHistory", ctx, userID).Return(entries, nil).Once()

	got, err := suite.service.GetWatchHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal("vid-1", got[0].VideoID)
	suite.Equal("vid-2", got[1].VideoID)
	suite.Equal("vid-3", got[2].VideoID)
	// A vanished owner surfaces as a nil Owner, not an error.
	suite.Nil(got[2].Owner)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *WatchHistoryServiceTestSuite) TestGetWatchHistory_Empty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockVideoRepo.On("FindWatchHistory", ctx, userID).Return([]domain.WatchHistoryEntry{}, nil).Once()

	got, err := suite.service.GetWatchHistory(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *WatchHistoryServiceTestSuite) TestAddToWatchHistory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	videoID := uuid.NewString()

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(&domain.Video{VideoID: videoID}, nil).Once()
	suite.mockVideoRepo.On("AppendWatchHistory", ctx, userID, videoID).Return(nil).Once()

	err := suite.service.AddToWatchHistory(ctx, userID, videoID)

	suite.Require().NoError(err)
	suite.mockVideoRepo.AssertExpectations(suite.T())
}

func (suite *WatchHistoryServiceTestSuite) TestAddToWatchHistory_UnknownVideo() {
	ctx := context.Background()
	userID := uuid.NewString()
	videoID := uuid.NewString()

	suite.mockVideoRepo.On("FindVideoByID", ctx, videoID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddToWatchHistory(ctx, userID, videoID)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(http.StatusNotFound, appErr.Code)
	suite.Equal("video does not exist", appErr.Message)
	suite.mockVideoRepo.AssertNotCalled(suite.T(), "AppendWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestWatchHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WatchHistoryServiceTestSuite))
}

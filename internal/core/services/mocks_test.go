package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/videotube/videotube_backend/internal/core/domain"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserForLogin(ctx context.Context, username, email string) (*domain.User, error) {
	args := m.Called(ctx, username, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserWithCredentials(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAccountDetails(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	args := m.Called(ctx, userID, fullName, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.User, error) {
	args := m.Called(ctx, userID, avatarURL)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, userID, coverImageURL string) (*domain.User, error) {
	args := m.Called(ctx, userID, coverImageURL)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID, presented, next string) error {
	args := m.Called(ctx, userID, presented, next)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) CreateSubscription(ctx context.Context, subscription domain.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, channelID string) error {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetChannelStats(ctx context.Context, channelID, requesterID string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, channelID, requesterID)
	var stats *domain.ChannelStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.ChannelStats)
	}
	return stats, args.Error(1)
}

// --- Mock VideoRepository ---

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	var video *domain.Video
	if args.Get(0) != nil {
		video = args.Get(0).(*domain.Video)
	}
	return video, args.Error(1)
}

func (m *MockVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.WatchHistoryEntry, error) {
	args := m.Called(ctx, userID)
	var entries []domain.WatchHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WatchHistoryEntry)
	}
	return entries, args.Error(1)
}

func (m *MockVideoRepository) AppendWatchHistory(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

// --- Mock MediaUploader ---

type MockMediaUploader struct {
	mock.Mock
}

func (m *MockMediaUploader) Upload(ctx context.Context, localPath string) (string, error) {
	args := m.Called(ctx, localPath)
	return args.String(0), args.Error(1)
}

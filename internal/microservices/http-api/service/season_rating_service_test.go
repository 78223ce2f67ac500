package service

import (
	"context"
	"testing"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// stubResolution stands in for the episode rating service; season write
// tests only care that its canned response is passed through.
type stubResolution struct {
	resp *dto.SeasonResolutionResponse
}

func (s *stubResolution) RateEpisode(userID string, episodeID int64, rawScore string, review *string) (*dto.SeasonResolutionResponse, error) {
	return s.resp, nil
}

func (s *stubResolution) DeleteRating(userID string, episodeID int64) (*dto.SeasonResolutionResponse, error) {
	return s.resp, nil
}

func (s *stubResolution) GetSeasonResolution(ctx context.Context, seasonID int64, userID string) (*dto.SeasonResolutionResponse, error) {
	return s.resp, nil
}

func newSeasonRatingFixture() (*MockSeasonStore, *MockEpisodeRatingRepository, *MockSeasonRatingRepository, *recordingInvalidator, SeasonRatingService) {
	mockStore := new(MockSeasonStore)
	mockEpisodeRepo := new(MockEpisodeRatingRepository)
	mockSeasonRepo := new(MockSeasonRatingRepository)
	invalidator := &recordingInvalidator{}
	resolution := &stubResolution{resp: &dto.SeasonResolutionResponse{SeasonID: 7}}
	svc := NewSeasonRatingService(mockStore, mockEpisodeRepo, mockSeasonRepo, resolution, invalidator)
	return mockStore, mockEpisodeRepo, mockSeasonRepo, invalidator, svc
}

func TestAdjustSeason_StepUpInvalidatesLeaderboard(t *testing.T) {
	mockStore, mockEpisodeRepo, mockSeasonRepo, invalidator, svc := newSeasonRatingFixture()

	mockStore.On("GetSeasonByID", mock.Anything, int64(7)).Return(twoEpisodeSeason(), nil)
	mockSeasonRepo.On("GetByUserAndSeason", "user-id", int64(7)).Return(nil, gorm.ErrRecordNotFound)
	mockEpisodeRepo.On("GetByUserAndEpisodeIDs", mock.Anything, "user-id", []int64{42, 43}).
		Return([]models.EpisodeRating{{EpisodeID: 42, UserID: "user-id", Score: 8}}, nil)
	mockSeasonRepo.On("Save", mock.MatchedBy(func(row *models.SeasonUserRating) bool {
		return row.Adjustment == scoring.QuarterStep && row.ManualScore == nil
	})).Return(nil)

	resp, err := svc.Adjust("user-id", 7, "up")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.SeasonID)
	assert.Equal(t, 1, invalidator.calls, "a season adjustment must drop cached leaderboards")
	mockSeasonRepo.AssertExpectations(t)
}

func TestAdjustSeason_ManualScoreBlocksStepping(t *testing.T) {
	mockStore, _, mockSeasonRepo, invalidator, svc := newSeasonRatingFixture()

	manual := 7.5
	mockStore.On("GetSeasonByID", mock.Anything, int64(7)).Return(twoEpisodeSeason(), nil)
	mockSeasonRepo.On("GetByUserAndSeason", "user-id", int64(7)).
		Return(&models.SeasonUserRating{UserID: "user-id", SeasonID: 7, ManualScore: &manual}, nil)

	resp, err := svc.Adjust("user-id", 7, "up")

	var vErr *scoring.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "adjustment", vErr.Field)
	assert.Nil(t, resp)
	assert.Equal(t, 0, invalidator.calls)
	mockSeasonRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestAdjustSeason_NoRatedEpisodesBlocksStepping(t *testing.T) {
	mockStore, mockEpisodeRepo, mockSeasonRepo, invalidator, svc := newSeasonRatingFixture()

	mockStore.On("GetSeasonByID", mock.Anything, int64(7)).Return(twoEpisodeSeason(), nil)
	mockSeasonRepo.On("GetByUserAndSeason", "user-id", int64(7)).Return(nil, gorm.ErrRecordNotFound)
	mockEpisodeRepo.On("GetByUserAndEpisodeIDs", mock.Anything, "user-id", []int64{42, 43}).Return(nil, nil)

	resp, err := svc.Adjust("user-id", 7, "down")

	var vErr *scoring.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Nil(t, resp)
	assert.Equal(t, 0, invalidator.calls)
}

func TestSetSeasonRating_AllDefaultRowCollapsesToDelete(t *testing.T) {
	mockStore, _, mockSeasonRepo, invalidator, svc := newSeasonRatingFixture()

	mockStore.On("GetSeasonByID", mock.Anything, int64(7)).Return(twoEpisodeSeason(), nil)
	mockSeasonRepo.On("GetByUserAndSeason", "user-id", int64(7)).Return(nil, gorm.ErrRecordNotFound)
	mockSeasonRepo.On("Delete", "user-id", int64(7)).Return(nil)

	resp, err := svc.SetRating("user-id", 7, nil, nil)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 1, invalidator.calls)
	mockSeasonRepo.AssertNotCalled(t, "Save", mock.Anything)
	mockSeasonRepo.AssertExpectations(t)
}

func TestDeleteSeasonRating_InvalidatesLeaderboard(t *testing.T) {
	mockStore, _, mockSeasonRepo, invalidator, svc := newSeasonRatingFixture()

	mockStore.On("GetSeasonByID", mock.Anything, int64(7)).Return(twoEpisodeSeason(), nil)
	mockSeasonRepo.On("Delete", "user-id", int64(7)).Return(nil)

	err := svc.DeleteRating("user-id", 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, invalidator.calls, "a season row delete must drop cached leaderboards")
	mockSeasonRepo.AssertExpectations(t)
}

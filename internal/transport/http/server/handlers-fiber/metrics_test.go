package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pr-cycle-metrics/internal/entities"
	"pr-cycle-metrics/internal/usecase"
	"pr-cycle-metrics/internal/week"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) CycleTime(ctx context.Context, interval entities.DateInterval, project string) (entities.CycleTimeSummary, error) {
	args := m.Called(ctx, interval, project)
	return args.Get(0).(entities.CycleTimeSummary), args.Error(1)
}

func (m *ucMock) CycleTimeByProject(ctx context.Context, interval entities.DateInterval) (entities.ProjectBreakdown, error) {
	args := m.Called(ctx, interval)
	return args.Get(0).(entities.ProjectBreakdown), args.Error(1)
}

func newTestApp(uc usecase.InterfaceUsecase) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc)
	app.Get("/metrics/cycle-time", h.GetCycleTime)
	app.Get("/metrics/cycle-time/by-project", h.GetCycleTimeByProject)
	return app
}

func TestGetCycleTimeInvalidWeek(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	for _, wk := range []string{"2025-W00", "2025-W54", "2025-13", "nonsense"} {
		req := httptest.NewRequest(http.MethodGet, "/metrics/cycle-time?week="+wk, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode, wk)

		var body errorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "INVALID_WEEK", body.Error.Code)
	}
	uc.AssertNotCalled(t, "CycleTime", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCycleTimeResolvesWeekBoundaries(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	wantInterval := entities.DateInterval{
		Start: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC),
	}
	summary := entities.CycleTimeSummary{
		MetricsResult: entities.MetricsResult{P50Hours: 5.5, P90Hours: 9.1, Count: 10},
	}
	uc.On("CycleTime", mock.Anything, wantInterval, "billing").Return(summary, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/cycle-time?week=2025-W02&project=billing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body cycleTimeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "2025-W02", body.Week)
	require.Equal(t, 5.5, body.P50Hours)
	require.Equal(t, 9.1, body.P90Hours)
	require.Equal(t, 10, body.Count)
	uc.AssertExpectations(t)
}

func TestGetCycleTimeDefaultsToCurrentWeek(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	uc.On("CycleTime", mock.Anything, mock.Anything, "").
		Return(entities.CycleTimeSummary{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/cycle-time", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body cycleTimeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, week.Current(), body.Week)
}

func TestGetCycleTimeByProject(t *testing.T) {
	uc := &ucMock{}
	app := newTestApp(uc)

	breakdown := entities.ProjectBreakdown{
		Projects: []entities.ProjectMetrics{
			{Project: "search", Metrics: entities.MetricsResult{P50Hours: 12, P90Hours: 30, Count: 4}},
			{Project: "billing", Metrics: entities.MetricsResult{P50Hours: 2, P90Hours: 5, Count: 2}},
		},
		ExcludedRecords: 1,
	}
	uc.On("CycleTimeByProject", mock.Anything, mock.Anything).Return(breakdown, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/cycle-time/by-project?week=2025-W02", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body byProjectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "2025-W02", body.Week)
	require.Len(t, body.Projects, 2)
	require.Equal(t, "search", body.Projects[0].Project)
	require.Equal(t, 1, body.ExcludedRecords)
}

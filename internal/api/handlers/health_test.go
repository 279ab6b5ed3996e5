package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"myjobs/internal/api/handlers"
	"myjobs/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type fakePinger map[string]error

func (f fakePinger) Ping(context.Context) map[string]error { return f }

type HealthHandlerTestSuite struct {
	suite.Suite
	dbs       fakePinger
	httpSuite *testutils.HTTPTestSuite
}

func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.dbs = fakePinger{"primary": nil}
	handler := handlers.NewHealthHandler(suite.dbs, "1.2.3")

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

func (suite *HealthHandlerTestSuite) TestHealth_Healthy() {
	suite.dbs["archive"] = nil

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "healthy", resp.Status)
	assert.Equal(suite.T(), "1.2.3", resp.Version)
	assert.Equal(suite.T(), map[string]string{"database:primary": "healthy", "database:archive": "healthy"}, resp.Services)
}

func (suite *HealthHandlerTestSuite) TestHealth_UnhealthyShard() {
	suite.dbs["qc"] = errors.New("connection refused")

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &resp)
	assert.Equal(suite.T(), "unhealthy", resp.Status)
	assert.Equal(suite.T(), "error: connection refused", resp.Services["database:qc"])
}

func (suite *HealthHandlerTestSuite) TestReady_NotReady() {
	suite.dbs["primary"] = errors.New("timeout")

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &resp)
	assert.Equal(suite.T(), false, resp["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), true, resp["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

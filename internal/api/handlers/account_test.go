package handlers_test

import (
	"net/http"
	"testing"

	"myjobs/internal/api/handlers"
	"myjobs/internal/auth"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/mocks"
	"myjobs/internal/service"
	"myjobs/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAccountServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	handler := handlers.NewAccountHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/auth/register", handler.Register)
	suite.httpSuite.Router.POST("/auth/login", handler.Login)
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountHandlerTestSuite) TestRegister_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Register(&service.RegisterRequest{Email: "alice@example.com", Password: "s3cret-pass"}).
		Return(&service.UserResponse{ID: id, Email: "alice@example.com", IsActive: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/register",
		map[string]string{"email": "alice@example.com", "password": "s3cret-pass"})

	var user service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &user)
	assert.Equal(suite.T(), id, user.ID)
	assert.True(suite.T(), user.IsActive)
}

func (suite *AccountHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/register",
		map[string]string{"email": "alice@example.com", "password": "s3cret-pass"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "user already exists")
}

func (suite *AccountHandlerTestSuite) TestRegister_MalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/register", "not an object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *AccountHandlerTestSuite) TestLogin_Success() {
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(&service.LoginResponse{
			TokenResponse: auth.TokenResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600},
			User:          service.UserResponse{Email: "alice@example.com"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/login",
		map[string]string{"email": "alice@example.com", "password": "s3cret-pass"})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "tok", resp["accessToken"])
	assert.Equal(suite.T(), "Bearer", resp["tokenType"])
}

func (suite *AccountHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/login",
		map[string]string{"email": "alice@example.com", "password": "wrong"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid email or password")
}

func (suite *AccountHandlerTestSuite) TestLogin_InactiveUser() {
	suite.mockService.EXPECT().Login(gomock.Any()).Return(nil, apperrors.ErrInactiveUser)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/auth/login",
		map[string]string{"email": "bob@example.com", "password": "s3cret-pass"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "inactive")
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
	"github.com/ronaldocristover/arisan-backend/internal/handlers"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// --- Mock MemberService ---
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Member), args.Get(1).(int64), args.Error(2)
}
func (m *MockMemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorUserID string) (*domain.Member, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, requestingUserID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

// --- Test Suite ---
type MemberHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockMemberService *MockMemberService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *MemberHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "arisan-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockMemberService = new(MockMemberService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMemberRoutes(v1, suite.mockMemberService)
}

func (suite *MemberHandlerTestSuite) authedRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}

	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *MemberHandlerTestSuite) TestCreateMember_Success() {
	req := dto.CreateMemberRequest{
		FullName: "Siti Rahma",
		Nickname: "Siti",
	}
	created := &domain.Member{
		MemberID: uuid.NewString(),
		FullName: req.FullName,
		Nickname: req.Nickname,
		Status:   domain.MemberActive,
	}

	suite.mockMemberService.On("CreateMember",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateMemberRequest) bool {
			return r.FullName == req.FullName && r.Nickname == req.Nickname
		}),
		mock.AnythingOfType("string"),
	).Return(created, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/members", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MemberResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.MemberID, resp.MemberID)
	suite.Equal("active", resp.Status)
	suite.mockMemberService.AssertExpectations(suite.T())
}

func (suite *MemberHandlerTestSuite) TestCreateMember_MissingFields() {
	w := suite.authedRequest(http.MethodPost, "/api/v1/members", map[string]string{"fullName": "No Nickname"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMemberService.AssertNotCalled(suite.T(), "CreateMember")
}

func (suite *MemberHandlerTestSuite) TestCreateMember_Unauthenticated() {
	body, _ := json.Marshal(dto.CreateMemberRequest{FullName: "X", Nickname: "Y"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMemberService.AssertNotCalled(suite.T(), "CreateMember")
}

func (suite *MemberHandlerTestSuite) TestListMembers_PassesFilters() {
	members := []domain.Member{
		{MemberID: uuid.NewString(), FullName: "Budi Santoso", Nickname: "Budi", Status: domain.MemberActive},
	}

	suite.mockMemberService.On("ListMembers",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListMembersParams) bool {
			return p.Page == 2 && p.Limit == 5 && p.Status == "active" && p.Search == "bud"
		}),
	).Return(members, int64(11), nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/members?page=2&limit=5&status=active&search=bud", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListMembersResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Members, 1)
	suite.Equal(int64(11), resp.Pagination.Total)
	suite.Equal(3, resp.Pagination.TotalPages)
	suite.True(resp.Pagination.HasNextPage)
	suite.mockMemberService.AssertExpectations(suite.T())
}

func (suite *MemberHandlerTestSuite) TestGetMemberByID_NotFound() {
	memberID := uuid.NewString()
	suite.mockMemberService.On("GetMemberByID", mock.Anything, memberID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/members/"+memberID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockMemberService.AssertExpectations(suite.T())
}

func (suite *MemberHandlerTestSuite) TestDeleteMember_Referenced() {
	memberID := uuid.NewString()
	suite.mockMemberService.On("DeleteMember", mock.Anything, memberID).
		Return(apperrors.ErrConflict).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/members/"+memberID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockMemberService.AssertExpectations(suite.T())
}

func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

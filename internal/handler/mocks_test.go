package handler

import (
	"context"
	"io"

	"mediavault/internal/dto"
	"mediavault/internal/models"
	"mediavault/internal/service"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Service fakes with per-call configurable results. Handlers only translate
// between HTTP and the service layer, so the fakes record what they were
// asked and return canned values.

type fakeAuthService struct {
	registerErr error
	loginToken  string
	loginUser   *models.User
	loginErr    error
	claims      *service.Claims
	validateErr error

	lastRole string
}

func (s *fakeAuthService) Register(_ context.Context, username, password, role string) (*models.User, error) {
	s.lastRole = role
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &models.User{ID: 1, Username: username, Role: role}, nil
}

func (s *fakeAuthService) CreateCreator(ctx context.Context, username, password string) (*models.User, error) {
	return s.Register(ctx, username, password, models.RoleCreator)
}

func (s *fakeAuthService) Login(_ context.Context, username, password string) (string, *models.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func (s *fakeAuthService) ValidateToken(string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.claims, nil
}

type fakeVideoService struct {
	summaries []dto.VideoSummary
	detail    *dto.VideoDetail
	uploadRes *dto.UploadVideoResponse
	err       error

	searchedWith string
	listAllCalls int
	genre        string
	uploadedBy   int64
	uploadedFile string
}

func (s *fakeVideoService) ListAll(context.Context) ([]dto.VideoSummary, error) {
	s.listAllCalls++
	return s.summaries, s.err
}

func (s *fakeVideoService) Search(_ context.Context, query string) ([]dto.VideoSummary, error) {
	s.searchedWith = query
	return s.summaries, s.err
}

func (s *fakeVideoService) ListByGenre(_ context.Context, genre string) ([]dto.VideoSummary, error) {
	s.genre = genre
	return s.summaries, s.err
}

func (s *fakeVideoService) GetByID(context.Context, int64) (*dto.VideoDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *fakeVideoService) Upload(_ context.Context, uploaderID int64, _ *dto.UploadVideoRequest, _ io.Reader, fileName string) (*dto.UploadVideoResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.uploadedBy = uploaderID
	s.uploadedFile = fileName
	return s.uploadRes, nil
}

type fakeCommentService struct {
	comment  *dto.CommentResponse
	comments []dto.CommentResponse
	err      error
}

func (s *fakeCommentService) Create(context.Context, int64, int64, string) (*dto.CommentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.comment, nil
}

func (s *fakeCommentService) ListByVideo(context.Context, int64) ([]dto.CommentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.comments, nil
}

type fakeRatingService struct {
	rating  *dto.RatingResponse
	ratings []dto.RatingResponse
	err     error

	lastValue int
}

func (s *fakeRatingService) Submit(_ context.Context, _, _ int64, value int) (*dto.RatingResponse, error) {
	s.lastValue = value
	if s.err != nil {
		return nil, s.err
	}
	return s.rating, nil
}

func (s *fakeRatingService) ListByVideo(context.Context, int64) ([]dto.RatingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ratings, nil
}

// asUser injects the auth context the way AuthMiddleware does, letting
// handler tests exercise gated routes without minting tokens.
func asUser(userID int64, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", username)
		c.Set("role", role)
	}
}

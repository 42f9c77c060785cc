package services

import (
	"context"
	"strconv"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/auth"
	"github.com/arjun/placehub/internal/pkg/logger"
)

// AuthService issues tokens for the two account kinds. Coordinators
// sign in with email, students with their roll number.
type AuthService struct {
	coordinatorRepo *repositories.CoordinatorRepository
	studentRepo     *repositories.StudentRepository
	jwtService      *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	coordinatorRepo *repositories.CoordinatorRepository,
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		coordinatorRepo: coordinatorRepo,
		studentRepo:     studentRepo,
		jwtService:      jwtService,
	}
}

// LoginCoordinator authenticates a coordinator by email and password
func (s *AuthService) LoginCoordinator(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	coordinator, err := s.coordinatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(coordinator.PasswordHash, password) {
		logger.Warn().Str("email", email).Msg("Failed coordinator login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(
		strconv.FormatInt(coordinator.ID, 10), string(models.RoleCoordinator), "", coordinator.Name)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleCoordinator),
		User:      coordinator,
	}, nil
}

// LoginStudent authenticates a student by roll number and password
func (s *AuthService) LoginStudent(ctx context.Context, studentID, password string) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		// Do not reveal whether the roll number exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		logger.Warn().Str("student_id", studentID).Msg("Failed student login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(
		student.StudentID, string(models.RoleStudent), student.StudentID, student.Name)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleStudent),
		User:      student,
	}, nil
}

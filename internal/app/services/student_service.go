package services

import (
	"context"
	"strings"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/auth"
	"github.com/arjun/placehub/internal/pkg/cache"
	"github.com/arjun/placehub/internal/pkg/filestorage"
	"github.com/arjun/placehub/internal/pkg/logger"
	"github.com/arjun/placehub/internal/pkg/metrics"
)

// StudentService handles student registration, profiles and resumes
type StudentService struct {
	studentRepo   *repositories.StudentRepository
	branchRepo    *repositories.BranchRepository
	resumeStorage filestorage.ResumeStorage
	statsCache    *cache.StatsCache
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	branchRepo *repositories.BranchRepository,
	resumeStorage filestorage.ResumeStorage,
	statsCache *cache.StatsCache,
) *StudentService {
	return &StudentService{
		studentRepo:   studentRepo,
		branchRepo:    branchRepo,
		resumeStorage: resumeStorage,
		statsCache:    statsCache,
	}
}

// CreateStudent registers a new student with a hashed password
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		return nil, apperrors.NewValidationError("student ID cannot be empty")
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:    studentID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		BranchID:     req.BranchID,
		Percentage:   req.Percentage,
		Grade:        req.Grade,
		Address:      req.Address,
		ContactNo:    req.ContactNo,
		ResumeURL:    req.ResumeURL,
		PasswordHash: passwordHash,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return s.studentRepo.GetByID(ctx, studentID)
}

// GetStudentByID retrieves a student by roll number
func (s *StudentService) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// UpdateStudent updates a student's profile. The roll number is
// immutable; the password is re-hashed only when supplied.
func (s *StudentService) UpdateStudent(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.BranchID != student.BranchID {
		if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
			return nil, err
		}
	}

	student.Name = strings.TrimSpace(req.Name)
	student.Email = strings.TrimSpace(req.Email)
	student.BranchID = req.BranchID
	student.Percentage = req.Percentage
	student.Grade = req.Grade
	student.Address = req.Address
	student.ContactNo = req.ContactNo

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	if req.Password != nil && *req.Password != "" {
		passwordHash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.studentRepo.UpdatePassword(ctx, studentID, passwordHash); err != nil {
			return nil, err
		}
	}

	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return s.studentRepo.GetByID(ctx, studentID)
}

// DeleteStudent deletes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, studentID string) error {
	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		return err
	}
	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return nil
}

// UploadResume validates and stores a student's resume, then records
// the durable URL on their profile. Re-uploads simply replace the URL.
func (s *StudentService) UploadResume(ctx context.Context, studentID string, data []byte, filename, contentType string) (string, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return "", err
	}

	if err := filestorage.ValidateResume(data, contentType); err != nil {
		metrics.ResumeUploads.WithLabelValues("rejected").Inc()
		return "", err
	}

	url, err := s.resumeStorage.UploadResume(ctx, data, filename)
	if err != nil {
		metrics.ResumeUploads.WithLabelValues("failed").Inc()
		logger.Error().Err(err).Str("student_id", studentID).Msg("Resume upload failed")
		return "", err
	}

	if err := s.studentRepo.UpdateResumeURL(ctx, studentID, url); err != nil {
		return "", err
	}

	metrics.ResumeUploads.WithLabelValues("ok").Inc()
	return url, nil
}

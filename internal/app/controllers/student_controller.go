package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/filestorage"
)

// StudentController handles student profiles, resumes and eligibility
type StudentController struct {
	studentService     *services.StudentService
	eligibilityService *services.EligibilityService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, eligibilityService *services.EligibilityService) *StudentController {
	return &StudentController{
		studentService:     studentService,
		eligibilityService: eligibilityService,
	}
}

// CreateStudent handles student registration
// @Summary Register a new student
// @Description Registers a student with their roll number as the natural key
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 409 {object} dto.ErrorResponse "Student ID or email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentByID retrieves a student by roll number
// @Summary Get student by ID
// @Description Retrieves a specific student. Students may only read their own record.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student roll number"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves a list of all registered students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates a student's profile
// @Summary Update a student
// @Description Updates a student's profile. The roll number is immutable.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student roll number"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student who has no placement records
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student roll number"
// @Success 204 "Student deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student has placement records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UploadResume stores a student's resume
// @Summary Upload a resume
// @Description Accepts a PDF up to 2MB and stores it durably, recording the URL on the student's profile
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student roll number"
// @Param resume formData file true "Resume file (PDF, max 2MB)"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeUploadResponse} "Resume uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or non-PDF file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Upload to storage failed"
// @Router /students/{id}/resume [post]
func (c *StudentController) UploadResume(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("resume file is required"))
		return
	}
	if fileHeader.Size > filestorage.MaxResumeSize {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("resume exceeds the 2MB size limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, filestorage.MaxResumeSize+1))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("could not read uploaded file"))
		return
	}

	url, err := c.studentService.UploadResume(ctx, ctx.Param("id"), data,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ResumeUploadResponse{ResumeURL: url},
		Timestamp: time.Now(),
	})
}

// GetEligibleDrives lists drives the student may apply to
// @Summary List eligible drives
// @Description Returns the drives the student can still apply to, ordered by deadline with open-ended drives last
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student roll number"
// @Success 200 {object} dto.APIResponse{data=[]models.Drive} "Eligible drives retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/eligible-drives [get]
func (c *StudentController) GetEligibleDrives(ctx *gin.Context) {
	drives, err := c.eligibilityService.EligibleDrivesForStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      drives,
		Timestamp: time.Now(),
	})
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	s.student_id, s.name, s.email, s.department_branch_id, s.percentage,
	s.grade, s.address, s.contact_no, s.resume_url, s.password_hash,
	b.branch_name`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var branch models.Branch

	err := row.Scan(
		&student.StudentID, &student.Name, &student.Email, &student.BranchID, &student.Percentage,
		&student.Grade, &student.Address, &student.ContactNo, &student.ResumeURL, &student.PasswordHash,
		&branch.Name,
	)
	if err != nil {
		return nil, err
	}

	branch.ID = student.BranchID
	student.Branch = &branch
	return &student, nil
}

// GetByID retrieves a student by roll number
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		JOIN branches b ON b.branch_id = s.department_branch_id
		WHERE s.student_id = $1
	`

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students ordered by roll number
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT` + studentColumns + `
		FROM students s
		JOIN branches b ON b.branch_id = s.department_branch_id
		ORDER BY s.student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, email, department_branch_id,
			percentage, grade, address, contact_no, resume_url, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		student.StudentID, student.Name, student.Email, student.BranchID,
		student.Percentage, student.Grade, student.Address, student.ContactNo,
		student.ResumeURL, student.PasswordHash)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError(fmt.Sprintf("branch %d does not exist", student.BranchID))
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update updates a student's profile fields. The roll number itself is
// immutable.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, department_branch_id = $3, percentage = $4,
			grade = $5, address = $6, contact_no = $7
		WHERE student_id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name, student.Email, student.BranchID, student.Percentage,
		student.Grade, student.Address, student.ContactNo, student.StudentID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("email is already registered to another student")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError(fmt.Sprintf("branch %d does not exist", student.BranchID))
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePassword replaces the student's password hash
func (r *StudentRepository) UpdatePassword(ctx context.Context, studentID string, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET password_hash = $1 WHERE student_id = $2`, passwordHash, studentID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateResumeURL stores the uploaded resume location
func (r *StudentRepository) UpdateResumeURL(ctx context.Context, studentID string, resumeURL string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET resume_url = $1 WHERE student_id = $2`, resumeURL, studentID)
	if err != nil {
		return fmt.Errorf("error updating resume url: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student. Refused while placement records exist.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("student has placement records")
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

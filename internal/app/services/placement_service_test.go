package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func (f *fakeStudentRepo) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	s, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

type fakeDriveRepo struct {
	drives map[int64]*models.Drive
}

func (f *fakeDriveRepo) GetByID(_ context.Context, id int64) (*models.Drive, error) {
	d, ok := f.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	return d, nil
}

type fakePlacementRepo struct {
	placements map[int64]*models.Placement
	nextID     int64
	backfilled int64
}

func (f *fakePlacementRepo) Create(_ context.Context, p *models.Placement) error {
	for _, existing := range f.placements {
		if existing.StudentID == p.StudentID && existing.DriveID == p.DriveID {
			return apperrors.ErrDuplicateApplication
		}
	}
	f.nextID++
	p.ID = f.nextID
	p.ApplicationDate = time.Now()
	if f.placements == nil {
		f.placements = make(map[int64]*models.Placement)
	}
	f.placements[p.ID] = p
	return nil
}

func (f *fakePlacementRepo) GetByID(_ context.Context, id int64) (*models.Placement, error) {
	p, ok := f.placements[id]
	if !ok {
		return nil, apperrors.ErrPlacementNotFound
	}
	return p, nil
}

func (f *fakePlacementRepo) List(_ context.Context, filter repositories.PlacementFilter) ([]*models.Placement, error) {
	var out []*models.Placement
	for _, p := range f.placements {
		if filter.StudentID != nil && p.StudentID != *filter.StudentID {
			continue
		}
		if filter.DriveID != nil && p.DriveID != *filter.DriveID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlacementRepo) ExistsForStudentAndDrive(_ context.Context, studentID string, driveID int64) (bool, error) {
	for _, p := range f.placements {
		if p.StudentID == studentID && p.DriveID == driveID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlacementRepo) UpdateStatus(_ context.Context, p *models.Placement) error {
	if _, ok := f.placements[p.ID]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	f.placements[p.ID] = p
	return nil
}

func (f *fakePlacementRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.placements[id]; !ok {
		return apperrors.ErrPlacementNotFound
	}
	delete(f.placements, id)
	return nil
}

func (f *fakePlacementRepo) BackfillConfirmedPackages(_ context.Context) (int64, error) {
	return f.backfilled, nil
}

func newPlacementFixture() (*PlacementService, *fakePlacementRepo) {
	resume := "https://cdn.example.com/resumes/21cs001.pdf"
	students := &fakeStudentRepo{students: map[string]*models.Student{
		"21CS001": {StudentID: "21CS001", BranchID: 1, Percentage: f64(75), ResumeURL: &resume},
		"21ME001": {StudentID: "21ME001", BranchID: 2, Percentage: f64(55)},
	}}
	drives := &fakeDriveRepo{drives: map[int64]*models.Drive{
		10: {ID: 10, JobTitle: "SDE", PackageLPA: f64(12), Criteria: testCriteria(f64(60), 1)},
	}}
	placements := &fakePlacementRepo{}
	return NewPlacementService(placements, students, drives, nil), placements
}

func TestPlacementCreate(t *testing.T) {
	svc, repo := newPlacementFixture()

	p, err := svc.Create(context.Background(), "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Status != models.StatusApplied {
		t.Errorf("new placement status = %s, want Applied", p.Status)
	}
	if p.ID == 0 {
		t.Error("placement ID was not assigned")
	}
	if p.Student == nil || p.Drive == nil {
		t.Error("created placement should carry its student and drive")
	}
	if len(repo.placements) != 1 {
		t.Errorf("store holds %d placements, want 1", len(repo.placements))
	}
}

func TestPlacementCreatePreconditionOrder(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	// Unknown student reported before the unknown drive.
	if _, err := svc.Create(ctx, "nobody", 999); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("unknown student and drive: got %v, want student not found", err)
	}

	if _, err := svc.Create(ctx, "21CS001", 999); !errors.Is(err, apperrors.ErrDriveNotFound) {
		t.Errorf("unknown drive: got %v, want drive not found", err)
	}

	// 21ME001 fails both percentage and branch; the percentage rule is
	// checked first.
	if _, err := svc.Create(ctx, "21ME001", 10); !errors.Is(err, apperrors.ErrPercentageNotMet) {
		t.Errorf("ineligible student: got %v, want percentage not met", err)
	}
}

func TestPlacementCreateBranchRule(t *testing.T) {
	svc, _ := newPlacementFixture()
	resume := "https://cdn.example.com/r.pdf"
	svc.studentRepo.(*fakeStudentRepo).students["21EE001"] = &models.Student{
		StudentID: "21EE001", BranchID: 3, Percentage: f64(90), ResumeURL: &resume,
	}

	_, err := svc.Create(context.Background(), "21EE001", 10)
	if !errors.Is(err, apperrors.ErrBranchNotEligible) {
		t.Errorf("wrong branch: got %v, want branch not eligible", err)
	}
}

func TestPlacementCreateDuplicate(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "21CS001", 10); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(ctx, "21CS001", 10)
	if !errors.Is(err, apperrors.ErrDuplicateApplication) {
		t.Errorf("second Create: got %v, want duplicate application", err)
	}
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate application should map to the conflict kind, got %v", err)
	}
}

func TestApplyRequiresResume(t *testing.T) {
	svc, _ := newPlacementFixture()
	svc.studentRepo.(*fakeStudentRepo).students["21ME001"].ResumeURL = nil

	_, err := svc.Apply(context.Background(), "21ME001", 10)
	if !errors.Is(err, apperrors.ErrResumeRequired) {
		t.Errorf("Apply without resume: got %v, want resume required", err)
	}

	empty := ""
	svc.studentRepo.(*fakeStudentRepo).students["21ME001"].ResumeURL = &empty
	if _, err := svc.Apply(context.Background(), "21ME001", 10); !errors.Is(err, apperrors.ErrResumeRequired) {
		t.Errorf("Apply with empty resume URL: got %v, want resume required", err)
	}
}

func TestApplyWithResume(t *testing.T) {
	svc, _ := newPlacementFixture()

	p, err := svc.Apply(context.Background(), "21CS001", 10)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Status != models.StatusApplied {
		t.Errorf("status = %s, want Applied", p.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newPlacementFixture()

	_, err := svc.UpdateStatus(context.Background(), 1, models.PlacementStatus("Hired"), nil, nil)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("unknown status: got %v, want validation error", err)
	}
}

func TestUpdateStatusOfferedAutoFill(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err := svc.UpdateStatus(ctx, created.ID, models.StatusOffered, nil, nil)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if p.PackageLPAConfirmed == nil || *p.PackageLPAConfirmed != 12 {
		t.Errorf("confirmed package = %v, want the drive package 12", p.PackageLPAConfirmed)
	}
	if p.PlacementDate == nil {
		t.Error("placement date should default to now when moving to Offered")
	}
}

func TestUpdateStatusOfferedExplicitPackageWins(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	date := "2026-04-15"
	p, err := svc.UpdateStatus(ctx, created.ID, models.StatusOffered, &date, f64(15))
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if *p.PackageLPAConfirmed != 15 {
		t.Errorf("confirmed package = %v, want the supplied 15", *p.PackageLPAConfirmed)
	}
	if p.PlacementDate == nil || p.PlacementDate.Format("2006-01-02") != "2026-04-15" {
		t.Errorf("placement date = %v, want 2026-04-15", p.PlacementDate)
	}
}

func TestUpdateStatusBackwardsTransition(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, created.ID, models.StatusOffered, nil, nil); err != nil {
		t.Fatalf("forward transition: %v", err)
	}

	// Coordinators correct mistakes by moving records back.
	p, err := svc.UpdateStatus(ctx, created.ID, models.StatusApplied, nil, nil)
	if err != nil {
		t.Fatalf("backwards transition: %v", err)
	}
	if p.Status != models.StatusApplied {
		t.Errorf("status = %s, want Applied", p.Status)
	}
}

func TestUpdateStatusBadDate(t *testing.T) {
	svc, _ := newPlacementFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bad := "15/04/2026"
	_, err = svc.UpdateStatus(ctx, created.ID, models.StatusOffered, &bad, nil)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("bad date: got %v, want validation error", err)
	}
}

func TestPlacementDelete(t *testing.T) {
	svc, repo := newPlacementFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, "21CS001", 10)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.placements) != 0 {
		t.Errorf("store holds %d placements after delete, want 0", len(repo.placements))
	}
	if !errors.Is(svc.Delete(ctx, created.ID), apperrors.ErrNotFound) {
		t.Error("deleting a missing placement should report not found")
	}
}

func TestUpdateOfferedPackages(t *testing.T) {
	svc, repo := newPlacementFixture()
	repo.backfilled = 3

	updated, err := svc.UpdateOfferedPackages(context.Background())
	if err != nil {
		t.Fatalf("UpdateOfferedPackages: %v", err)
	}
	if updated != 3 {
		t.Errorf("updated = %d, want 3", updated)
	}
}

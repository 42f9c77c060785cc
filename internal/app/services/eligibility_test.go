package services

import (
	"testing"
	"time"

	"github.com/arjun/placehub/internal/app/models"
)

func f64(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func testCriteria(minPct *float64, branchIDs ...int64) *models.Criteria {
	c := &models.Criteria{ID: 1, MinPercentage: minPct, ActiveStatus: true}
	for _, id := range branchIDs {
		c.AllowedBranches = append(c.AllowedBranches, models.Branch{ID: id})
	}
	return c
}

func TestEligibleDrivesFiltering(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	student := &models.Student{StudentID: "21CS001", BranchID: 1, Percentage: f64(72)}

	drives := []*models.Drive{
		{ID: 1, JobTitle: "open", Criteria: testCriteria(f64(60), 1), ApplicationDeadline: tptr(now.Add(48 * time.Hour))},
		{ID: 2, JobTitle: "expired", Criteria: testCriteria(f64(60), 1), ApplicationDeadline: tptr(now.Add(-time.Hour))},
		{ID: 3, JobTitle: "wrong branch", Criteria: testCriteria(nil, 2, 3), ApplicationDeadline: tptr(now.Add(48 * time.Hour))},
		{ID: 4, JobTitle: "high bar", Criteria: testCriteria(f64(80), 1), ApplicationDeadline: tptr(now.Add(48 * time.Hour))},
		{ID: 5, JobTitle: "already applied", Criteria: testCriteria(nil, 1), ApplicationDeadline: tptr(now.Add(48 * time.Hour))},
		{ID: 6, JobTitle: "no deadline", Criteria: testCriteria(nil, 1)},
		{ID: 7, JobTitle: "no criteria loaded"},
	}
	applied := map[int64]bool{5: true}

	got := EligibleDrives(student, drives, applied, now)

	want := []int64{1, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d drives, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got drive %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestEligibleDrivesDeadlineBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	student := &models.Student{StudentID: "21CS001", BranchID: 1}

	drives := []*models.Drive{
		{ID: 1, Criteria: testCriteria(nil, 1), ApplicationDeadline: tptr(now)},
	}

	got := EligibleDrives(student, drives, nil, now)
	if len(got) != 1 {
		t.Fatalf("a deadline equal to now must still be open, got %d drives", len(got))
	}
}

func TestEligibleDrivesNilPercentage(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	student := &models.Student{StudentID: "21CS001", BranchID: 1, Percentage: nil}

	drives := []*models.Drive{
		{ID: 1, Criteria: testCriteria(f64(1), 1)},
		{ID: 2, Criteria: testCriteria(nil, 1)},
	}

	got := EligibleDrives(student, drives, nil, now)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("a student with no percentage must fail any numeric minimum but pass a nil one, got %v", ids(got))
	}
}

func TestMeetsMinPercentageExactBoundary(t *testing.T) {
	student := &models.Student{Percentage: f64(60)}
	if !student.MeetsMinPercentage(f64(60)) {
		t.Error("percentage equal to the minimum must pass")
	}
	if student.MeetsMinPercentage(f64(60.01)) {
		t.Error("percentage below the minimum must fail")
	}
}

func TestSortByDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	drives := []*models.Drive{
		{ID: 1},
		{ID: 2, ApplicationDeadline: tptr(now.Add(72 * time.Hour))},
		{ID: 3, ApplicationDeadline: tptr(now.Add(24 * time.Hour))},
		{ID: 4},
		{ID: 5, ApplicationDeadline: tptr(now.Add(24 * time.Hour))},
	}

	SortByDeadline(drives)

	want := []int64{3, 5, 2, 1, 4}
	for i, id := range want {
		if drives[i].ID != id {
			t.Fatalf("got order %v, want %v", ids(drives), want)
		}
	}
}

func ids(drives []*models.Drive) []int64 {
	out := make([]int64, 0, len(drives))
	for _, d := range drives {
		out = append(out, d.ID)
	}
	return out
}

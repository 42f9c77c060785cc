package services

import (
	"testing"

	"github.com/arjun/placehub/internal/app/models"
)

func TestComputeDashboardStats(t *testing.T) {
	branches := []*models.Branch{
		{ID: 1, Name: "Computer Science"},
		{ID: 2, Name: "Mechanical Engineering"},
	}
	students := []*models.Student{
		{StudentID: "21CS001", BranchID: 1},
		{StudentID: "21CS002", BranchID: 1},
		{StudentID: "21CS003", BranchID: 1},
		{StudentID: "21ME001", BranchID: 2},
	}
	placements := []*models.Placement{
		{ID: 1, StudentID: "21CS001", Status: models.StatusOffered, PackageLPAConfirmed: f64(10)},
		{ID: 2, StudentID: "21CS001", Status: models.StatusNotPlaced},
		{ID: 3, StudentID: "21CS002", Status: models.StatusOfferAccepted, PackageLPAConfirmed: f64(7)},
		{ID: 4, StudentID: "21CS003", Status: models.StatusShortlisted},
		{ID: 5, StudentID: "21ME001", Status: models.StatusApplied},
	}

	stats := ComputeDashboardStats(students, branches, placements, 3, 6)

	if stats.TotalStudents != 4 || stats.TotalCompanies != 3 || stats.TotalDrives != 6 {
		t.Errorf("totals wrong: %+v", stats)
	}
	if stats.TotalApplications != 5 {
		t.Errorf("TotalApplications = %d, want 5", stats.TotalApplications)
	}
	// 21CS001 is placed once even though they hold two placement records.
	if stats.PlacedStudents != 2 {
		t.Errorf("PlacedStudents = %d, want 2 distinct students", stats.PlacedStudents)
	}
	// 2 of 4 students placed.
	if stats.PlacementRate != 50 {
		t.Errorf("PlacementRate = %d, want 50", stats.PlacementRate)
	}
	// (10 + 7) / 2
	if stats.AveragePackage != 8.5 {
		t.Errorf("AveragePackage = %v, want 8.5", stats.AveragePackage)
	}

	if len(stats.BranchStats) != 2 {
		t.Fatalf("BranchStats has %d entries, want 2", len(stats.BranchStats))
	}
	cs := stats.BranchStats[0]
	if cs.BranchName != "Computer Science" || cs.TotalStudents != 3 || cs.PlacedStudents != 2 || cs.PlacementRate != 67 {
		t.Errorf("CS branch stats wrong: %+v", cs)
	}
	me := stats.BranchStats[1]
	if me.TotalStudents != 1 || me.PlacedStudents != 0 || me.PlacementRate != 0 {
		t.Errorf("ME branch stats wrong: %+v", me)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, nil, 0, 0)

	if stats.PlacementRate != 0 {
		t.Errorf("PlacementRate = %d, want 0 with no students", stats.PlacementRate)
	}
	if stats.AveragePackage != 0 {
		t.Errorf("AveragePackage = %v, want 0 with no placements", stats.AveragePackage)
	}
	// Every known status appears with a zero count.
	if len(stats.StatusBreakdown) != len(models.AllPlacementStatuses) {
		t.Fatalf("StatusBreakdown has %d entries, want %d", len(stats.StatusBreakdown), len(models.AllPlacementStatuses))
	}
	for _, sc := range stats.StatusBreakdown {
		if sc.Count != 0 || sc.Percentage != 0 {
			t.Errorf("status %s: count %d pct %d, want zeros", sc.Status, sc.Count, sc.Percentage)
		}
	}
}

func TestAveragePackageDriveFallback(t *testing.T) {
	placements := []*models.Placement{
		// Confirmed figure wins when present.
		{StudentID: "a", Status: models.StatusOffered, PackageLPAConfirmed: f64(12), Drive: &models.Drive{PackageLPA: f64(4)}},
		// No confirmed figure falls back to the drive package.
		{StudentID: "b", Status: models.StatusOfferAccepted, Drive: &models.Drive{PackageLPA: f64(6)}},
		// Neither figure: skipped, not counted as zero.
		{StudentID: "c", Status: models.StatusOffered},
		// Not placed: ignored even with a package attached.
		{StudentID: "d", Status: models.StatusOfferRejected, PackageLPAConfirmed: f64(100)},
	}

	got := averagePackage(placements)
	if got != 9 {
		t.Errorf("averagePackage = %v, want 9", got)
	}
}

func TestAveragePackageRounding(t *testing.T) {
	placements := []*models.Placement{
		{StudentID: "a", Status: models.StatusOffered, PackageLPAConfirmed: f64(10)},
		{StudentID: "b", Status: models.StatusOffered, PackageLPAConfirmed: f64(10)},
		{StudentID: "c", Status: models.StatusOffered, PackageLPAConfirmed: f64(10.01)},
	}

	got := averagePackage(placements)
	if got != 10.0 {
		t.Errorf("averagePackage = %v, want 10.0 after rounding to two decimals", got)
	}
}

func TestRoundedRate(t *testing.T) {
	cases := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := roundedRate(tc.part, tc.whole); got != tc.want {
			t.Errorf("roundedRate(%d, %d) = %d, want %d", tc.part, tc.whole, got, tc.want)
		}
	}
}

func TestStatusBreakdownPercentages(t *testing.T) {
	placements := []*models.Placement{
		{Status: models.StatusApplied},
		{Status: models.StatusApplied},
		{Status: models.StatusOffered},
	}

	breakdown := statusBreakdown(placements)
	byStatus := make(map[string]int)
	for _, sc := range breakdown {
		byStatus[sc.Status] = sc.Percentage
	}

	if byStatus["Applied"] != 67 {
		t.Errorf("Applied percentage = %d, want 67", byStatus["Applied"])
	}
	if byStatus["Offered"] != 33 {
		t.Errorf("Offered percentage = %d, want 33", byStatus["Offered"])
	}
	if byStatus["Not_Placed"] != 0 {
		t.Errorf("Not_Placed percentage = %d, want 0", byStatus["Not_Placed"])
	}
}

package charts

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/velograph/velograph/pkg/activity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func seasonActivities() []activity.Activity {
	var activities []activity.Activity
	start := time.Date(2024, 1, 8, 7, 30, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		a := ride(int64(100+i), start.AddDate(0, 0, i*7), 2862, 600)
		a.TotalElevationGain = 30
		activities = append(activities, a)
	}
	run := ride(200, start.AddDate(0, 1, 0), 5000, 1800)
	run.Type = "Run"
	activities = append(activities, run)
	return activities
}

func TestRenderAllWritesEveryArtifact(t *testing.T) {
	dir := t.TempDir()

	if err := RenderAll(seasonActivities(), "UTC", dir, testLogger()); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}

	for _, name := range []string{
		"monthly_distance.png", "time_of_day.png",
		"monthly_stats.html", "time_distribution.html",
		"activity_heatmap.html", "activity_bubbles.html",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}
}

func TestRenderAllFailuresAreIndependent(t *testing.T) {
	dir := t.TempDir()

	// A directory squatting on the artifact path makes only that renderer
	// fail; the rest must still be written.
	if err := os.MkdirAll(filepath.Join(dir, "monthly_distance.png"), 0o750); err != nil {
		t.Fatalf("seeding collision: %v", err)
	}

	err := RenderAll(seasonActivities(), "UTC", dir, testLogger())
	if err == nil {
		t.Fatal("expected an error for the blocked artifact")
	}
	if !strings.Contains(err.Error(), "monthly_distance.png") {
		t.Errorf("error %q does not name the failed artifact", err)
	}

	for _, name := range []string{
		"time_of_day.png", "monthly_stats.html",
		"time_distribution.html", "activity_heatmap.html", "activity_bubbles.html",
	} {
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr != nil {
			t.Errorf("artifact %s should have been written: %v", name, statErr)
		}
		if strings.Contains(err.Error(), name) {
			t.Errorf("error %q names artifact %s, which succeeded", err, name)
		}
	}
}

func TestRenderAllEmptyRecordSet(t *testing.T) {
	err := RenderAll(nil, "UTC", t.TempDir(), testLogger())
	if err == nil {
		t.Fatal("expected errors when there is no data to chart")
	}
}

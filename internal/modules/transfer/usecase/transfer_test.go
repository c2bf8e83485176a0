package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	trackerdto "focustracker/internal/modules/tracker/dto"
	trackerin "focustracker/internal/modules/tracker/port/in"
	trackerservice "focustracker/internal/modules/tracker/service"
	trackerusecase "focustracker/internal/modules/tracker/usecase"
	transferout "focustracker/internal/modules/transfer/adapter/out"
	"focustracker/internal/modules/transfer/service"
	transferusecase "focustracker/internal/modules/transfer/usecase"
	apperrors "focustracker/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedID struct{}

func (fixedID) New() string { return "generated" }

func newTracker(t *testing.T, clk fixedClock) trackerin.Usecase {
	t.Helper()
	return trackerusecase.NewInteractor(trackerservice.NewTrackerService(clk, fixedID{}), nil, nil, nil)
}

func seed(t *testing.T, tracker trackerin.Usecase) {
	t.Helper()
	focus := 25
	_, err := tracker.ImportData(context.Background(), trackerdto.ImportInput{
		Sessions: []trackerdto.Session{
			{ID: "s1", Date: "2026-03-02", Start: "2026-03-02T09:00:00.000Z", End: "2026-03-02T09:25:00.000Z", DurationMS: 1500000, Type: "pomodoro", FocusMinutes: &focus},
		},
		Settings: trackerdto.Settings{FocusMinutes: 30, ShortBreakMinutes: 5, LongBreakMinutes: 20, SessionsUntilLongBreak: 3, AutoStartNext: true},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)}
	source := newTracker(t, clk)
	seed(t, source)
	dir := t.TempDir()

	exporter := transferusecase.NewInteractor(service.NewTransferService(clk, transferout.NewTrackerGatewayAdapter(source), transferout.NewFileArchive()), nil)
	out, err := exporter.Export(context.Background(), dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(out.Path) != "focus_data_2026-03-02.json" || out.Sessions != 1 {
		t.Fatalf("unexpected export output: %+v", out)
	}

	target := newTracker(t, clk)
	importer := transferusecase.NewInteractor(service.NewTransferService(clk, transferout.NewTrackerGatewayAdapter(target), transferout.NewFileArchive()), nil)
	imported, err := importer.Import(context.Background(), out.Path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.Sessions != 1 || imported.Message != "Data imported successfully!" {
		t.Fatalf("unexpected import output: %+v", imported)
	}
	sessions, _ := target.Sessions(context.Background())
	settings, _ := target.Settings(context.Background())
	if len(sessions) != 1 || sessions[0].ID != "s1" || *sessions[0].FocusMinutes != 25 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
	if settings.FocusMinutes != 30 || !settings.AutoStartNext || settings.SessionsUntilLongBreak != 3 {
		t.Fatalf("unexpected settings: %+v", settings)
	}
}

func TestExportToWriter(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)}
	tracker := newTracker(t, clk)
	seed(t, tracker)
	uc := transferusecase.NewInteractor(service.NewTransferService(clk, transferout.NewTrackerGatewayAdapter(tracker), transferout.NewFileArchive()), nil)

	var buf bytes.Buffer
	if err := uc.ExportTo(context.Background(), &buf); err != nil {
		t.Fatalf("export to writer: %v", err)
	}
	for _, want := range []string{`"version": "1.0.0"`, `"exportDate": "2026-03-02T12:00:00.000Z"`, `"id": "s1"`, `"focusDuration": 30`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %s in export:\n%s", want, buf.String())
		}
	}
}

func TestRejectedImportLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	clk := fixedClock{now: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)}
	tracker := newTracker(t, clk)
	seed(t, tracker)
	uc := transferusecase.NewInteractor(service.NewTransferService(clk, transferout.NewTrackerGatewayAdapter(tracker), transferout.NewFileArchive()), nil)
	dir := t.TempDir()

	cases := map[string]struct {
		body string
		want error
		msg  string
	}{
		"garbage": {"not json", apperrors.ErrImportParse, "Failed to parse JSON file. Please check the file format."},
		"null":    {"null", apperrors.ErrInvalidImport, "Invalid file format. Please check your JSON file."},
		"empty":   {"{}", apperrors.ErrInvalidImport, "Invalid file format. Please check your JSON file."},
		"string":  {`{"sessions":"invalid"}`, apperrors.ErrInvalidImport, "Invalid file format. Please check your JSON file."},
	}
	for name, tc := range cases {
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		out, err := uc.Import(context.Background(), path)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
		}
		if out.Message != tc.msg {
			t.Fatalf("%s: unexpected message %q", name, out.Message)
		}
	}

	sessions, _ := tracker.Sessions(context.Background())
	settings, _ := tracker.Settings(context.Background())
	if len(sessions) != 1 || settings.FocusMinutes != 30 {
		t.Fatalf("state changed after rejected imports: %+v %+v", sessions, settings)
	}

	if _, err := uc.Import(context.Background(), filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

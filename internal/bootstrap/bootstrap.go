package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	analyticsinadapter "focustracker/internal/modules/analytics/adapter/in"
	analyticsoutadapter "focustracker/internal/modules/analytics/adapter/out"
	analyticsservice "focustracker/internal/modules/analytics/service"
	analyticsusecase "focustracker/internal/modules/analytics/usecase"
	trackerinadapter "focustracker/internal/modules/tracker/adapter/in"
	trackeroutadapter "focustracker/internal/modules/tracker/adapter/out"
	trackerout "focustracker/internal/modules/tracker/port/out"
	trackerservice "focustracker/internal/modules/tracker/service"
	trackerusecase "focustracker/internal/modules/tracker/usecase"
	transferinadapter "focustracker/internal/modules/transfer/adapter/in"
	transferoutadapter "focustracker/internal/modules/transfer/adapter/out"
	transferservice "focustracker/internal/modules/transfer/service"
	transferusecase "focustracker/internal/modules/transfer/usecase"
	"focustracker/internal/platform/clock"
	"focustracker/internal/platform/config"
	"focustracker/internal/platform/id"
	"focustracker/internal/platform/logging"
	uiapp "focustracker/internal/ui/app"
)

type App struct {
	TrackerCLI   trackerinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	AnalyticsTUI analyticsinadapter.TUIHandler
	TransferCLI  transferinadapter.CLIHandler
	Clock        clock.Clock
	DataDir      string

	closers []io.Closer
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}
	app := &App{Clock: clk, DataDir: cfg.DataDir}

	kv, err := newKVStore(cfg, app)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage ready", "backend", cfg.Backend, "data_dir", cfg.DataDir)

	trackerUC := trackerusecase.NewInteractor(
		trackerservice.NewTrackerService(clk, ids),
		trackeroutadapter.NewKVStateStore(kv, logger),
		trackeroutadapter.NewOSNotifier(cfg.Notify, logger),
		logger,
	)
	analyticsUC := analyticsusecase.NewInteractor(analyticsservice.NewAnalyticsService(
		clk,
		analyticsoutadapter.NewTrackerSourceAdapter(trackerUC),
	))
	transferUC := transferusecase.NewInteractor(transferservice.NewTransferService(
		clk,
		transferoutadapter.NewTrackerGatewayAdapter(trackerUC),
		transferoutadapter.NewFileArchive(),
	), logger)

	app.TrackerCLI = trackerinadapter.NewCLIHandler(trackerUC)
	app.AnalyticsCLI = analyticsinadapter.NewCLIHandler(analyticsUC)
	app.AnalyticsTUI = analyticsinadapter.NewTUIHandler(analyticsUC, clk)
	app.TransferCLI = transferinadapter.NewCLIHandler(transferUC)
	return app, nil
}

func newKVStore(cfg config.Config, app *App) (trackerout.KVStore, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := trackeroutadapter.NewSQLiteKVStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new sqlite store: %w", err)
		}
		app.closers = append(app.closers, store)
		return store, nil
	default:
		return trackeroutadapter.NewFileKVStore(cfg.DataDir), nil
	}
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.DataDir, app.TrackerCLI, app.AnalyticsTUI, app.TransferCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

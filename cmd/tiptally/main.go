package main

import (
	"runtime"

	"tiptally/internal/config"
	"tiptally/internal/controllers"
	"tiptally/internal/i18n"
	"tiptally/internal/logger"
	"tiptally/internal/models"
	"tiptally/internal/money"
	"tiptally/internal/services"
	"tiptally/internal/shutdown"
	"tiptally/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Tip Tally"
	AppID      = "com.moneytools.tiptally"
	AppVersion = "1.0.0"
)

// Window dimensions for the single calculator screen.
const (
	windowWidth  = 420
	windowHeight = 540
)

// Application represents the main application using MVC architecture
type Application struct {
	// Core components
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	catalog *i18n.Catalog

	// MVC Components
	controller *controllers.MainController
	view       *views.MainView

	// Services
	calcService *services.CalculationService

	// Models/Repositories
	stateRepo *models.CalculatorState

	// Lifecycle management
	shutdownMgr *shutdown.Manager
}

func main() {
	cfg := config.FromEnv()
	appLogger := logger.New(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	application := NewApplication(cfg, appLogger)
	application.Run()

	appLogger.Info("application terminated", nil)
}

// NewApplication creates and wires the application components using
// dependency injection
func NewApplication(cfg config.Config, appLogger logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	loc := resolveLocale(cfg, appLogger)
	catalog := i18n.NewCatalog(loc.Tag)

	appLogger.Info("application starting", map[string]interface{}{
		"version":    AppVersion,
		"locale":     loc.Tag.String(),
		"currency":   loc.Unit.String(),
		"log_level":  cfg.LogLevel,
		"go_version": runtime.Version(),
	})

	// Initialize repositories/models
	stateRepo := models.NewCalculatorState()

	// Initialize services
	calcService := services.NewCalculationService(stateRepo, money.NewFormatterForLocale(loc), appLogger)

	// Initialize MVC components
	mainController := controllers.NewMainController(calcService, stateRepo, appLogger)
	mainView := views.NewMainView(window, catalog)

	// Wire MVC components together
	mainController.SetMainView(mainView)
	mainController.SetWindow(window)
	mainController.SetLocale(loc)

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register("calculation service", calcService)
	shutdownMgr.Register("controller", mainController)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		logger:      appLogger,
		catalog:     catalog,
		controller:  mainController,
		view:        mainView,
		calcService: calcService,
		stateRepo:   stateRepo,
		shutdownMgr: shutdownMgr,
	}

	application.setupWindowEvents()

	// First paint so the window opens with formatted zero amounts and the
	// detected locale in the status bar.
	mainController.Refresh()

	appLogger.Info("application initialized", map[string]interface{}{
		"components": []string{"models", "services", "controllers", "views"},
	})

	return application
}

// resolveLocale picks the display locale, preferring explicit environment
// overrides over host detection.
func resolveLocale(cfg config.Config, appLogger logger.Logger) money.Locale {
	if cfg.Locale == "" && cfg.Currency == "" {
		return money.Detect()
	}

	tagName := cfg.Locale
	if tagName == "" {
		tagName = money.Detect().Tag.String()
	}

	loc, err := money.ParseLocale(tagName, cfg.Currency)
	if err != nil {
		appLogger.Warning("invalid locale override, using host locale", map[string]interface{}{
			"locale":   cfg.Locale,
			"currency": cfg.Currency,
			"error":    err.Error(),
		})
		return money.Detect()
	}

	return loc
}

// Run starts the UI event loop and blocks until the application quits.
func (a *Application) Run() {
	a.shutdownMgr.OnComplete(func() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	})
	a.shutdownMgr.Listen()

	a.view.Show()
	a.fyneApp.Run()
}

// setupWindowEvents configures window lifecycle events.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.view.ShowConfirm(
			a.catalog.T(i18n.QuitTitle),
			a.catalog.T(i18n.QuitMessage),
			func(confirmed bool) {
				if confirmed {
					a.shutdownMgr.Shutdown()
				}
			},
		)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("window closed", nil)
		a.shutdownMgr.Shutdown()
	})
}

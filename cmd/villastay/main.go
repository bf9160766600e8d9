package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"villastay/internal/app/commands"
	sessionsapp "villastay/internal/app/handlers/sessions"
	villasapp "villastay/internal/app/handlers/villas"
	"villastay/internal/app/middleware"
	appoutbox "villastay/internal/app/outbox"
	"villastay/internal/app/queries"
	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/villa"
	"villastay/internal/infra/broker/kafka"
	"villastay/internal/infra/config"
	ginserver "villastay/internal/infra/http/gin"
	"villastay/internal/infra/obs"
	infraoutbox "villastay/internal/infra/outbox"
	"villastay/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app := buildApplication(ctx, cfg, logger)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, app.handlers)

	fixturesPath := cfg.VillaFixtures
	if fixturesPath == "" {
		fixturesPath = filepath.Join("data", "villas.json")
	}
	if err := app.loadVillaFixtures(ctx, fixturesPath, logger); err != nil {
		logger.Warn("villa fixtures load failed", "error", err, "path", fixturesPath)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	villas   *memory.VillaRepository
	cfg      config.Config
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) application {
	villasRepo := memory.NewVillaRepository()
	sessionsRepo := memory.NewSessionRepository()
	idStore := memory.NewIdempotencyStore()

	var box appoutbox.Outbox
	if len(cfg.KafkaBrokers) > 0 {
		queue := memory.NewOutboxQueue()
		box = queue
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Error("kafka producer init failed, events stay queued", "error", err)
		} else {
			worker := &infraoutbox.Worker{
				Store:       queue,
				Producer:    producer,
				Interval:    cfg.OutboxPollInterval,
				TopicPrefix: cfg.KafkaTopicPrefix,
				Backoff:     cfg.RetryBackoff,
			}
			go func() {
				if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("outbox worker stopped", "error", err)
				}
			}()
		}
	} else {
		box = memory.NewOutbox()
	}

	deps := sessionsapp.Deps{
		Sessions: sessionsRepo,
		Villas:   villasRepo,
		Outbox:   box,
		Encoder:  appoutbox.JSONEventEncoder{},
	}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, sessionsapp.CreateSessionCommand{}.Key(), &sessionsapp.CreateSessionHandler{Deps: deps})
	commands.RegisterHandler(commandBus, sessionsapp.SelectDateCommand{}.Key(), &sessionsapp.SelectDateHandler{Deps: deps})
	commands.RegisterHandler(commandBus, sessionsapp.AdjustDurationCommand{}.Key(), &sessionsapp.AdjustDurationHandler{Deps: deps})
	commands.RegisterHandler(commandBus, sessionsapp.SwitchModeCommand{}.Key(), &sessionsapp.SwitchModeHandler{Deps: deps})
	commands.RegisterHandler(commandBus, sessionsapp.ClearSelectionCommand{}.Key(), &sessionsapp.ClearSelectionHandler{Deps: deps})
	commands.RegisterHandler(commandBus, sessionsapp.ConfirmStayCommand{}.Key(), &sessionsapp.ConfirmStayHandler{Deps: deps})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, sessionsapp.GetSessionQuery{}.Key(), &sessionsapp.GetSessionHandler{Deps: deps})
	queries.RegisterHandler(queryBus, sessionsapp.GetGridQuery{}.Key(), &sessionsapp.GetGridHandler{Deps: deps})
	queries.RegisterHandler(queryBus, villasapp.GetCalendarQuery{}.Key(), &villasapp.GetCalendarHandler{Villas: villasRepo})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Idempotency(idStore, nil),
		middleware.OutboxFlush(box),
	)
	queryBusWithMiddleware := middleware.ChainQueries(queryBus)

	return application{
		handlers: ginserver.Handlers{
			Session: ginserver.SessionHandler{
				Commands: commandBusWithMiddleware,
				Queries:  queryBusWithMiddleware,
			},
			Villa: ginserver.VillaHandler{
				Queries: queryBusWithMiddleware,
			},
		},
		villas: villasRepo,
		cfg:    cfg,
	}
}

func (a application) loadVillaFixtures(ctx context.Context, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("villa fixtures file not found, using built-in demo villa", "path", path)
			return a.loadDemoVilla(ctx, logger)
		}
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures []villaFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}
	if len(fixtures) == 0 {
		return a.loadDemoVilla(ctx, logger)
	}

	for _, fx := range fixtures {
		v, err := fx.toVilla(a.cfg)
		if err != nil {
			logger.Error("fixture invalid", "villa_id", fx.ID, "error", err)
			continue
		}
		if err := a.villas.Save(ctx, v); err != nil {
			logger.Error("cannot store fixture villa", "villa_id", fx.ID, "error", err)
			continue
		}
		logger.Info("villa fixture imported", "villa_id", v.ID)
	}
	return nil
}

// loadDemoVilla seeds the reference property so the service is usable out
// of the box.
func (a application) loadDemoVilla(ctx context.Context, logger *slog.Logger) error {
	v, err := villa.NewVilla(villa.CreateVillaParams{
		ID:                 "villa-demo",
		Name:               "Villa Helios",
		Description:        "Reference seaside villa with the demo booking data.",
		WeeklyRate:         money.Must(8400, "EUR"),
		NightlyRate:        money.Must(1200, "EUR"),
		DiscountPercent:    int64(a.cfg.WeeklyDiscountPercent),
		DiscountMinWeeks:   a.cfg.DiscountMinWeeks,
		MinShortStayNights: a.cfg.MinShortStayNights,
		MaxShortStayNights: a.cfg.MaxShortStayNights,
		WeeklyBookings: []availability.WeeklyBooking{
			{Start: calendar.MustParse("2025-04-12"), Weeks: 1},
			{Start: calendar.MustParse("2025-04-26"), Weeks: 2},
			{Start: calendar.MustParse("2025-05-17"), Weeks: 1},
		},
		ShortBookings: []availability.ShortBooking{
			{Start: calendar.MustParse("2025-05-03"), Nights: 4},
			{Start: calendar.MustParse("2025-05-31"), Nights: 3},
		},
		MaintenanceDates: []calendar.Date{
			calendar.MustParse("2025-04-01"),
			calendar.MustParse("2025-04-02"),
			calendar.MustParse("2025-04-03"),
			calendar.MustParse("2025-06-10"),
			calendar.MustParse("2025-06-11"),
		},
	})
	if err != nil {
		return err
	}
	if err := a.villas.Save(ctx, v); err != nil {
		return err
	}
	logger.Info("demo villa seeded", "villa_id", v.ID)
	return nil
}

type villaFixture struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Currency           string              `json:"currency"`
	WeeklyRate         int64               `json:"weekly_rate"`
	NightlyRate        int64               `json:"nightly_rate"`
	DiscountPercent    int64               `json:"discount_percent"`
	DiscountMinWeeks   int                 `json:"discount_min_weeks"`
	MinShortStayNights int                 `json:"min_short_stay_nights"`
	MaxShortStayNights int                 `json:"max_short_stay_nights"`
	WeeklyBookings     []weeklyBookingJSON `json:"weekly_bookings"`
	ShortBookings      []shortBookingJSON  `json:"short_bookings"`
	MaintenanceDates   []string            `json:"maintenance_dates"`
}

type weeklyBookingJSON struct {
	Start string `json:"start"`
	Weeks int    `json:"weeks"`
}

type shortBookingJSON struct {
	Start  string `json:"start"`
	Nights int    `json:"nights"`
}

func (fx villaFixture) toVilla(cfg config.Config) (*villa.Villa, error) {
	currency := fx.Currency
	if currency == "" {
		currency = "EUR"
	}
	weeklyRate, err := money.New(fx.WeeklyRate, currency)
	if err != nil {
		return nil, err
	}
	nightlyRate, err := money.New(fx.NightlyRate, currency)
	if err != nil {
		return nil, err
	}

	params := villa.CreateVillaParams{
		ID:                 villa.VillaID(fx.ID),
		Name:               fx.Name,
		Description:        fx.Description,
		WeeklyRate:         weeklyRate,
		NightlyRate:        nightlyRate,
		DiscountPercent:    fx.DiscountPercent,
		DiscountMinWeeks:   fx.DiscountMinWeeks,
		MinShortStayNights: fx.MinShortStayNights,
		MaxShortStayNights: fx.MaxShortStayNights,
	}
	if params.DiscountPercent == 0 {
		params.DiscountPercent = int64(cfg.WeeklyDiscountPercent)
	}
	if params.DiscountMinWeeks == 0 {
		params.DiscountMinWeeks = cfg.DiscountMinWeeks
	}
	if params.MinShortStayNights == 0 {
		params.MinShortStayNights = cfg.MinShortStayNights
	}
	if params.MaxShortStayNights == 0 {
		params.MaxShortStayNights = cfg.MaxShortStayNights
	}

	for _, b := range fx.WeeklyBookings {
		start, err := calendar.Parse(b.Start)
		if err != nil {
			return nil, err
		}
		params.WeeklyBookings = append(params.WeeklyBookings, availability.WeeklyBooking{Start: start, Weeks: b.Weeks})
	}
	for _, b := range fx.ShortBookings {
		start, err := calendar.Parse(b.Start)
		if err != nil {
			return nil, err
		}
		params.ShortBookings = append(params.ShortBookings, availability.ShortBooking{Start: start, Nights: b.Nights})
	}
	for _, d := range fx.MaintenanceDates {
		date, err := calendar.Parse(d)
		if err != nil {
			return nil, err
		}
		params.MaintenanceDates = append(params.MaintenanceDates, date)
	}
	return villa.NewVilla(params)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

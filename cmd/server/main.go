package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	emailPkg "gymtrack/internal/adapters/email"
	web "gymtrack/internal/adapters/http"
	"gymtrack/internal/adapters/storage"
	accountStore "gymtrack/internal/adapters/storage/account"
	attendanceStore "gymtrack/internal/adapters/storage/attendance"
	equipmentStore "gymtrack/internal/adapters/storage/equipment"
	memberStore "gymtrack/internal/adapters/storage/member"
	membershipStore "gymtrack/internal/adapters/storage/membership"
	noticeStore "gymtrack/internal/adapters/storage/notice"
	paymentStore "gymtrack/internal/adapters/storage/payment"
	trainerStore "gymtrack/internal/adapters/storage/trainer"
	workoutStore "gymtrack/internal/adapters/storage/workout"
	"gymtrack/internal/application/orchestrators"
	"gymtrack/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	db, err := storage.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// The MySQL schema is managed outside the application.
	if cfg.DBDriver == "sqlite" {
		if err := storage.InitDB(db); err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
	}
	slog.Info("database_ready", "driver", cfg.DBDriver, "name", cfg.DBName)

	exec := storage.NewExecutor(db)
	acctStore := accountStore.NewSQLStore(exec)
	stores := &web.Stores{
		AccountStore:    acctStore,
		MemberStore:     memberStore.NewSQLStore(exec),
		TrainerStore:    trainerStore.NewSQLStore(exec),
		PackageStore:    membershipStore.NewSQLStore(exec),
		WorkoutStore:    workoutStore.NewSQLStore(exec),
		PaymentStore:    paymentStore.NewSQLStore(exec),
		AttendanceStore: attendanceStore.NewSQLStore(exec),
		EquipmentStore:  equipmentStore.NewSQLStore(exec),
		NoticeStore:     noticeStore.NewSQLStore(exec),
	}

	// Seed the bootstrap admin account (idempotent)
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), cfg.AdminUser, cfg.AdminPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), cfg.EmailFrom, cfg.EmailReply)
		slog.Info("email_sender_ready", "provider", "resend")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.EmailFrom, cfg.EmailReply)
		if cfg.Env == "production" {
			slog.Warn("email_delivery_disabled", "reason", "GYMTRACK_RESEND_KEY not set")
		} else {
			slog.Info("email_sender_ready", "provider", "noop")
		}
	}

	handler := web.NewMux(*cfg, stores, exec)

	slog.Info("server_listening", "addr", cfg.Addr, "version", version)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

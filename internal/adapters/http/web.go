package web

import (
	"crypto/rand"
	"crypto/sha256"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gymtrack/internal/adapters/email"
	"gymtrack/internal/adapters/http/middleware"
	"gymtrack/internal/adapters/storage"
	accountStore "gymtrack/internal/adapters/storage/account"
	attendanceStore "gymtrack/internal/adapters/storage/attendance"
	equipmentStore "gymtrack/internal/adapters/storage/equipment"
	memberStore "gymtrack/internal/adapters/storage/member"
	membershipStore "gymtrack/internal/adapters/storage/membership"
	noticeStore "gymtrack/internal/adapters/storage/notice"
	paymentStore "gymtrack/internal/adapters/storage/payment"
	"gymtrack/internal/adapters/storage/provision"
	trainerStore "gymtrack/internal/adapters/storage/trainer"
	workoutStore "gymtrack/internal/adapters/storage/workout"
	"gymtrack/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore    accountStore.Store
	MemberStore     memberStore.Store
	TrainerStore    trainerStore.Store
	PackageStore    membershipStore.Store
	WorkoutStore    workoutStore.Store
	PaymentStore    paymentStore.Store
	AttendanceStore attendanceStore.Store
	EquipmentStore  equipmentStore.Store
	NoticeStore     noticeStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global executor for the admin console and reports (set by NewMux)
var executor *storage.Executor

// Global provisioner for the db-users screen (set by NewMux)
var provisioner *provision.Provisioner

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// csrfKeyFrom derives the 32-byte CSRF key from the configured secret.
// In development a missing secret falls back to a random per-start key.
func csrfKeyFrom(cfg config.Config) []byte {
	if cfg.SecretKey != "" {
		key := sha256.Sum256([]byte(cfg.SecretKey))
		return key[:]
	}
	if cfg.Env == "production" {
		log.Fatal("SECRET_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set SECRET_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Config, s *Stores, exec *storage.Executor) http.Handler {
	stores = s
	executor = exec
	provisioner = provision.NewProvisioner(exec, cfg.DBName)
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = cfg.Env == "production"

	mux := http.NewServeMux()
	registerRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, time.Second)
	trusted := []string{"localhost:8080", "127.0.0.1:8080"}

	// Apply middleware: Observe -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKeyFrom(cfg), trusted),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Observe,
	)
}

package storage

import (
	"database/sql"
	"fmt"
)

// Open opens the database for the given driver and DSN.
// The driver must be registered by the caller (blank import).
// POST: Returns a pinged connection pool
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitDB creates the development/test schema (sqlite dialect).
// The production MySQL schema, including stored routines and grants, is
// managed outside the application; only the triggers are replicated here
// so audit and tracker rows stay persistence-maintained everywhere.
// PRE: db is a valid sqlite connection
// POST: All tables and triggers exist
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS Trainer (
		TrainerId INTEGER PRIMARY KEY AUTOINCREMENT,
		TrainerName TEXT NOT NULL,
		Email TEXT,
		PhoneNo TEXT,
		Specialty TEXT
	);

	CREATE TABLE IF NOT EXISTS Package (
		PackageId INTEGER PRIMARY KEY AUTOINCREMENT,
		PackageName TEXT NOT NULL,
		Price REAL NOT NULL,
		DurationDays INTEGER NOT NULL DEFAULT 30
	);

	CREATE TABLE IF NOT EXISTS Member (
		MemberId INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Email TEXT,
		PhoneNo TEXT,
		Address TEXT,
		DoB TEXT,
		JoinDate TEXT,
		Gender TEXT,
		PackageId INTEGER REFERENCES Package(PackageId),
		TrainerId INTEGER REFERENCES Trainer(TrainerId)
	);

	CREATE TABLE IF NOT EXISTS WorkOutPlan (
		PlanId INTEGER PRIMARY KEY AUTOINCREMENT,
		Goal TEXT NOT NULL,
		DurationWeeks INTEGER NOT NULL,
		TrainerId INTEGER NOT NULL REFERENCES Trainer(TrainerId)
	);

	CREATE TABLE IF NOT EXISTS MemberPlan (
		MemberId INTEGER NOT NULL REFERENCES Member(MemberId) ON DELETE CASCADE,
		PlanId INTEGER NOT NULL REFERENCES WorkOutPlan(PlanId) ON DELETE CASCADE,
		EnrolledOn TEXT NOT NULL,
		PRIMARY KEY (MemberId, PlanId)
	);

	CREATE TABLE IF NOT EXISTS WorkOutTracker (
		TrackerId INTEGER PRIMARY KEY AUTOINCREMENT,
		MemberId INTEGER NOT NULL REFERENCES Member(MemberId) ON DELETE CASCADE,
		PlanId INTEGER NOT NULL REFERENCES WorkOutPlan(PlanId),
		Status TEXT NOT NULL DEFAULT 'Assigned'
	);

	CREATE TABLE IF NOT EXISTS Payment (
		PaymentId INTEGER PRIMARY KEY AUTOINCREMENT,
		MemberId INTEGER NOT NULL REFERENCES Member(MemberId) ON DELETE CASCADE,
		PackageId INTEGER NOT NULL REFERENCES Package(PackageId),
		Amount REAL NOT NULL,
		Mode TEXT NOT NULL,
		TimeStamp TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS Payment_Audit (
		AuditId INTEGER PRIMARY KEY AUTOINCREMENT,
		PaymentId INTEGER NOT NULL,
		MemberId INTEGER NOT NULL,
		Amount REAL NOT NULL,
		Action TEXT NOT NULL,
		LoggedAt TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS Attendance (
		AttendanceId INTEGER PRIMARY KEY AUTOINCREMENT,
		MemberId INTEGER NOT NULL REFERENCES Member(MemberId) ON DELETE CASCADE,
		Date TEXT NOT NULL,
		CheckIn TEXT NOT NULL,
		CheckOut TEXT
	);

	CREATE TABLE IF NOT EXISTS Account (
		AccountId INTEGER PRIMARY KEY AUTOINCREMENT,
		Username TEXT NOT NULL UNIQUE,
		PasswordHash TEXT NOT NULL,
		Role TEXT NOT NULL,
		LinkedId INTEGER NOT NULL DEFAULT 0,
		CreatedAt TEXT NOT NULL DEFAULT (datetime('now')),
		FailedLogins INTEGER NOT NULL DEFAULT 0,
		LockedUntil TEXT
	);

	CREATE TABLE IF NOT EXISTS Equipment (
		EquipmentId INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Category TEXT NOT NULL,
		Status TEXT NOT NULL DEFAULT 'Available'
	);

	CREATE TABLE IF NOT EXISTS Exercise (
		ExerciseId INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		MuscleGroup TEXT NOT NULL,
		EquipmentId INTEGER REFERENCES Equipment(EquipmentId)
	);

	CREATE TABLE IF NOT EXISTS Notice (
		NoticeId TEXT PRIMARY KEY,
		Title TEXT NOT NULL,
		Content TEXT NOT NULL,
		CreatedBy TEXT NOT NULL,
		Published INTEGER NOT NULL DEFAULT 0,
		CreatedAt TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// Audit rows are appended by the engine, never by handlers.
	trigger := `
	CREATE TRIGGER IF NOT EXISTS trg_payment_audit
	AFTER INSERT ON Payment
	BEGIN
		INSERT INTO Payment_Audit (PaymentId, MemberId, Amount, Action, LoggedAt)
		VALUES (NEW.PaymentId, NEW.MemberId, NEW.Amount, 'INSERT', datetime('now'));
	END;
	`
	if _, err := db.Exec(trigger); err != nil {
		return fmt.Errorf("create payment audit trigger: %w", err)
	}

	// Enrolling seeds the tracker in the same transaction, so a member is
	// never enrolled without an assigned progress row.
	tracker := `
	CREATE TRIGGER IF NOT EXISTS trg_enroll_tracker
	AFTER INSERT ON MemberPlan
	BEGIN
		INSERT INTO WorkOutTracker (MemberId, PlanId, Status)
		VALUES (NEW.MemberId, NEW.PlanId, 'Assigned');
	END;
	`
	if _, err := db.Exec(tracker); err != nil {
		return fmt.Errorf("create enrollment tracker trigger: %w", err)
	}

	return nil
}

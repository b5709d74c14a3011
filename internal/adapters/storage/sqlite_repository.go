package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tempo/internal/domain"
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// SQLiteRepository implements ports.WorkspaceRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.WorkspaceRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the tempo logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TEMPO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&ProjectModel{}, &SessionModel{}, &PomodoroConfigModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements WorkspaceReader.Load. Returns nil when the database holds
// no rows at all, matching the semantics of a missing JSON file.
func (r *SQLiteRepository) Load(ctx context.Context) (*ports.Snapshot, error) {
	var projects []ProjectModel
	var sessions []SessionModel
	var config PomodoroConfigModel
	var hasConfig bool

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("position ASC").Find(&projects).Error; err != nil {
				return fmt.Errorf("failed to load projects: %w", err)
			}
			if err := tx.Order("position ASC").Find(&sessions).Error; err != nil {
				return fmt.Errorf("failed to load sessions: %w", err)
			}

			err := tx.First(&config).Error
			if err == nil {
				hasConfig = true
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to load pomodoro config: %w", err)
			}
			return nil
		})
	}, 3)

	if err != nil {
		return nil, err
	}

	if len(projects) == 0 && len(sessions) == 0 && !hasConfig {
		return nil, nil
	}

	snapshot := &ports.Snapshot{
		Projects:          make([]domain.Project, len(projects)),
		Sessions:          make([]domain.Session, len(sessions)),
		PomodoroDurations: domain.DefaultPomodoroDurations(),
	}
	for i, p := range projects {
		snapshot.Projects[i] = projectModelToDomain(p)
	}
	for i, s := range sessions {
		snapshot.Sessions[i] = sessionModelToDomain(s)
	}
	if hasConfig {
		snapshot.PomodoroDurations = domain.PomodoroDurations{
			Work:       config.Work,
			ShortBreak: config.ShortBreak,
			LongBreak:  config.LongBreak,
		}
	}

	return snapshot, nil
}

// Save implements WorkspaceWriter.Save. Each set field replaces its table
// wholesale; positions are rewritten from slice order so insertion order
// survives round trips.
func (r *SQLiteRepository) Save(ctx context.Context, patch ports.Patch) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if patch.Projects != nil {
				if err := tx.Where("1 = 1").Delete(&ProjectModel{}).Error; err != nil {
					return fmt.Errorf("failed to clear projects: %w", err)
				}
				for i, p := range *patch.Projects {
					model := domainToProjectModel(p, i)
					if err := tx.Create(&model).Error; err != nil {
						return fmt.Errorf("failed to save project %s: %w", p.ID, err)
					}
				}
			}

			if patch.Sessions != nil {
				if err := tx.Where("1 = 1").Delete(&SessionModel{}).Error; err != nil {
					return fmt.Errorf("failed to clear sessions: %w", err)
				}
				for i, s := range *patch.Sessions {
					model := domainToSessionModel(s, i)
					if err := tx.Create(&model).Error; err != nil {
						return fmt.Errorf("failed to save session %s: %w", s.ID, err)
					}
				}
			}

			if patch.PomodoroDurations != nil {
				d := *patch.PomodoroDurations
				if err := tx.Save(&PomodoroConfigModel{
					ID:         1,
					Work:       d.Work,
					ShortBreak: d.ShortBreak,
					LongBreak:  d.LongBreak,
				}).Error; err != nil {
					return fmt.Errorf("failed to save pomodoro config: %w", err)
				}
			}

			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

package storage

import "time"

// ProjectModel is the GORM model for the projects table. Position preserves
// creation order across save/load cycles.
type ProjectModel struct {
	Color     string `gorm:"not null;default:''"`
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Position  int    `gorm:"not null;default:0;index:idx_project_position"`
	StartDate int64  `gorm:"not null;default:0"`
	TotalTime int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// SessionModel is the GORM model for the sessions table. Position preserves
// insertion order, which the accounting fold depends on.
type SessionModel struct {
	CreatedAt time.Time
	Direction string `gorm:"not null;default:'add';check:direction IN ('add','subtract')"`
	Duration  int64  `gorm:"not null;default:0"`
	EndTime   int64  `gorm:"not null;default:0"`
	ID        string `gorm:"primaryKey"`
	Position  int    `gorm:"not null;default:0;index:idx_session_position"`
	ProjectID string `gorm:"not null;index:idx_session_project"`
	Source    string `gorm:"not null;default:'timer';check:source IN ('timer','manual')"`
	StartTime int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// PomodoroConfigModel is the GORM model for the single-row pomodoro
// configuration
type PomodoroConfigModel struct {
	CreatedAt  time.Time
	ID         int `gorm:"primaryKey"`
	LongBreak  int `gorm:"not null;default:15"`
	ShortBreak int `gorm:"not null;default:5"`
	UpdatedAt  time.Time
	Work       int `gorm:"not null;default:25"`
}

// TableName specifies the table name for GORM
func (PomodoroConfigModel) TableName() string { return "pomodoro_config" }

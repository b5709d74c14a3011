package storage

import "tempo/internal/domain"

func projectModelToDomain(m ProjectModel) domain.Project {
	return domain.Project{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		TotalTime: m.TotalTime,
		StartDate: m.StartDate,
	}
}

func domainToProjectModel(p domain.Project, position int) ProjectModel {
	return ProjectModel{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		TotalTime: p.TotalTime,
		StartDate: p.StartDate,
		Position:  position,
	}
}

func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  m.Duration,
		Source:    domain.Source(m.Source),
		Direction: domain.Direction(m.Direction),
	}
}

func domainToSessionModel(s domain.Session, position int) SessionModel {
	s = s.Normalized() // column checks require concrete source and direction
	return SessionModel{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Duration:  s.Duration,
		Source:    string(s.Source),
		Direction: string(s.Direction),
		Position:  position,
	}
}

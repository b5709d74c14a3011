package domain

import (
	"math"
	"sort"
	"time"
)

// Millisecond spans used for bucket arithmetic. Day and week boundaries are
// derived from local-time week starts, then buckets are indexed with raw
// millisecond offsets from that start.
const (
	msPerDay  = int64(24 * 60 * 60 * 1000)
	msPerWeek = 7 * msPerDay
)

// WeekStart returns the epoch milliseconds of the Monday 00:00:00.000 (in
// loc) of the week containing ms.
func WeekStart(ms int64, loc *time.Location) int64 {
	t := time.UnixMilli(ms).In(loc)
	diff := int(t.Weekday()) - 1 // Monday as start
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -diff).UnixMilli()
}

// DailyBuckets folds one project's sessions into seven Monday..Sunday slots
// for the week starting at weekStart. Each slot accumulates signed durations
// and clamps to zero at every step, in the order sessions appear in the
// list: a subtract can only cancel time already folded into its slot.
func DailyBuckets(projectID string, sessions []Session, weekStart int64) [7]int64 {
	var days [7]int64
	for _, s := range sessions {
		if s.ProjectID != projectID || s.StartTime < weekStart {
			continue
		}
		idx := (s.StartTime - weekStart) / msPerDay
		if idx > 6 {
			continue
		}
		days[idx] = ApplyClamped(days[idx], s.SignedDuration())
	}
	return days
}

// WeekProjectTotal is one project's accumulated seconds within a week
type WeekProjectTotal struct {
	ProjectID string
	Name      string
	Color     string
	Seconds   int64
}

// Week is one entry of the weekly history
type Week struct {
	Start        int64            // epoch ms of the week's Monday
	TotalSeconds int64            // sum over all projects
	Totals       map[string]int64 // seconds per project id
	Top          []WeekProjectTotal
}

// ProjectSummary is one project's all-time accounting line
type ProjectSummary struct {
	Project      Project
	TotalSeconds int64
	SessionCount int   // contributing session records, independent of sign
	FirstTracked int64 // epoch ms, min of startDate and session timestamps
	AvgPerWeek   int64 // seconds, rounded
}

// Overview is the all-time dashboard: global week span, per-project
// summaries, and the workspace total.
type Overview struct {
	FirstWeekStart int64
	WeekCount      int64
	TotalTracked   int64 // includes sessions of deleted projects
	Projects       []ProjectSummary
}

// sessionTimestamp places a session on the timeline: start time when known,
// otherwise end time, otherwise now.
func sessionTimestamp(s Session, nowMs int64) int64 {
	if s.StartTime != 0 {
		return s.StartTime
	}
	if s.EndTime != 0 {
		return s.EndTime
	}
	return nowMs
}

// weekSpan computes the global week range: from the week of the first
// observed timestamp (project start dates and session timestamps) through
// the week containing now, inclusive.
func weekSpan(projects []Project, sessions []Session, now time.Time) (firstWeekStart, weekCount int64) {
	nowMs := now.UnixMilli()
	firstStart := nowMs
	for _, p := range projects {
		if p.StartDate < firstStart {
			firstStart = p.StartDate
		}
	}
	for _, s := range sessions {
		if ts := sessionTimestamp(s, nowMs); ts < firstStart {
			firstStart = ts
		}
	}

	loc := now.Location()
	firstWeekStart = WeekStart(firstStart, loc)
	currentWeekStart := WeekStart(nowMs, loc)
	weekCount = (currentWeekStart-firstWeekStart)/msPerWeek + 1
	return firstWeekStart, weekCount
}

// WeeklySummary partitions all sessions into week buckets and returns the
// weekly history from the first observed week through the current week,
// inclusive. Weeks with no activity still appear. Per-week totals use the
// incremental clamp in session insertion order; Top holds up to three
// projects ranked by seconds, ties broken by first-touch order.
func WeeklySummary(projects []Project, sessions []Session, now time.Time) []Week {
	loc := now.Location()
	nowMs := now.UnixMilli()
	firstWeekStart, weekCount := weekSpan(projects, sessions, now)

	type weekBucket struct {
		totals map[string]int64
		order  []string // project ids in first-touch order
	}
	buckets := make(map[int64]*weekBucket)

	for _, s := range sessions {
		ts := sessionTimestamp(s, nowMs)
		key := WeekStart(ts, loc)

		b := buckets[key]
		if b == nil {
			b = &weekBucket{totals: make(map[string]int64)}
			buckets[key] = b
		}
		if _, seen := b.totals[s.ProjectID]; !seen {
			b.order = append(b.order, s.ProjectID)
		}
		b.totals[s.ProjectID] = ApplyClamped(b.totals[s.ProjectID], s.SignedDuration())
	}

	weeks := make([]Week, 0, weekCount)
	for i := int64(0); i < weekCount; i++ {
		start := firstWeekStart + i*msPerWeek
		week := Week{Start: start, Totals: make(map[string]int64)}

		if b := buckets[start]; b != nil {
			week.Totals = b.totals
			for _, seconds := range b.totals {
				week.TotalSeconds += seconds
			}

			ranked := make([]string, len(b.order))
			copy(ranked, b.order)
			sort.SliceStable(ranked, func(i, j int) bool {
				return b.totals[ranked[i]] > b.totals[ranked[j]]
			})
			if len(ranked) > 3 {
				ranked = ranked[:3]
			}
			for _, id := range ranked {
				p := ResolveProject(projects, id)
				week.Top = append(week.Top, WeekProjectTotal{
					ProjectID: id,
					Name:      p.Name,
					Color:     p.Color,
					Seconds:   b.totals[id],
				})
			}
		}

		weeks = append(weeks, week)
	}

	return weeks
}

// Summarize computes the all-time overview. Totals fold the entire session
// history in insertion order with the incremental clamp. TotalTracked sums
// every fold target, including sessions whose project was deleted; the
// per-project list covers existing projects only, sorted by total seconds
// descending (stable).
func Summarize(projects []Project, sessions []Session, now time.Time) Overview {
	nowMs := now.UnixMilli()
	firstWeekStart, weekCount := weekSpan(projects, sessions, now)

	type accum struct {
		seconds int64
		count   int
		first   int64
	}
	totals := make(map[string]*accum, len(projects))
	for _, p := range projects {
		totals[p.ID] = &accum{first: p.StartDate}
	}

	for _, s := range sessions {
		ts := sessionTimestamp(s, nowMs)
		acc := totals[s.ProjectID]
		if acc == nil {
			acc = &accum{first: ts}
			totals[s.ProjectID] = acc
		}
		acc.seconds = ApplyClamped(acc.seconds, s.SignedDuration())
		acc.count++
		if ts < acc.first {
			acc.first = ts
		}
	}

	var totalTracked int64
	for _, acc := range totals {
		totalTracked += acc.seconds
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		acc := totals[p.ID]
		summaries = append(summaries, ProjectSummary{
			Project:      p,
			TotalSeconds: acc.seconds,
			SessionCount: acc.count,
			FirstTracked: acc.first,
			AvgPerWeek:   int64(math.Round(float64(acc.seconds) / float64(weekCount))),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSeconds > summaries[j].TotalSeconds
	})

	return Overview{
		FirstWeekStart: firstWeekStart,
		WeekCount:      weekCount,
		TotalTracked:   totalTracked,
		Projects:       summaries,
	}
}

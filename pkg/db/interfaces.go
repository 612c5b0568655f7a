package db

import "context"

// MemberStore defines the interface for member database operations
type MemberStore interface {
	GetMembers(ctx context.Context) ([]Member, error)
	UpsertMember(ctx context.Context, member *Member) (created bool, err error)
}

// ScheduleRunStore defines the interface for schedule run database operations
type ScheduleRunStore interface {
	InsertScheduleRun(run *ScheduleRun) error
}

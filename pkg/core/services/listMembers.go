package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/pkg/db"
)

// ListMembersStore defines the database operations needed for listing members
type ListMembersStore interface {
	GetMembers(ctx context.Context) ([]db.Member, error)
}

// ListMembers returns all member records sorted by name
func ListMembers(ctx context.Context, database ListMembersStore, logger *zap.Logger) ([]db.Member, error) {
	logger.Debug("Fetching members")
	members, err := database.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	logger.Debug("Found members", zap.Int("count", len(members)))
	return members, nil
}

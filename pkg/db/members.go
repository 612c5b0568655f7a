package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/kazuyat/siege-roster/pkg/sheetssql"
)

const memberTable = "member"

// GetMembers retrieves all member records, skipping rows with a blank name.
// Returns an error if two rows share the same name, since the name is the
// upsert key and duplicates would make updates ambiguous.
func (db *DB) GetMembers(ctx context.Context) ([]Member, error) {
	allMembers, err := sheetssql.GetTableAs[Member](db.ssql, memberTable)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	seen := make(map[string]bool, len(allMembers))
	members := make([]Member, 0, len(allMembers))
	for _, m := range allMembers {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate member name %q in member table", name)
		}
		seen[name] = true
		members = append(members, m)
	}

	return members, nil
}

// UpsertMember updates the row matching the member's name, or appends a
// new row when no match exists. Returns true when a new row was created.
func (db *DB) UpsertMember(ctx context.Context, member *Member) (bool, error) {
	if strings.TrimSpace(member.Name) == "" {
		return false, fmt.Errorf("member name must not be empty")
	}

	created, err := sheetssql.UpsertModelByKey(db.ssql, "name", member.Name, *member)
	if err != nil {
		return false, fmt.Errorf("failed to upsert member %s: %w", member.Name, err)
	}

	return created, nil
}

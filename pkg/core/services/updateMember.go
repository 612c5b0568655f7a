package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/pkg/core/model"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// UpdateMemberInput holds the fields of a member row to write
type UpdateMemberInput struct {
	Name          string
	Progress      string
	Power         string
	Answer        string
	SpecificDates []string
	Cap           int
}

// UpdateMemberResult reports the written record and whether it was new
type UpdateMemberResult struct {
	Member  db.Member
	Created bool
}

// UpdateMemberStore defines the database operations needed for updating a member
type UpdateMemberStore interface {
	UpsertMember(ctx context.Context, member *db.Member) (bool, error)
}

// UpdateMember writes a member row keyed by name, creating it when no row
// with that name exists, and stamps the update time
func UpdateMember(
	ctx context.Context,
	database UpdateMemberStore,
	logger *zap.Logger,
	input UpdateMemberInput,
) (*UpdateMemberResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("member name must not be empty")
	}

	if answer := model.NormalizeAnswer(input.Answer); answer == model.AnswerNoResponse && strings.TrimSpace(input.Answer) != "" {
		logger.Warn("Unrecognized answer text, member will be treated as unavailable",
			zap.String("name", name),
			zap.String("answer", input.Answer))
	}

	member := db.Member{
		Name:          name,
		Progress:      strings.TrimSpace(input.Progress),
		Power:         strings.TrimSpace(input.Power),
		Answer:        strings.TrimSpace(input.Answer),
		SpecificDates: strings.Join(input.SpecificDates, ","),
		Cap:           input.Cap,
		UpdatedAt:     time.Now().Format(timestampLayout),
	}

	created, err := database.UpsertMember(ctx, &member)
	if err != nil {
		return nil, fmt.Errorf("failed to save member %s: %w", name, err)
	}

	if created {
		logger.Info("Created member", zap.String("name", name))
	} else {
		logger.Info("Updated member", zap.String("name", name))
	}

	return &UpdateMemberResult{
		Member:  member,
		Created: created,
	}, nil
}

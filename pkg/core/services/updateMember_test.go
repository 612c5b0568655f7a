package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/pkg/db"
)

// mockMemberDB implements a test double for the member store
type mockMemberDB struct {
	members      []db.Member
	upserted     []*db.Member
	upsertExists bool
	upsertErr    error
	getErr       error
}

func (m *mockMemberDB) GetMembers(ctx context.Context) ([]db.Member, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.members, nil
}

func (m *mockMemberDB) UpsertMember(ctx context.Context, member *db.Member) (bool, error) {
	if m.upsertErr != nil {
		return false, m.upsertErr
	}
	m.upserted = append(m.upserted, member)
	return !m.upsertExists, nil
}

func TestUpdateMember_Create(t *testing.T) {
	mock := &mockMemberDB{}

	result, err := UpdateMember(context.Background(), mock, zap.NewNop(), UpdateMemberInput{
		Name:          "alpha",
		Progress:      "10-3",
		Power:         "120M",
		Answer:        "Specific dates",
		SpecificDates: []string{"2026-01-05", "2026-01-07"},
		Cap:           2,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Created)
	require.Len(t, mock.upserted, 1)

	saved := mock.upserted[0]
	assert.Equal(t, "alpha", saved.Name)
	assert.Equal(t, "10-3", saved.Progress)
	assert.Equal(t, "120M", saved.Power)
	assert.Equal(t, "Specific dates", saved.Answer)
	assert.Equal(t, "2026-01-05,2026-01-07", saved.SpecificDates)
	assert.Equal(t, 2, saved.Cap)

	_, err = time.Parse(timestampLayout, saved.UpdatedAt)
	assert.NoError(t, err)
}

func TestUpdateMember_Update(t *testing.T) {
	mock := &mockMemberDB{upsertExists: true}

	result, err := UpdateMember(context.Background(), mock, zap.NewNop(), UpdateMemberInput{
		Name:   "alpha",
		Answer: "Always available",
	})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "", result.Member.SpecificDates)
}

func TestUpdateMember_TrimsFields(t *testing.T) {
	mock := &mockMemberDB{}

	result, err := UpdateMember(context.Background(), mock, zap.NewNop(), UpdateMemberInput{
		Name:     "  alpha  ",
		Progress: " 10-3 ",
		Power:    " 120M ",
		Answer:   " Declined ",
	})
	require.NoError(t, err)

	assert.Equal(t, "alpha", result.Member.Name)
	assert.Equal(t, "10-3", result.Member.Progress)
	assert.Equal(t, "120M", result.Member.Power)
	assert.Equal(t, "Declined", result.Member.Answer)
}

func TestUpdateMember_EmptyName(t *testing.T) {
	mock := &mockMemberDB{}

	_, err := UpdateMember(context.Background(), mock, zap.NewNop(), UpdateMemberInput{
		Name: "   ",
	})
	assert.Error(t, err)
	assert.Empty(t, mock.upserted)
}

func TestUpdateMember_StoreError(t *testing.T) {
	mock := &mockMemberDB{upsertErr: errors.New("sheet unavailable")}

	_, err := UpdateMember(context.Background(), mock, zap.NewNop(), UpdateMemberInput{
		Name: "alpha",
	})
	assert.Error(t, err)
}

func TestListMembers(t *testing.T) {
	mock := &mockMemberDB{
		members: []db.Member{
			{Name: "gamma"},
			{Name: "alpha"},
			{Name: "beta"},
		},
	}

	members, err := ListMembers(context.Background(), mock, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, members, 3)
	assert.Equal(t, "alpha", members[0].Name)
	assert.Equal(t, "beta", members[1].Name)
	assert.Equal(t, "gamma", members[2].Name)
}

func TestListMembers_StoreError(t *testing.T) {
	mock := &mockMemberDB{getErr: errors.New("sheet unavailable")}

	_, err := ListMembers(context.Background(), mock, zap.NewNop())
	assert.Error(t, err)
}

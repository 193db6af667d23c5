package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/expensetracker/internal/models"
)

// AddMember inserts a member, ignoring the insert when the name is taken.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) (bool, error) {
	createdAt := time.Now().Unix()

	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO members (name, earning_status, earnings, created_at)
		 VALUES (?, ?, ?, ?)`,
		member.Name, member.EarningStatus, member.Earnings.String(), createdAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to read member id: %w", err)
	}
	member.ID = id
	member.CreatedAt = createdAt

	return true, nil
}

// UpdateMember overwrites earning status and earnings for the named member.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.Member) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE members SET earning_status = ?, earnings = ? WHERE name = ?",
		member.EarningStatus, member.Earnings.String(), member.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// DeleteMember removes a member by name. Expenses naming the member are kept.
func (s *SQLiteStore) DeleteMember(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// ListMembers retrieves all members ordered by name.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, earning_status, earnings, created_at
		 FROM members ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		member := &models.Member{}
		if err := rows.Scan(&member.ID, &member.Name, &member.EarningStatus,
			&member.Earnings, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dietprefs/dietprefs/internal/metrics"
	"github.com/dietprefs/dietprefs/internal/models"
)

// GetItem returns one item by id. Returns ErrNotFound on a miss.
func (db *DB) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	defer metrics.ObserveDBQuery("get_item", time.Now())

	sqlQuery := fmt.Sprintf("SELECT %s FROM items WHERE id = ?", itemColumns())
	stmt, err := db.getStatement(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	item, err := scanItem(stmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// VoteOnItem applies one vote atomically. An upvote increments both
// counters; a downvote increments total_votes only. The single UPDATE
// with RETURNING keeps concurrent votes from losing increments.
func (db *DB) VoteOnItem(ctx context.Context, itemID int64, voteType string) (*models.ItemVote, error) {
	defer metrics.ObserveDBQuery("vote_on_item", time.Now())

	if voteType != models.VoteUp && voteType != models.VoteDown {
		return nil, fmt.Errorf("invalid vote type %q", voteType)
	}

	upDelta := 0
	if voteType == models.VoteUp {
		upDelta = 1
	}

	var vote models.ItemVote
	err := db.conn.QueryRowContext(ctx,
		`UPDATE items
		 SET upvotes = upvotes + ?, total_votes = total_votes + 1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?
		 RETURNING id, upvotes, total_votes`,
		upDelta, itemID,
	).Scan(&vote.ItemID, &vote.Upvotes, &vote.TotalVotes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to vote on item %d: %w", itemID, err)
	}

	if vote.TotalVotes > 0 {
		pct := float64(vote.Upvotes) / float64(vote.TotalVotes) * 100
		vote.RatingPercentage = math.Round(pct*10) / 10
	}

	metrics.RecordVote(voteType)
	return &vote, nil
}

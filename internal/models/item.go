// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package models

import "time"

// AttributeSet is the fixed-size attribute vector of a menu item,
// indexed by Preference.
type AttributeSet [NumPreferences]bool

// Has reports whether the attribute is set. Out-of-range preferences
// report false.
func (a AttributeSet) Has(p Preference) bool {
	if p < 0 || p >= NumPreferences {
		return false
	}
	return a[p]
}

// Names returns the canonical names of all set attributes in
// declaration order.
func (a AttributeSet) Names() []string {
	var names []string
	for p := Preference(0); p < NumPreferences; p++ {
		if a[p] {
			names = append(names, p.String())
		}
	}
	return names
}

// Item is one menu item owned by a vendor.
type Item struct {
	ID         int64        `json:"id"`
	VendorID   int64        `json:"vendor_id"`
	Name       string       `json:"name"`
	Price      *float64     `json:"price,omitempty"` // dollars, nil when unpriced
	Attributes AttributeSet `json:"-"`
	Upvotes    int          `json:"upvotes"`
	TotalVotes int          `json:"total_votes"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Rating returns the item's standalone approval ratio in [0,1],
// 0 when the item has no votes yet.
func (i *Item) Rating() float64 {
	if i.TotalVotes <= 0 {
		return 0
	}
	r := float64(i.Upvotes) / float64(i.TotalVotes)
	if r > 1.0 {
		return 1.0
	}
	return r
}

// ItemVote is the result of applying a vote to an item.
type ItemVote struct {
	ItemID           int64   `json:"item_id"`
	Upvotes          int     `json:"upvotes"`
	TotalVotes       int     `json:"total_votes"`
	RatingPercentage float64 `json:"rating_percentage"` // 0-100, one decimal
}

// Vote directions accepted by the voting endpoint.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

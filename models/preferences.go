// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"time"
)

// Direction is a professional track the user wants content for.
type Direction string

const (
	DirectionBackend     Direction = "BACKEND"
	DirectionFrontend    Direction = "FRONTEND"
	DirectionMobile      Direction = "MOBILE"
	DirectionDevOps      Direction = "DEVOPS"
	DirectionDataScience Direction = "DATA_SCIENCE"
	DirectionQA          Direction = "QA"
)

var knownDirections = []Direction{
	DirectionBackend,
	DirectionFrontend,
	DirectionMobile,
	DirectionDevOps,
	DirectionDataScience,
	DirectionQA,
}

// ParseDirection validates an enum name read from storage or the wire.
func ParseDirection(name string) (Direction, error) {
	d := Direction(name)
	if !slices.Contains(knownDirections, d) {
		return "", fmt.Errorf("unknown direction %q", name)
	}
	return d, nil
}

// DeliveryFrequency defines how often article digests are delivered.
type DeliveryFrequency string

const (
	DeliveryDaily   DeliveryFrequency = "DAILY"
	DeliveryWeekly  DeliveryFrequency = "WEEKLY"
	DeliveryMonthly DeliveryFrequency = "MONTHLY"
)

// ParseDeliveryFrequency validates an enum name read from storage or the wire.
func ParseDeliveryFrequency(name string) (DeliveryFrequency, error) {
	switch f := DeliveryFrequency(name); f {
	case DeliveryDaily, DeliveryWeekly, DeliveryMonthly:
		return f, nil
	default:
		return "", fmt.Errorf("unknown delivery frequency %q", name)
	}
}

// UserPreferences holds the content and notification settings of a user.
// TechnologyIDs and Directions are sets: order carries no meaning.
type UserPreferences struct {
	UserID             int64             `json:"user_id"`
	TechnologyIDs      []int64           `json:"technology_ids"`
	Directions         []Direction       `json:"directions"`
	DeliveryFrequency  DeliveryFrequency `json:"delivery_frequency"`
	EmailNotifications bool              `json:"email_notifications"`
	PushNotifications  bool              `json:"push_notifications"`
	ArticlesPerDay     int               `json:"articles_per_day"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// Equal compares two preference values treating the id and direction
// collections as sets.
func (p UserPreferences) Equal(o UserPreferences) bool {
	return p.UserID == o.UserID &&
		p.DeliveryFrequency == o.DeliveryFrequency &&
		p.EmailNotifications == o.EmailNotifications &&
		p.PushNotifications == o.PushNotifications &&
		p.ArticlesPerDay == o.ArticlesPerDay &&
		p.UpdatedAt.Equal(o.UpdatedAt) &&
		slices.Equal(sortedSet(p.TechnologyIDs), sortedSet(o.TechnologyIDs)) &&
		slices.Equal(sortedSet(p.Directions), sortedSet(o.Directions))
}

func sortedSet[T int64 | Direction](in []T) []T {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

package domain

import (
	"fmt"
	"time"
)

// RewardType is the class of prize assigned by rank.
type RewardType string

const (
	// RewardTypeReal is a physical prize, issued to rank 1 only.
	RewardTypeReal RewardType = "real"
	// RewardTypeVirtual is an achievement badge for ranks 2-3.
	RewardTypeVirtual RewardType = "virtual"
	// RewardTypeBadge is the participation badge for everyone else.
	RewardTypeBadge RewardType = "badge"
)

// Reward description literals, matching what the ops team hands out.
const (
	FirstPlaceRewardDescription   = "1등 보상: 스타벅스 기프티콘 5만원권"
	ParticipationBadgeDescription = "레이드 참여 배지"
)

// TierBadgeDescription returns the achievement badge text for ranks 2-3.
func TierBadgeDescription(rank int) string {
	return fmt.Sprintf("%d등 달성 배지", rank)
}

// RaidReward is a single issuance record. Append-only; at most one reward
// row exists per (RaidID, RiderID), backed by a unique constraint so that
// reruns cannot double-issue.
type RaidReward struct {
	ID                int64
	RaidID            int64
	RiderID           string
	Rank              *int // nil for participation badges
	RewardType        RewardType
	RewardDescription string
	CreatedAt         time.Time
}

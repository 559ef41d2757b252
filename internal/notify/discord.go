// Package notify announces raid completions to the riders' Discord channel.
// Notification failures are logged and swallowed; a chat outage must never
// change a sync run's outcome.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baedalhero/RaidSync_Go/internal/domain"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
)

// Notifier announces completed raids.
type Notifier interface {
	AnnounceCompletion(ctx context.Context, raid domain.BossRaid, topRiders []domain.RaidRanking)
}

// NoopNotifier is used when no Discord credentials are configured.
type NoopNotifier struct{}

func (NoopNotifier) AnnounceCompletion(context.Context, domain.BossRaid, []domain.RaidRanking) {}

type discordNotifier struct {
	session   *discordgo.Session
	channelID string
	titleCase cases.Caser
}

// NewDiscordNotifier creates a notifier posting to the given channel.
func NewDiscordNotifier(token, channelID string) (Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &discordNotifier{
		session:   session,
		channelID: channelID,
		titleCase: cases.Title(language.English),
	}, nil
}

// AnnounceCompletion posts the boss-down message with the top three riders.
func (n *discordNotifier) AnnounceCompletion(ctx context.Context, raid domain.BossRaid, topRiders []domain.RaidRanking) {
	log := logger.FromContext(ctx).With("raidID", raid.ID, "district", raid.District)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s 보스 레이드 클리어!", raid.District),
		Description: fmt.Sprintf("%s (%s) 처치 완료",
			raid.BossName, n.titleCase.String(string(raid.BossType))),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "TOP 3",
				Value: formatTopRiders(topRiders),
			},
		},
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		log.Error("Failed to send raid completion announcement", "error", err)
		return
	}
	log.Info("Raid completion announced")
}

func formatTopRiders(topRiders []domain.RaidRanking) string {
	if len(topRiders) == 0 {
		return "-"
	}

	lines := make([]string, 0, len(topRiders))
	for _, r := range topRiders {
		lines = append(lines, fmt.Sprintf("%d. %s (%d)", r.Rank, domain.MaskRiderID(r.RiderID), r.TotalDamage))
	}
	return strings.Join(lines, "\n")
}

package services

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/dto"
	"github.com/kamarini09/ctf-app/models"
)

const leaderboardCacheKey = "leaderboard:v1"
const leaderboardCacheTTL = 10 * time.Second

// ComputeLeaderboard builds the full standings from the live tables:
// every team appears (zero solves included), score is the sum of
// points over the team's solved challenges, members carry display
// names only. Sorted by descending score; ties keep consecutive
// positions.
func ComputeLeaderboard() ([]dto.LeaderboardEntryResp, error) {
	var teams []models.Team
	if err := database.DB.Find(&teams).Error; err != nil {
		return nil, err
	}

	var profiles []models.Profile
	if err := database.DB.Where("team_id IS NOT NULL").Find(&profiles).Error; err != nil {
		return nil, err
	}

	var solves []struct {
		TeamID string
		Points uint
	}
	err := database.DB.
		Table(models.Submission{}.TableName()+" AS s").
		Select("s.team_id AS team_id, c.points AS points").
		Joins("JOIN " + models.Challenge{}.TableName() + " c ON c.id = s.challenge_id").
		Scan(&solves).Error
	if err != nil {
		return nil, err
	}

	scores := make(map[string]uint, len(teams))
	for _, s := range solves {
		scores[s.TeamID] += s.Points
	}

	membersByTeam := make(map[string][]dto.MemberResp)
	for _, p := range profiles {
		name := p.DisplayName
		if name == "" {
			name = "Unnamed"
		}
		membersByTeam[*p.TeamID] = append(membersByTeam[*p.TeamID], dto.MemberResp{
			ID:          p.ID,
			DisplayName: name,
		})
	}

	out := make([]dto.LeaderboardEntryResp, 0, len(teams))
	for _, t := range teams {
		members := membersByTeam[t.ID]
		sort.Slice(members, func(i, j int) bool {
			return members[i].DisplayName < members[j].DisplayName
		})
		if members == nil {
			members = []dto.MemberResp{}
		}
		out = append(out, dto.LeaderboardEntryResp{
			ID:      t.ID,
			Name:    t.Name,
			Score:   scores[t.ID],
			Members: members,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}

// MaxScore sums points over active challenges, floored at 1 so
// progress-bar callers never divide by zero.
func MaxScore() (uint, error) {
	var total int64
	err := database.DB.
		Model(&models.Challenge{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total < 1 {
		return 1, nil
	}
	return uint(total), nil
}

// CachedLeaderboard returns the cached standings if Redis is
// configured and holds a fresh copy, else nil. The scoring path never
// reads this cache; staleness here only delays the public board.
func CachedLeaderboard() []dto.LeaderboardEntryResp {
	if database.RDB == nil {
		return nil
	}
	val, err := database.RDB.Get(database.Ctx, leaderboardCacheKey).Result()
	if err != nil {
		return nil
	}
	var entries []dto.LeaderboardEntryResp
	if json.Unmarshal([]byte(val), &entries) != nil {
		return nil
	}
	return entries
}

func CacheLeaderboard(entries []dto.LeaderboardEntryResp) {
	if database.RDB == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	database.RDB.Set(database.Ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
}

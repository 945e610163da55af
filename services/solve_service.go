// file: services/solve_service.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"FlagCore/database"
	"FlagCore/models"
)

const solveBoardKey = "solves:board"

// SolveBoardEntry aggregates the counted solves for one scoring unit:
// a team, or a single user when the user has no team.
type SolveBoardEntry struct {
	TID    string `gorm:"column:tid" json:"tid,omitempty"`
	UID    string `json:"uid,omitempty"`
	Solves int64  `json:"solves"`
}

// SolveBoard returns solve counts ordered by count desc, earliest last
// solve first on ties. Results are cached in redis when available.
func SolveBoard() ([]SolveBoardEntry, error) {
	if database.RDB != nil {
		cached, err := database.RDB.Get(database.Ctx, solveBoardKey).Result()
		if err == nil {
			var entries []SolveBoardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	var entries []SolveBoardEntry
	err := database.DB.Model(&models.Submission{}).
		Select("COALESCE(teams.tid, '') AS tid, CASE WHEN teams.tid IS NULL THEN submissions.uid ELSE '' END AS uid, COUNT(*) AS solves").
		Joins("LEFT JOIN teams ON teams.uid = submissions.uid").
		Group("COALESCE(teams.tid, ''), CASE WHEN teams.tid IS NULL THEN submissions.uid ELSE '' END").
		Order("solves desc, MAX(submissions.ts) asc").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	if database.RDB != nil {
		if buf, err := json.Marshal(entries); err == nil {
			database.RDB.Set(database.Ctx, solveBoardKey, buf, time.Minute)
		}
	}
	return entries, nil
}

// InvalidateSolveBoard drops the cached board after a counted solve.
func InvalidateSolveBoard() {
	if database.RDB == nil {
		return
	}
	if err := database.RDB.Del(database.Ctx, solveBoardKey).Err(); err != nil {
		log.Printf("Failed to invalidate solve board cache: %v", err)
	}
}

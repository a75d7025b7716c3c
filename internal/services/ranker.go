package services

// Top returns the best entry of a non-empty ranking produced by RankAll.
func Top(ranked []RoleScore) (string, float64) {
	if len(ranked) == 0 {
		return "", 0
	}
	return ranked[0].Role, ranked[0].Score
}

// TopN returns the first n entries of a ranking, or fewer when the ranking is
// shorter.
func TopN(ranked []RoleScore, n int) []RoleScore {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// ScoreFor returns the score of role within ranked, or ok=false when absent.
func ScoreFor(ranked []RoleScore, role string) (float64, bool) {
	for _, entry := range ranked {
		if entry.Role == role {
			return entry.Score, true
		}
	}
	return 0, false
}

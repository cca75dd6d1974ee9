package storage

// ScoreBook records scores for one game. It satisfies runner.ScoreRecorder.
type ScoreBook struct {
	store  *Store
	gameID string
}

// NewScoreBook binds a store to a game ID.
func NewScoreBook(store *Store, gameID string) *ScoreBook {
	return &ScoreBook{store: store, gameID: gameID}
}

// GameID returns the bound game.
func (b *ScoreBook) GameID() string {
	return b.gameID
}

// RecordScore saves a finished run.
func (b *ScoreBook) RecordScore(score int) error {
	_, err := b.store.SaveScore(b.gameID, score)
	return err
}

// HighScore returns the best saved score.
func (b *ScoreBook) HighScore() (int, error) {
	return b.store.HighScore(b.gameID)
}

// Top returns the leaderboard.
func (b *ScoreBook) Top(limit int) ([]ScoreEntry, error) {
	return b.store.TopScores(b.gameID, limit)
}

// Rank returns the leaderboard position for score.
func (b *ScoreBook) Rank(score int) (int, error) {
	return b.store.Rank(b.gameID, score)
}

// Stats returns aggregated statistics.
func (b *ScoreBook) Stats() (*GameStats, error) {
	return b.store.GameStats(b.gameID)
}

// Clear deletes every saved score.
func (b *ScoreBook) Clear() (int64, error) {
	return b.store.ClearScores(b.gameID)
}

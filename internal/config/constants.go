package config

// File names inside the data directory
const (
	// StateFilename is the versioned JSON state document
	StateFilename = "studygarden_state.json"

	// AnalyticsFilename is the SQLite review log
	AnalyticsFilename = "studygarden_reviews.db"
)

package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked / hidden singles
	StrategyPairs                        // naked/hidden pairs
	StrategyAdvanced                     // pointing/claiming, triples, etc.
	StrategyXWing                        // advanced fish (placeholder for cap)
)

package models

// Transaction is a transfer event published to Kafka.
type Transaction struct {
	TransactionID  string  `json:"transaction_id"`  // Unique transfer id
	Timestamp      int64   `json:"timestamp"`       // Unix seconds
	GameID         string  `json:"game_id"`         // Target game
	Amount         float64 `json:"amount"`          // Wallet units moved
	ConvertedUnits int64   `json:"converted_units"` // Game units received
	Operation      string  `json:"operation"`       // Always "transfer"
}

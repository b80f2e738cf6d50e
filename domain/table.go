package domain

// Table is a mongo collection name
type Table string

const (
	TableItems    Table = "items"
	TableEscrows  Table = "escrows"
	TablePayouts  Table = "payouts"
	TableCounters Table = "counters"
)

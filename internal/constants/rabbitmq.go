package constants

import "time"

// Обменник событий по объявлениям
const (
	DefaultListingsExchange = "listings.events"
	ListingsExchangeType    = "topic"
	ListingEventVersion     = "1.0.0"
)

// Заголовки сообщений
const (
	HeaderTraceID      = "x-trace-id"
	HeaderEventVersion = "x-event-version"
)

const PublishTimeout = 10 * time.Second

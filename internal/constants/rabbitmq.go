package constants

// Обменник событий изменения коллекции.
const (
	RecordEventsExchange     = "record_events"
	RecordEventsExchangeType = "direct"
)

// Ключи маршрутизации
const (
	RoutingKeyRecordChanged = "records.changed"
)

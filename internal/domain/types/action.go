package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionDatasetRefresh            = "dataset_refresh"
	ActionExternalServiceFailed     = "external_service_failed"
	ActionDatabaseTransactionFailed = "database_transaction_failed"
)

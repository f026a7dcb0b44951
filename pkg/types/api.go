package types

// PublishRequest is the body of POST /publish.
type PublishRequest struct {
	// Topic to publish on. Case-sensitive.
	// example: MOSTRAR_NOTIFICACION_EXITO
	Topic string `json:"topic" example:"MOSTRAR_NOTIFICACION_EXITO"`
	// Opaque string fields handed to every listener.
	// example: {"mensaje":"¡Hola mundo!"}
	Payload map[string]string `json:"payload,omitempty"`
}

// PublishResponse reports the outcome of POST /publish.
type PublishResponse struct {
	// Topic that was published.
	// example: MOSTRAR_NOTIFICACION_EXITO
	Topic string `json:"topic" example:"MOSTRAR_NOTIFICACION_EXITO"`
	// Number of listeners invoked by this publish.
	// example: 1
	Listeners int `json:"listeners" example:"1"`
}

// TopicStatus summarizes one topic for GET /topics.
type TopicStatus struct {
	// example: MOSTRAR_NOTIFICACION_ERROR
	Topic string `json:"topic" example:"MOSTRAR_NOTIFICACION_ERROR"`
	// Live listeners registered on the topic.
	// example: 2
	Listeners int `json:"listeners" example:"2"`
}

// TopicsResponse wraps the list returned by GET /topics.
type TopicsResponse struct {
	Topics []TopicStatus `json:"topics"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

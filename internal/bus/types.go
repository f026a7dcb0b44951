package bus

// Topic names a delivery group. Topics are case-sensitive and open-ended.
type Topic string

// Reserved topic names used by notification producers and the log sink.
// The bus gives them no special treatment.
const (
	TopicErrorNotification   Topic = "MOSTRAR_NOTIFICACION_ERROR"
	TopicSuccessNotification Topic = "MOSTRAR_NOTIFICACION_EXITO"
)

// Payload is the string-keyed bag delivered with a notification.
// The same map is handed to every listener of a Publish call; listeners
// must not modify it.
type Payload map[string]string

// Get returns the value stored under key, or "" if absent.
func (p Payload) Get(key string) string { return p[key] }

// Listener receives the payload of each notification on its topic.
type Listener func(Payload)

// TopicInfo reports the number of live listeners on a topic.
type TopicInfo struct {
	Topic     Topic
	Listeners int
}

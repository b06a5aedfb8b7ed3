package timeline

// EventType es abierto: el core lo trata como string opaco (filtros y texto).
type EventType string

const (
	EventTypeMedication  EventType = "medication"
	EventTypeAppointment EventType = "appointment"
	EventTypeLab         EventType = "lab"
	EventTypeDiagnosis   EventType = "diagnosis"
	EventTypeVoice       EventType = "voice"
)

// KnownTypes en el orden de los botones de filtro del timeline.
var KnownTypes = []EventType{
	EventTypeMedication,
	EventTypeAppointment,
	EventTypeLab,
	EventTypeDiagnosis,
	EventTypeVoice,
}

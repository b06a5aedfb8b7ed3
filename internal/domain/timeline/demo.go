package timeline

import "time"

// DemoEvents es el timeline de ejemplo de la página /demo.
func DemoEvents() []Event {
	end := NewDate(2024, time.March, 15)
	return []Event{
		{
			ID:          "evt-1",
			Type:        EventTypeMedication,
			Title:       "Lisinopril 10mg",
			Description: "Blood pressure medication",
			Date:        NewDate(2024, time.January, 5),
			EndDate:     &end,
		},
		{
			ID:          "evt-2",
			Type:        EventTypeAppointment,
			Title:       "Cardiology Checkup",
			Description: "Dr. Smith - Annual heart checkup",
			Date:        NewDate(2024, time.January, 15),
		},
		{
			ID:          "evt-3",
			Type:        EventTypeLab,
			Title:       "Blood Work",
			Description: "Cholesterol: 180 mg/dL, Blood Pressure: 120/80",
			Date:        NewDate(2024, time.February, 1),
		},
		{
			ID:          "evt-4",
			Type:        EventTypeDiagnosis,
			Title:       "Hypertension",
			Description: "Stage 1 - Monitor and medication prescribed",
			Date:        NewDate(2024, time.January, 5),
		},
		{
			ID:          "evt-5",
			Type:        EventTypeVoice,
			Title:       "Symptom Note",
			Description: "Feeling dizzy after morning medication",
			Date:        NewDate(2024, time.February, 10),
		},
		{
			ID:          "evt-6",
			Type:        EventTypeAppointment,
			Title:       "Follow-up Visit",
			Description: "Dr. Smith - Check medication effectiveness",
			Date:        NewDate(2024, time.February, 28),
		},
		{
			ID:          "evt-7",
			Type:        EventTypeLab,
			Title:       "Blood Pressure Check",
			Description: "115/75 - Improved",
			Date:        NewDate(2024, time.March, 10),
		},
	}
}

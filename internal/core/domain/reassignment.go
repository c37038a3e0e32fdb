package domain

// SlotRef - час и день недели слота, занятого событием
type SlotRef struct {
	Hour      int `json:"hour"`
	DayOfWeek int `json:"dayOfWeek"`
}

// ReassignmentResult - отчет координатора о переносе события.
// Флаги отражают фактическое состояние стора: частичный успех
// не маскируется, чтобы оператор знал, что нужно вмешаться.
type ReassignmentResult struct {
	Changed         bool `json:"changed"`
	NewSlotBlocked  bool `json:"newSlotBlocked"`
	OldSlotReleased bool `json:"oldSlotReleased"`
}

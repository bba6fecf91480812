package equipment

// Equipment status values.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusRetired     = "Retired"
)

// Equipment is a listed gym machine or accessory.
type Equipment struct {
	EquipmentID int
	Name        string
	Category    string
	Status      string
}

// Exercise is a catalogued movement, optionally tied to a piece of equipment.
type Exercise struct {
	ExerciseID  int
	Name        string
	MuscleGroup string
	EquipmentID int // 0 = bodyweight
}

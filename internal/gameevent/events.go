package gameevent

// BoostEvent is a global income boost that can go live at random or via a
// trigger item.
type BoostEvent struct {
	Name    string  `json:"name"`
	Boost   float64 `json:"boost"`
	Message string  `json:"message"`
}

// Events is the rotation pool. Random rolls draw from the enabled entries;
// the trigger-bound events can also fire when their item is acquired.
var Events = []BoostEvent{
	{Name: "Golden Hour", Boost: 25_000, Message: "Golden hour! Every tablet pays out more."},
	{Name: "Tablet Frenzy", Boost: 100_000, Message: "Tablet frenzy sweeps the city!"},
	{Name: "Fuse Luck Event", Boost: 10_000, Message: "The fusion chamber is glowing. Fuse now!"},
	{Name: "Strawberry Event", Boost: 250_000, Message: "A Strawberry Elephant stampede floods the streets!"},
	{Name: "Headless Event", Boost: 500_000, Message: "The Headless Horseman rides tonight!"},
	{Name: "La OP Event", Boost: 2_000_000, Message: "La OP energy saturates the grid!"},
}

// FuseLuckEventName gates the improved fusion odds.
const FuseLuckEventName = "Fuse Luck Event"

// acquisitionTriggers maps item display names to the event they set off.
var acquisitionTriggers = map[string]string{
	"Strawberry Elephant": "Strawberry Event",
	"Headless Horseman":   "Headless Event",
	"The OP Collection":   "La OP Event",
}

// FindEvent returns the boost event with the given name.
func FindEvent(name string) (BoostEvent, bool) {
	for _, e := range Events {
		if e.Name == name {
			return e, true
		}
	}
	return BoostEvent{}, false
}

const (
	// DefaultDurationMinutes is how long a boost runs unless an admin
	// changes it.
	DefaultDurationMinutes = 1

	// RollChance is the per-roll probability of an event going live.
	RollChance = 0.05

	// ChaosName labels the stacked admin boost.
	ChaosName = "ADMIN ABUSE"

	// ChaosDurationSeconds caps the stacked admin boost.
	ChaosDurationSeconds = 30
)

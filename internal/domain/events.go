package domain

// Event type names published on the bus and mirrored to SSE clients.
const (
	EventTypeLootGranted         = "loot.granted"
	EventTypeLootForfeited       = "loot.forfeited"
	EventTypeItemSold            = "item.sold"
	EventTypeItemBought          = "item.bought"
	EventTypeConversionStarted   = "conversion.started"
	EventTypeConversionCompleted = "conversion.completed"
	EventTypeBoostStarted        = "boost.started"
	EventTypeBoostEnded          = "boost.ended"
	EventTypeRebirthCompleted    = "rebirth.completed"
	EventTypeServerMessage       = "server.message"
)

// LootGrantedPayload describes an instance entering the inventory from any
// roll surface (block, showroom, wheel, admin spawn).
type LootGrantedPayload struct {
	InstanceID  string `json:"instance_id"`
	ArchetypeID string `json:"archetype_id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Mutation    string `json:"mutation,omitempty"`
	Source      string `json:"source"`
	Timestamp   int64  `json:"timestamp"`
}

// LootForfeitedPayload describes a rolled item lost because the inventory was
// full at claim time. The purchase cost stays spent.
type LootForfeitedPayload struct {
	ArchetypeID string `json:"archetype_id"`
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Source      string `json:"source"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemSoldPayload describes a sale back to the shop.
type ItemSoldPayload struct {
	InstanceID  string  `json:"instance_id"`
	ArchetypeID string  `json:"archetype_id"`
	Name        string  `json:"name"`
	MoneyGained float64 `json:"money_gained"`
	Timestamp   int64   `json:"timestamp"`
}

// ItemBoughtPayload describes a direct catalog purchase.
type ItemBoughtPayload struct {
	InstanceID  string  `json:"instance_id"`
	ArchetypeID string  `json:"archetype_id"`
	Name        string  `json:"name"`
	MoneySpent  float64 `json:"money_spent"`
	Timestamp   int64   `json:"timestamp"`
}

// ConversionStartedPayload describes ingredients being consumed by a
// conversion. The outcome already exists at this point; it is just not
// claimable until the timer runs out.
type ConversionStartedPayload struct {
	Kind        string   `json:"kind"`
	ConsumedIDs []string `json:"consumed_ids"`
	ReadyAtUnix int64    `json:"ready_at"`
	Timestamp   int64    `json:"timestamp"`
}

// ConversionCompletedPayload describes a conversion reward being granted.
type ConversionCompletedPayload struct {
	Kind        string `json:"kind"`
	InstanceID  string `json:"instance_id"`
	ArchetypeID string `json:"archetype_id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Skipped     bool   `json:"skipped"`
	Timestamp   int64  `json:"timestamp"`
}

// BoostStartedPayload describes an income boost event activating.
type BoostStartedPayload struct {
	Name      string  `json:"name"`
	Boost     float64 `json:"boost"`
	Message   string  `json:"message,omitempty"`
	EndsAt    int64   `json:"ends_at"`
	Timestamp int64   `json:"timestamp"`
}

// BoostEndedPayload describes an income boost event expiring.
type BoostEndedPayload struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// RebirthCompletedPayload describes a prestige reset.
type RebirthCompletedPayload struct {
	Tier       int     `json:"tier"`
	Multiplier float64 `json:"multiplier"`
	Timestamp  int64   `json:"timestamp"`
}

// ServerMessagePayload carries an admin broadcast to connected clients.
type ServerMessagePayload struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

package race

// EventType identifies something that happened during a race.
type EventType int

const (
	EventRaceStarted EventType = iota
	EventBoostStarted
	EventObstaclePassed
	EventPraised
	EventLapCompleted
	EventFinishApproaching
	EventCollision
	EventRaceFinished
	EventRaceWon
)

var eventNames = map[EventType]string{
	EventRaceStarted:       "raceStarted",
	EventBoostStarted:      "boostStarted",
	EventObstaclePassed:    "obstaclePassed",
	EventPraised:           "praised",
	EventLapCompleted:      "lapCompleted",
	EventFinishApproaching: "finishApproaching",
	EventCollision:         "collision",
	EventRaceFinished:      "raceFinished",
	EventRaceWon:           "raceWon",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the event ends a race.
func (t EventType) Terminal() bool {
	return t == EventCollision || t == EventRaceFinished
}

// Event is a notification for the presentation layer.
type Event struct {
	Type       EventType
	Tick       uint64
	Lap        int
	Points     int // score gained by this event
	Score      int // total score after this event
	Text       string
	ObstacleID uint64
}

// Handler reacts to an event.
type Handler func(Event)

// EventBus fans events out to subscribers. It is used from the frame loop only.
type EventBus struct {
	handlers map[EventType][]Handler
	all      []Handler
}

// NewEventBus creates a bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for one event type.
func (b *EventBus) Subscribe(t EventType, h Handler) {
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers a handler for every event.
func (b *EventBus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Emit delivers an event to its subscribers in registration order.
func (b *EventBus) Emit(e Event) {
	for _, h := range b.handlers[e.Type] {
		h(e)
	}
	for _, h := range b.all {
		h(e)
	}
}

// Dispatch emits a batch of events in order.
func (b *EventBus) Dispatch(events []Event) {
	for _, e := range events {
		b.Emit(e)
	}
}

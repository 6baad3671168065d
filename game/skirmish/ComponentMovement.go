package skirmish

type Movement struct {
	position    Position
	previous    Position
	destination *Position
	gradient    float64
}

func NewMovement(position Position) *Movement {
	return &Movement{
		position: position,
		previous: position,
	}
}

func (movement Movement) Position() Position { return movement.position }

func (movement Movement) PreviousPosition() Position { return movement.previous }

func (movement *Movement) SetPosition(position Position) {
	movement.previous = movement.position
	movement.position = position
}

func (movement Movement) Destination() (Position, bool) {
	if movement.destination == nil {
		return Position{}, false
	}
	return *movement.destination, true
}

func (movement *Movement) SetDestination(destination Position) {
	movement.destination = &destination
}

func (movement *Movement) ClearDestination() {
	movement.destination = nil
}

func (movement Movement) Gradient() float64 { return movement.gradient }

func (movement *Movement) SetGradient(gradient float64) { movement.gradient = gradient }

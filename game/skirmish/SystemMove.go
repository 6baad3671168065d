package skirmish

func systemMove(game *SkirmishGame) {

	for _, entityresult := range game.movingView.Get() {
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)
		if casualtyAspect.IsKilled() {
			continue
		}

		movementAspect := entityresult.Components[game.movementComponent].(*Movement)
		destination, moving := movementAspect.Destination()
		if !moving {
			continue
		}

		behavioursAspect := entityresult.Components[game.behavioursComponent].(*Behaviours)
		moveBehaviours := behavioursAspect.Pool().ExposeBehaviour("move", CategoryMove)
		if len(moveBehaviours) == 0 {
			continue
		}

		speed := 0.0
		for _, behaviour := range moveBehaviours {
			switch move := behaviour.(type) {
			case GroundMoveBehaviour:
				speed = move.SpeedOn(movementAspect.Gradient())
			case AircraftMoveBehaviour:
				speed = move.BaseSpeed
			}
		}

		if speed <= 0 {
			continue
		}

		distance := speed * game.timeStep.Seconds()
		movementAspect.SetPosition(movementAspect.Position().MoveTowards(destination, distance))

		if movementAspect.Position() == destination {
			movementAspect.ClearDestination()
		}
	}
}

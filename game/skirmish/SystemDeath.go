package skirmish

// systemDeath settles agents killed during the step: a casualty drops its
// current order and stops moving, but stays in the world as a killed
// perceivable object.
func systemDeath(game *SkirmishGame) {

	for _, entityresult := range game.agentsView.Get() {
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)
		if !casualtyAspect.IsKilled() {
			continue
		}

		movementAspect := entityresult.Components[game.movementComponent].(*Movement)
		movementAspect.ClearDestination()

		qr := game.getEntity(entityresult.Entity.GetID(), game.ordersComponent, game.armamentComponent)
		if qr == nil {
			continue
		}

		ordersAspect := qr.Components[game.ordersComponent].(*Orders)
		ordersAspect.SetCurrent(nil)

		armamentAspect := qr.Components[game.armamentComponent].(*Armament)
		armamentAspect.ClearFireRequest()
	}
}

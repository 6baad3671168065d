package skirmish

func systemFire(game *SkirmishGame) {

	for _, entityresult := range game.firingView.Get() {
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)
		if casualtyAspect.IsKilled() {
			continue
		}

		armamentAspect := entityresult.Components[game.armamentComponent].(*Armament)
		if !armamentAspect.FireRequested() {
			continue
		}
		armamentAspect.ClearFireRequest()

		sensingAspect := entityresult.Components[game.sensingComponent].(*Sensing)
		movementAspect := entityresult.Components[game.movementComponent].(*Movement)
		identityAspect := entityresult.Components[game.identityComponent].(*Identity)

		targets := armamentAspect.Resolver().Run(identityAspect, sensingAspect.Perceived().Snapshot())
		if len(targets) == 0 {
			continue
		}

		firer := movementAspect.Position()

		for _, weapon := range armamentAspect.Weapons() {
			if !armamentAspect.CanFire(weapon, game.modelTime) {
				continue
			}

			target, found := pickTarget(targets, firer, weapon.Radius)
			if !found {
				continue
			}

			armamentAspect.MarkFired(weapon, game.modelTime)
			game.recordShot(identityAspect.id, target.Location)

			if game.rng.Float64() < weapon.KillProbabilityPerRound {
				game.killAgent(target.UniqueId, identityAspect.id)
			}
		}
	}
}

// pickTarget takes the first still-alive target within weapon range, in
// resolver order.
func pickTarget(targets []PerceivedAgent, from Position, radius float64) (PerceivedAgent, bool) {
	for _, target := range targets {
		if target.CasualtyState != CasualtyStateAlive {
			continue
		}

		if target.Location.Dist(from) <= radius {
			return target, true
		}
	}

	return PerceivedAgent{}, false
}

func (game *SkirmishGame) killAgent(uid string, by string) {
	qr, found := game.entityByUid(uid)
	if !found {
		return
	}

	casualtyAspect := qr.Components[game.casualtyComponent].(*Casualty)
	casualtyAspect.Kill(game.modelTime, by)
}

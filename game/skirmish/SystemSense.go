package skirmish

func systemSense(game *SkirmishGame) {

	for _, entityresult := range game.sensingView.Get() {
		casualtyAspect := entityresult.Components[game.casualtyComponent].(*Casualty)
		if casualtyAspect.IsKilled() {
			continue
		}

		sensingAspect := entityresult.Components[game.sensingComponent].(*Sensing)
		behavioursAspect := entityresult.Components[game.behavioursComponent].(*Behaviours)
		movementAspect := entityresult.Components[game.movementComponent].(*Movement)
		identityAspect := entityresult.Components[game.identityComponent].(*Identity)

		senseBehaviours := behavioursAspect.Pool().ExposeBehaviour("sense", CategorySense)
		if len(senseBehaviours) == 0 {
			continue
		}

		due := false
		for _, behaviour := range senseBehaviours {
			if sensingAspect.DueAt(game.modelTime, game.startTime, behaviour.(SenseBehaviour)) {
				due = true
				break
			}
		}
		if !due {
			continue
		}

		observer := movementAspect.Position()
		snapshots := make([]PerceivedAgent, 0)

		for _, sensor := range sensingAspect.Sensors() {
			for _, uid := range game.spatial.Within(observer, sensor.DetectRadius) {
				if uid == identityAspect.id {
					continue
				}

				target, found := game.groundTruth(uid)
				if !found {
					continue
				}

				snapshot, inRange := sensor.Perceive(observer, target, game.modelTime)
				if inRange {
					snapshots = append(snapshots, snapshot)
				}
			}
		}

		sensingAspect.Perceived().Refresh(snapshots)
		sensingAspect.MarkSensed(game.modelTime)
	}
}

// groundTruth is what a perfect sensor would see of an agent; sensors
// degrade it by range.
func (game *SkirmishGame) groundTruth(uid string) (sensedTarget, bool) {
	qr, found := game.entityByUid(uid)
	if !found {
		return sensedTarget{}, false
	}

	identityAspect := qr.Components[game.identityComponent].(*Identity)
	movementAspect := qr.Components[game.movementComponent].(*Movement)
	casualtyAspect := qr.Components[game.casualtyComponent].(*Casualty)

	if identityAspect.IsHidden() && !casualtyAspect.IsKilled() {
		return sensedTarget{}, false
	}

	return sensedTarget{
		id:            identityAspect.id,
		position:      movementAspect.Position(),
		affiliation:   identityAspect.affiliation,
		casualtyState: casualtyAspect.State(),
	}, true
}

package skirmish

// systemCommunicate delivers the worldview shares queued by communicate
// tasks this step. A share is suppressed when the sender stands inside a
// hostile jamming field.
func systemCommunicate(game *SkirmishGame) {
	jams := game.jams
	game.jams = nil

	shares := game.worldviewShares
	game.worldviewShares = nil

	for _, senderUid := range shares {
		sender, found := game.entityByUid(senderUid)
		if !found {
			continue
		}

		senderIdentity := sender.Components[game.identityComponent].(*Identity)
		senderMovement := sender.Components[game.movementComponent].(*Movement)
		senderCasualty := sender.Components[game.casualtyComponent].(*Casualty)
		senderSensing := sender.Components[game.sensingComponent].(*Sensing)

		if senderCasualty.IsKilled() {
			continue
		}

		if jammed(jams, senderMovement.Position(), senderIdentity.affiliation) {
			continue
		}

		worldview := senderSensing.Perceived().Snapshot()

		for _, entityresult := range game.sensingView.Get() {
			receiverIdentity := entityresult.Components[game.identityComponent].(*Identity)
			if receiverIdentity.id == senderUid {
				continue
			}
			if receiverIdentity.affiliation != senderIdentity.affiliation {
				continue
			}

			receiverCasualty := entityresult.Components[game.casualtyComponent].(*Casualty)
			if receiverCasualty.IsKilled() {
				continue
			}

			receiverSensing := entityresult.Components[game.sensingComponent].(*Sensing)
			receiverSensing.Perceived().Refresh(worldview)
		}
	}
}

func jammed(jams []jamEvent, pos Position, affiliation Affiliation) bool {
	for _, jam := range jams {
		if jam.by == affiliation {
			continue
		}

		if jam.center.Dist(pos) <= jam.radius {
			return true
		}
	}

	return false
}

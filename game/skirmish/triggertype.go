package skirmish

// TriggerType is the closed enumeration of trigger kinds the factory can
// build. Adding a kind means adding a case to CreateTriggers.
type TriggerType int

const (
	TriggerTypeImmediate TriggerType = iota
	TriggerTypeImmediateSensorFusion
	TriggerTypeKilledAgentsAtPosition
	TriggerTypeAliveAgentsAtPosition
	TriggerTypeAgentAtPosition
	TriggerTypeAgentInArea
	TriggerTypeAgentNotInArea
	TriggerTypeAgentCrossedBoundary
	TriggerTypeAgentMovedOutOfArea
	TriggerTypeAgentKilled
	TriggerTypeTime
	TriggerTypeAgentFiredWeapon
	TriggerTypeWeaponFiredNearAgent
	TriggerTypeWeaponFiredNearLocation
	TriggerTypeCompoundAnd
)

var triggerTypeNames = map[TriggerType]string{
	TriggerTypeImmediate:               "IMMEDIATE",
	TriggerTypeImmediateSensorFusion:   "IMMEDIATE_SENSOR_FUSION",
	TriggerTypeKilledAgentsAtPosition:  "KILLED_AGENTS_AT_POSITION",
	TriggerTypeAliveAgentsAtPosition:   "ALIVE_AGENTS_AT_POSITION",
	TriggerTypeAgentAtPosition:         "AGENT_AT_POSITION",
	TriggerTypeAgentInArea:             "AGENT_IN_AREA",
	TriggerTypeAgentNotInArea:          "AGENT_NOT_IN_AREA",
	TriggerTypeAgentCrossedBoundary:    "AGENT_CROSSED_BOUNDARY",
	TriggerTypeAgentMovedOutOfArea:     "AGENT_MOVED_OUT_OF_AREA",
	TriggerTypeAgentKilled:             "AGENT_KILLED",
	TriggerTypeTime:                    "TIME",
	TriggerTypeAgentFiredWeapon:        "AGENT_FIRED_WEAPON",
	TriggerTypeWeaponFiredNearAgent:    "WEAPON_FIRED_NEAR_AGENT",
	TriggerTypeWeaponFiredNearLocation: "WEAPON_FIRED_NEAR_LOCATION",
	TriggerTypeCompoundAnd:             "COMPOUND_AND",
}

func (t TriggerType) String() string {
	if name, known := triggerTypeNames[t]; known {
		return name
	}
	return "UNKNOWN"
}

// ParseTriggerType resolves the wire name of a trigger type, as used in
// scenario files.
func ParseTriggerType(name string) (TriggerType, bool) {
	for ttype, known := range triggerTypeNames {
		if known == name {
			return ttype, true
		}
	}
	return 0, false
}

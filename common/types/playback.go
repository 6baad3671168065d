package types

// Playback wire format. One PlaybackFrame is recorded per model step; the
// scenario descriptor is recorded once as metadata. RetPlay consumes both.

type MapSize struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type ScenarioInfo struct {
	Name      string  `json:"name"`
	MapSize   MapSize `json:"map_size"`
	StartTime string  `json:"start_time"`
	TimeStep  string  `json:"time_step"`
	EndTime   string  `json:"end_time"`
}

type PlaybackAgent struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Class       string     `json:"class"`
	Affiliation string     `json:"affiliation"`
	Casualty    string     `json:"casualty_state"`
	Position    [2]float64 `json:"position"`
	Icon        string     `json:"icon"`
}

type PlaybackFrame struct {
	SimId      string          `json:"sim_id"`
	StepNumber int             `json:"step_number"`
	Time       string          `json:"time"`
	Agents     []PlaybackAgent `json:"agents"`
	Shots      [][2]float64    `json:"shots"`
}

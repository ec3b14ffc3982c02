package planning

// Plan is the structured decomposition requested from the language model.
type Plan struct {
	Plan      string `json:"plan"`
	TotalTime string `json:"total_time"`
	Tasks     []Task `json:"tasks"`
}

// Task is one generated step. Dependencies are declared by the model but
// pass through unused: ordering is fixed by the bulk append, not by the
// dependency graph.
type Task struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Checkpoint   string `json:"checkpoint"`
	Achievement  string `json:"achievement"`
	Time         string `json:"time"`
	Priority     string `json:"priority"`
	Dependencies []int  `json:"dependencies"`
}

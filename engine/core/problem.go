package core

import "net/http"

// Problem captures the information returned in an RFC 7807 error response.
// Extras land as top-level body keys unless they would shadow a canonical
// field.
type Problem struct {
	Type   string
	Title  string
	Status int
	Detail string
	Extras map[string]any
}

var reservedProblemKeys = map[string]struct{}{
	"status": {},
	"error":  {},
	"type":   {},
}

// NormalizeProblem fills in canonical defaults: a 500 status when unset,
// the standard status text as the title, and "about:blank" as the type.
func NormalizeProblem(problem *Problem) *Problem {
	if problem == nil {
		problem = &Problem{}
	}
	if problem.Status == 0 {
		problem.Status = http.StatusInternalServerError
	}
	if problem.Title == "" {
		problem.Title = http.StatusText(problem.Status)
	}
	if problem.Type == "" {
		problem.Type = "about:blank"
	}
	return problem
}

// BuildProblemBody flattens a normalized problem into its wire shape.
func BuildProblemBody(problem *Problem) map[string]any {
	body := map[string]any{
		"status": problem.Status,
		"error":  problem.Title,
		"type":   problem.Type,
	}
	if problem.Detail != "" {
		body["details"] = problem.Detail
	}
	for key, value := range problem.Extras {
		if _, reserved := reservedProblemKeys[key]; !reserved {
			body[key] = value
		}
	}
	return body
}

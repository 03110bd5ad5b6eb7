package api

import "investadvisor/pkg/advisor"

type recommendPayload struct {
	UserInput string `json:"userInput"`
}

type recommendResponse struct {
	Success bool                    `json:"success"`
	Data    *advisor.Recommendation `json:"data"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	AIEnabled bool   `json:"aiEnabled"`
}

type serverErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

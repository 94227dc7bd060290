package api

type Home struct {
	Version     string `json:"version"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

type Error struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

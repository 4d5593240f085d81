package handlers

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

type APIStateResponse struct {
	Status       string `json:"status"`
	Paused       bool   `json:"paused"`
	FeeBps       uint64 `json:"feeBps"`
	FeeRecipient string `json:"feeRecipient"`
}

type APISubmitResponse struct {
	Status     string `json:"status"`
	TransferId string `json:"transferId"`
	Endpoint   string `json:"endpoint"`
	RouteIndex int    `json:"routeIndex"`
	Fee        string `json:"fee"`
	NetAmount  string `json:"netAmount"`
}

type APIProcessedResponse struct {
	Status     string `json:"status"`
	TransferId string `json:"transferId"`
	Processed  bool   `json:"processed"`
}

type APIRouteResponse struct {
	Status string `json:"status"`
	Chain  uint64 `json:"chain"`
	Index  int    `json:"index"`
	Active bool   `json:"active"`
}

package http

type verifyReq struct {
	Passcode string `json:"passcode" binding:"required"`
}

type verifyResp struct {
	Access     string `json:"access"`
	StorageKey string `json:"storageKey"`
}

// deniedResp is the 401 body of a wrong passcode.
type deniedResp struct {
	Error        string `json:"error"`
	Attempts     int    `json:"attempts"`
	ShowWaitlist bool   `json:"showWaitlist"`
}

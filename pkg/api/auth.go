package api

type LoginRequest struct {
	Owner    string `json:"owner"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Owner     string `json:"owner"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type GetCurrentOwnerRequest struct{}

type GetCurrentOwnerResponse struct {
	Owner string `json:"owner"`
}

package response_models

type AccountLoginResponse struct {
	AccessToken string `json:"access_token"`
}

type AccountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

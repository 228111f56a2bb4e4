package domain

type CreateAccountRequest struct {
	Email      string   `json:"email" validate:"omitempty,email"`
	Phone      string   `json:"phone" validate:"omitempty,min=5,max=20"`
	Visible    bool     `json:"visible"`
	Lat        *float64 `json:"lat" validate:"omitempty,lat"`
	Lng        *float64 `json:"lng" validate:"omitempty,lng"`
	IsDemoUser bool     `json:"is_demo_user"`
	IsReviewer bool     `json:"is_reviewer"`
}

type UpdateAccountRequest struct {
	Email      *string  `json:"email" validate:"omitempty,email"`
	Phone      *string  `json:"phone" validate:"omitempty,min=5,max=20"`
	Visible    *bool    `json:"visible"`
	Lat        *float64 `json:"lat" validate:"omitempty,lat"`
	Lng        *float64 `json:"lng" validate:"omitempty,lng"`
	IsDemoUser *bool    `json:"is_demo_user"`
	IsReviewer *bool    `json:"is_reviewer"`
}

type ListAccountsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListAccountsResponse struct {
	Accounts []UserLocationRecord `json:"accounts"`
	Page     int                  `json:"page"`
	Limit    int                  `json:"limit"`
	Total    int64                `json:"total"`
}

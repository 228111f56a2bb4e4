package domain

type ReportLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,lat"`
	Lng *float64 `json:"lng" validate:"required,lng"`
}

type SetVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

type BlockContactRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

package dto

type WeekList struct {
	Weeks []string `json:"weeks"`
}

type WeekCreated struct {
	WeekStartDate string `json:"week_start_date"`
}

package navigate_month

// maxDelta больше ста лет в любую сторону листать незачем
const maxDelta = 1200

// NavigateMonthRequest HTTP request model
type NavigateMonthRequest struct {
	Delta int `json:"delta"`
}

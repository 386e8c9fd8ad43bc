package transport

import "github.com/sleepsound/storefront/internal/models"

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Total is a pointer so that an absent total can be told apart from 0;
// free orders are legal, missing totals are not.
type CreateOrderRequest struct {
	Branch        string             `json:"branch"`
	Items         []models.OrderItem `json:"items"`
	Customer      *models.Customer   `json:"customer"`
	Total         *float64           `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status   string  `json:"status"`
	Location *string `json:"location"`
}

type UpdateProductPriceRequest struct {
	Price *int `json:"price"`
}

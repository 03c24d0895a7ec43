package domain

import "github.com/shopspring/decimal"

// Category категория товара в каталоге
type Category string

const (
	CategorySweets   Category = "sweets"
	CategoryNamkeens Category = "namkeens"
	CategoryPickles  Category = "pickles"
	CategorySpecials Category = "specials"
)

// Valid сообщает, входит ли значение в фиксированный набор категорий
func (c Category) Valid() bool {
	switch c {
	case CategorySweets, CategoryNamkeens, CategoryPickles, CategorySpecials:
		return true
	}
	return false
}

// Size весовая фасовка товара
type Size string

const (
	Size250g Size = "250g"
	Size500g Size = "500g"
	Size1kg  Size = "1kg"
)

func (s Size) Valid() bool {
	switch s {
	case Size250g, Size500g, Size1kg:
		return true
	}
	return false
}

// User зарегистрированный покупатель. OTP хранится открытым текстом —
// это локальная симуляция входа, не реальное хранилище учётных данных.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// Product товар с тремя ценовыми фасовками. Цены сериализуются как
// десятичные строки. Rating и ReviewCount меняются только при добавлении отзыва.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price250g   decimal.Decimal `json:"price250g"`
	Price500g   decimal.Decimal `json:"price500g"`
	Price1kg    decimal.Decimal `json:"price1kg"`
	Featured    bool            `json:"featured"`
	Rating      string          `json:"rating"`
	ReviewCount int64           `json:"reviewCount"`
}

// CartItem позиция корзины. Не более одной строки на (user, product, size).
type CartItem struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	Size      Size  `json:"size"`
}

// CartLine строка корзины, объединённая с товаром
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

// Review отзыв о товаре. Никогда не обновляется и не удаляется.
type Review struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Rating    int64   `json:"rating"`
	Comment   string  `json:"comment"`
	ImageURL  *string `json:"imageUrl"`
}

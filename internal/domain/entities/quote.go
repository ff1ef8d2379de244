package entities

import "time"

// MediaType distinguishes photos from videos attached to a service order.
type MediaType string

const (
	MediaTypePhoto MediaType = "PHOTO"
	MediaTypeVideo MediaType = "VIDEO"
)

// Workshop is the issuer of the quote.
type Workshop struct {
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type Customer struct {
	Name string `json:"name"`
}

type Vehicle struct {
	Plate string  `json:"plate"`
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Year  *int    `json:"year,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Media is a file attached to the service order. URL is either a path
// relative to the media root or an absolute http(s)/s3 URL.
type Media struct {
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption *string   `json:"caption,omitempty"`
}

// LineItem is one row of the quote. Monetary values are in cents.
type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

func (i LineItem) LineTotal() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// QuoteRecord is the fully joined service order as the quote document sees it.
//
// Monetary representation:
//   - TotalAmount is stored in cents and is expected to equal the sum of the
//     line totals. It is displayed as-is and never recomputed.
type QuoteRecord struct {
	OrderID      string      `json:"order_id"`
	PublicToken  string      `json:"public_token"`
	Description  string      `json:"description"`
	Observations *string     `json:"observations,omitempty"`
	Status       OrderStatus `json:"status"`
	TotalAmount  int64       `json:"total_amount"`
	Items        []LineItem  `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	ExpiresAt    *time.Time  `json:"expires_at,omitempty"`
	Workshop     Workshop    `json:"workshop"`
	Customer     Customer    `json:"customer"`
	Vehicle      Vehicle     `json:"vehicle"`
	Media        []Media     `json:"media"`
}

// Photos returns the photo media in source order.
func (q QuoteRecord) Photos() []Media {
	var photos []Media
	for _, m := range q.Media {
		if m.Type == MediaTypePhoto {
			photos = append(photos, m)
		}
	}
	return photos
}

// ItemsTotal sums the line totals. It only exists to detect drift against
// TotalAmount.
func (q QuoteRecord) ItemsTotal() int64 {
	var total int64
	for _, it := range q.Items {
		total += it.LineTotal()
	}
	return total
}

// QuoteDocument is a rendered quote ready for delivery.
type QuoteDocument struct {
	Filename string
	Content  []byte
	Pages    int
}

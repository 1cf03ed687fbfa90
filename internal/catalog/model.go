package catalog

import "time"

type Book struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Level  *string `json:"level,omitempty"`
	Price  int64   `json:"price"`
	PdfURL string  `json:"pdfUrl"`
}

type Purchase struct {
	ID        int64
	BookID    int64
	Title     string
	Price     int64
	CreatedAt time.Time
}

type AddBookInput struct {
	Title  string `json:"title"`
	Level  string `json:"level"`
	Price  int64  `json:"price"`
	PdfURL string `json:"pdfUrl"`
}

type CheckoutItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

type CheckoutInput struct {
	Items []CheckoutItem `json:"items"`
}

package model

// Address is a structured shipping address captured at checkout.
type Address struct {
	Name  string
	Email string
	Phone string
	Line1 string
	Line2 string
	City  string
	State string
	Zip   string
}

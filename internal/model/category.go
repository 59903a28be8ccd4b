package model

// Categories is the closed set of product categories, in display order.
var Categories = []string{
	"Brooch Tudung - Kecil",
	"Brooch Tudung - Sederhana",
	"Brooch Tudung - Besar",
	"Gelang Tangan",
	"Keychain Nama",
	"Cincin",
	"Cincin Tudung",
	"Keychain Bentuk",
	"Tasbih",
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

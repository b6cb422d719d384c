package domain

// TokenRecord es un token ya emitido para el merchant, tal como lo devuelve
// la API. Inmutable una vez construido; los campos ausentes en la respuesta
// quedan en su zero value.
type TokenRecord struct {
	ID                 string
	Address            string // dirección on-chain del token
	Name               string
	Symbol             string
	TotalSupply        uint64
	StartingAppSupply  uint64
	RemainingAppSupply uint64
	MerchantSupply     uint64
	MerchantAddress    string
	Price              float64
}

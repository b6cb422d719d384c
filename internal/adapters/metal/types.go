package metal

// DTOs raw de la API de Metal. Solo se usan dentro de este paquete.
// La conversión a domain entities se hace en mapping.go.

// tokenEntry es un elemento del array de GET /merchant/all-tokens.
// Los punteros distinguen "campo ausente" de "zero value" para el
// decode defensivo de mapping.go.
type tokenEntry struct {
	ID                 string   `json:"id"`
	Address            string   `json:"address"`
	Name               string   `json:"name"`
	Symbol             string   `json:"symbol"`
	TotalSupply        *uint64  `json:"totalSupply"`
	StartingAppSupply  *uint64  `json:"startingAppSupply"`
	RemainingAppSupply *uint64  `json:"remainingAppSupply"`
	MerchantSupply     *uint64  `json:"merchantSupply"`
	MerchantAddress    string   `json:"merchantAddress"`
	Price              *float64 `json:"price"`
}

// createTokenRequest es el body de POST /merchant/create-token.
// canDistribute y canLP van siempre en true: sin distribución no hay
// supply de app, y sin LP el batch de liquidez no tendría qué hacer.
type createTokenRequest struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	MerchantAddress string `json:"merchantAddress"`
	CanDistribute   bool   `json:"canDistribute"`
	CanLP           bool   `json:"canLP"`
}

// createTokenResponse trae el handle del job encolado.
type createTokenResponse struct {
	JobID string `json:"jobId"`
}

// liquidityResponse es la respuesta de POST /token/{addr}/liquidity.
// Puntero: un body sin flag explícito no cuenta como éxito.
type liquidityResponse struct {
	Success *bool `json:"success"`
}

// jobStatusResponse es la respuesta del poll de status.
type jobStatusResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    jobStatusData `json:"data"`
}

// jobStatusData son los campos resueltos que acompañan al status success.
type jobStatusData struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

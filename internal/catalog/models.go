package catalog

type Game struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Image             string `json:"image"`
	Description       string `json:"description"`
	AccountsAvailable int    `json:"accountsAvailable"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

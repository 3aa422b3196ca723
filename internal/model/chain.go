package model

// NativeCurrency describes the chain's gas token
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// Chain is the descriptor passed to wallet_addEthereumChain
type Chain struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
}

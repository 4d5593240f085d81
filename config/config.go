package config

type Configuration struct {
	// Server config
	Server struct {
		UseSSL    bool   `yaml:"ssl"`
		Port      int    `yaml:"port"`
		RedisPort int    `yaml:"redis_port"`
		RedisHost string `yaml:"redis_host"`
	} `yaml:"server"`
	// Router config
	Router struct {
		// custody account the router moves funds through
		Address string `yaml:"address"`
		// capability holder for administrative operations
		Owner        string `yaml:"owner"`
		FeeRecipient string `yaml:"fee_recipient"`
		FeeBps       uint64 `yaml:"fee_bps"`
	} `yaml:"router"`
	// bridge endpoint address (hex) -> JSON-RPC URL list for dispatch notices
	Endpoints map[string][]string `yaml:"endpoints"`
	// token addresses (hex) served by in-process custody ledgers
	Tokens []string `yaml:"tokens"`
}

var Config Configuration

// protocol fee ceiling, basis points (1%)
const MAX_FEE_BPS = 100

// maximum number of endpoint RPC retries
const RPC_RETRIES = 3

// destination chain display data
type ChainConfig struct {
	Name    string
	ChainID uint64
}

var KnownChains = map[uint64]ChainConfig{
	1: {
		Name:    "Eth",
		ChainID: 1,
	}, // Ethereum
	10: {
		Name:    "Optimism",
		ChainID: 10,
	}, // Optimism
	56: {
		Name:    "BNB",
		ChainID: 56,
	}, // BNB
	42161: {
		Name:    "Arbitrum",
		ChainID: 42161,
	}, // Arbitrum
}

var RedisStatusSets = map[string]string{
	"completed": "routerops:completed", // transfer dispatched to a bridge endpoint
	"rejected":  "routerops:rejected",  // a pipeline guard aborted the transfer
}

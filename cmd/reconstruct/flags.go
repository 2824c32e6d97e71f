package reconstruct

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/izouxv/hashira/config"
)

const (
	InputKey         = "input"
	WorkersKey       = "workers"
	JSONKey          = "json"
	ExpectPubKeyKey  = "expect-pubkey"
	ExpectAddressKey = "expect-address"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.StringP(InputKey, "i", "-", "Share record to read, - for stdin")
	flags.IntP(WorkersKey, "w", runtime.GOMAXPROCS(0), "Subsets to interpolate concurrently")
	flags.Bool(JSONKey, false, "Print a JSON report instead of the bare secret")
	flags.String(ExpectPubKeyKey, "", "Fail unless the secret is the private key of this hex secp256k1 public key")
	flags.String(ExpectAddressKey, "", "Fail unless the secret is the private key of this Ethereum address")
	config.AddLogFlags(flags)
}

type Config struct {
	Input         string
	Workers       int
	JSON          bool
	ExpectPubKey  string
	ExpectAddress string
	Logger        zerolog.Logger
}

package split

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/izouxv/hashira/bignum"
	"github.com/izouxv/hashira/config"
)

const (
	SecretKey    = "secret"
	SharesKey    = "n"
	ThresholdKey = "k"
	BaseKey      = "base"
	CoeffBitsKey = "coeff-bits"
)

var (
	errMissingSecret  = errors.New("--secret is required")
	errNegativeSecret = errors.New("secret must be non-negative")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(SecretKey, "", "Decimal secret to split")
	flags.Int(SharesKey, 5, "Number of shares to produce")
	flags.Int(ThresholdKey, 3, "Shares required to recover the secret")
	flags.Int(BaseKey, 10, "Radix (2-36) to write share values in")
	flags.Uint(CoeffBitsKey, 64, "Bit length bound of the random polynomial coefficients")
	config.AddLogFlags(flags)
}

type Config struct {
	Secret    bignum.Int
	N         int
	K         int
	Base      int
	CoeffBits uint
	Logger    zerolog.Logger
}

func ParseFlags(flags *pflag.FlagSet, errOut io.Writer) (*Config, error) {
	v, err := config.NewViper(flags)
	if err != nil {
		return nil, err
	}
	logger, err := config.Logger(v, errOut)
	if err != nil {
		return nil, err
	}

	secretStr := v.GetString(SecretKey)
	if secretStr == "" {
		return nil, errMissingSecret
	}
	secret, err := bignum.Parse(secretStr)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", SecretKey, err)
	}
	if secret.Sign() < 0 {
		return nil, errNegativeSecret
	}

	return &Config{
		Secret:    secret,
		N:         v.GetInt(SharesKey),
		K:         v.GetInt(ThresholdKey),
		Base:      v.GetInt(BaseKey),
		CoeffBits: v.GetUint(CoeffBitsKey),
		Logger:    logger,
	}, nil
}

package reconstruct

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/izouxv/hashira/config"
	"github.com/izouxv/hashira/shamir"
	"github.com/izouxv/hashira/source"
	"github.com/izouxv/hashira/utils"
	"github.com/izouxv/hashira/verify"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstructs the secret from a share record by majority vote over all k-subsets",
		Args:  cobra.NoArgs,
		RunE:  reconstructFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
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
	return &Config{
		Input:         v.GetString(InputKey),
		Workers:       v.GetInt(WorkersKey),
		JSON:          v.GetBool(JSONKey),
		ExpectPubKey:  v.GetString(ExpectPubKeyKey),
		ExpectAddress: v.GetString(ExpectAddressKey),
		Logger:        logger,
	}, nil
}

// report is the --json output.
type report struct {
	*shamir.Result
	Skipped []skipped `json:"skipped,omitempty"`
}

type skipped struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

func reconstructFunc(c *cobra.Command, _ []string) error {
	cfg, err := ParseFlags(c.Flags(), c.ErrOrStderr())
	if err != nil {
		return err
	}
	logger := utils.Layer(cfg.Logger, utils.LayerMain)

	var rec *source.Record
	if cfg.Input == "-" {
		rec, err = source.Parse(c.InOrStdin())
	} else {
		rec, err = source.Load(cfg.Input)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Input, err)
	}

	shares, failures := source.Decode(rec, cfg.Logger)
	res, err := shamir.Reconstruct(c.Context(), shares, rec.K,
		shamir.WithWorkers(cfg.Workers),
		shamir.WithLogger(cfg.Logger),
	)
	if err != nil {
		return err
	}

	if cfg.ExpectPubKey != "" {
		if err := verify.Secp256k1PublicKey(res.Secret, cfg.ExpectPubKey); err != nil {
			return err
		}
		logger.Info().Msg("Secret matches expected public key")
	}
	if cfg.ExpectAddress != "" {
		if err := verify.EthereumAddress(res.Secret, cfg.ExpectAddress); err != nil {
			return err
		}
		logger.Info().Msg("Secret matches expected address")
	}

	out := c.OutOrStdout()
	if !cfg.JSON {
		_, err = fmt.Fprintln(out, res.Value)
		return err
	}

	r := report{Result: res}
	for _, f := range failures {
		r.Skipped = append(r.Skipped, skipped{Index: f.Index, Error: f.Err.Error()})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

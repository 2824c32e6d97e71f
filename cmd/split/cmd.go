package split

import (
	"github.com/spf13/cobra"

	"github.com/izouxv/hashira/shamir"
	"github.com/izouxv/hashira/source"
	"github.com/izouxv/hashira/utils"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "split",
		Short: "Splits a secret into a share record over the integers",
		Args:  cobra.NoArgs,
		RunE:  splitFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func splitFunc(c *cobra.Command, _ []string) error {
	cfg, err := ParseFlags(c.Flags(), c.ErrOrStderr())
	if err != nil {
		return err
	}

	shares, err := shamir.Split(cfg.Secret, cfg.N, cfg.K, cfg.CoeffBits)
	if err != nil {
		return err
	}
	record, err := source.Encode(cfg.N, cfg.K, shares, cfg.Base)
	if err != nil {
		return err
	}

	logger := utils.Layer(cfg.Logger, utils.LayerMain)
	logger.Info().
		Int("n", cfg.N).
		Int("k", cfg.K).
		Int("base", cfg.Base).
		Int("digits", cfg.Secret.Len()).
		Str("fingerprint", utils.Fingerprint(cfg.Secret.String())).
		Msg("Secret split")

	_, err = c.OutOrStdout().Write(record)
	return err
}

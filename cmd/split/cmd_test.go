package split

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/hashira/shamir"
	"github.com/izouxv/hashira/source"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := Command()
	c.SetArgs(append([]string{"--log-level=disabled"}, args...))
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSplitThenRecover(t *testing.T) {
	const secret = "340282366920938463463374607431768211457"
	out, err := run(t, "--secret", secret, "--n", "6", "--k", "4", "--base", "36", "--coeff-bits", "100")
	require.NoError(t, err)

	rec, err := source.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 6, rec.N)
	assert.Equal(t, 4, rec.K)
	for _, e := range rec.Entries {
		assert.Equal(t, "36", e.Base)
	}

	shares, failures := source.Decode(rec, zerolog.Nop())
	require.Empty(t, failures)
	res, err := shamir.Reconstruct(context.Background(), shares, rec.K)
	require.NoError(t, err)
	assert.Equal(t, secret, res.Value)
	assert.Equal(t, 15, res.Votes)
}

func TestSplitFromEnv(t *testing.T) {
	t.Setenv("HASHIRA_SECRET", "77")
	t.Setenv("HASHIRA_K", "2")
	out, err := run(t, "--n", "3")
	require.NoError(t, err)

	rec, err := source.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 3, rec.N)
	assert.Equal(t, 2, rec.K)
}

func TestSplitErrors(t *testing.T) {
	_, err := run(t)
	assert.ErrorIs(t, err, errMissingSecret)

	_, err = run(t, "--secret=-5")
	assert.ErrorIs(t, err, errNegativeSecret)

	_, err = run(t, "--secret", "12x")
	assert.Error(t, err)

	_, err = run(t, "--secret", "5", "--n", "2", "--k", "3")
	assert.ErrorIs(t, err, shamir.ErrInvalidThreshold)

	_, err = run(t, "--secret", "5", "--base", "1")
	assert.Error(t, err)
}

func TestSplitLogsSummary(t *testing.T) {
	c := Command()
	c.SetArgs([]string{"--log-level=info", "--secret", "123456", "--n", "4", "--k", "2"})
	var out, logs bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&logs)
	require.NoError(t, c.ExecuteContext(context.Background()))

	assert.NotEmpty(t, out.String())
	assert.Contains(t, logs.String(), `"layer":"MAIN"`)
	assert.Contains(t, logs.String(), `"digits":6`)
	assert.Contains(t, logs.String(), `"message":"Secret split"`)
	assert.NotContains(t, logs.String(), "123456\"")
}

package optional_test

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distribution-auth/optional"
)

type serverConfig struct {
	Address    optional.Option[string]        `mapstructure:"address"`
	Expiration optional.Option[time.Duration] `mapstructure:"expiration"`
	Threshold  optional.Option[int]           `mapstructure:"threshold"`
}

func decode(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			optional.DecodeHook(mapstructure.StringToTimeDurationHookFunc()),
		),
		Result: result,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

func TestDecodeHook(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var config serverConfig

		err := decode(map[string]interface{}{
			"address":    "127.0.0.1:8080",
			"expiration": "15m",
			"threshold":  10,
		}, &config)
		require.NoError(t, err)

		assert.Equal(t, optional.Some("127.0.0.1:8080"), config.Address)
		assert.Equal(t, optional.Some(15*time.Minute), config.Expiration)
		assert.Equal(t, optional.Some(10), config.Threshold)
	})

	t.Run("MissingKeys", func(t *testing.T) {
		var config serverConfig

		err := decode(map[string]interface{}{
			"address": "127.0.0.1:8080",
		}, &config)
		require.NoError(t, err)

		assert.Equal(t, optional.Some("127.0.0.1:8080"), config.Address)
		assert.True(t, config.Expiration.IsNone())
		assert.True(t, config.Threshold.IsNone())
	})

	t.Run("ConvertibleValue", func(t *testing.T) {
		var config serverConfig

		err := decode(map[string]interface{}{
			"threshold": int64(10),
		}, &config)
		require.NoError(t, err)

		assert.Equal(t, optional.Some(10), config.Threshold)
	})

	t.Run("Error", func(t *testing.T) {
		var config serverConfig

		err := decode(map[string]interface{}{
			"threshold": []string{"ten"},
		}, &config)
		require.Error(t, err)
	})
}

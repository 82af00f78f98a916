package shoutrrr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_addDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
	}{
		"generic_with_empty_title": {
			address:        "generic://example.com?title=",
			defaultTitle:   "RouterOS dump",
			updatedAddress: "generic://example.com?title=",
		},
		"generic_with_title": {
			address:        "generic://example.com?title=MyTitle",
			defaultTitle:   "RouterOS dump",
			updatedAddress: "generic://example.com?title=MyTitle",
		},
		"generic_without_title": {
			address:        "generic://example.com",
			defaultTitle:   "RouterOS dump",
			updatedAddress: "generic://example.com?title=RouterOS+dump",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updatedAddress := addDefaultTitle(testCase.address, testCase.defaultTitle)

			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}

type errorRecorder struct {
	messages []string
}

func (e *errorRecorder) Error(s string) {
	e.messages = append(e.messages, s)
}

func Test_New(t *testing.T) {
	t.Parallel()

	t.Run("no_address", func(t *testing.T) {
		t.Parallel()
		logger := &errorRecorder{}

		client, err := New(Settings{Logger: logger})

		require.NoError(t, err)
		client.Notify("session closed by router")
		assert.Empty(t, logger.messages)
	})

	t.Run("invalid_address", func(t *testing.T) {
		t.Parallel()

		client, err := New(Settings{Addresses: []string{"unknownservice://token"}})

		assert.Nil(t, client)
		assert.ErrorContains(t, err, "validating settings: shoutrrr addresses: ")
	})

	t.Run("service_names", func(t *testing.T) {
		t.Parallel()

		client, err := New(Settings{
			Addresses: []string{"generic://example.com/webhook"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"generic"}, client.serviceNames)
	})
}

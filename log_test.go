package nrf24

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestBusTrafficLoggedAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	chip := newFakeChip()
	cfg := testConfig(&fakeClock{chip: chip})
	cfg.Logger = logger
	r := New(chip, cfg)

	r.ReadRegister(RF_CH)
	r.PowerUp()
	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.Equal(t, logrus.DebugLevel, e.Level)
	}
	require.True(t, strings.HasPrefix(entries[0].Message, "xfer 05 FF -> "))
	require.Equal(t, "CE true", entries[1].Message)

	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	r.ReadRegister(RF_CH)
	require.Empty(t, hook.AllEntries())
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/devblok/vkbase/core"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := core.NewLogger(core.LogConfiguration{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger, err = core.NewLogger(core.LogConfiguration{Level: "warn"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = core.NewLogger(core.LogConfiguration{Level: "chatty"})
	assert.True(t, errors.Is(err, core.ErrConfiguration))

	_, err = core.NewLogger(core.LogConfiguration{Level: "info", Format: "xml"})
	assert.True(t, errors.Is(err, core.ErrConfiguration))
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/devblok/vkbase/core"
	"github.com/stretchr/testify/assert"
)

// closingWindow asks to close after a number of polls
type closingWindow struct {
	polls   int
	closeAt int
}

func (w *closingWindow) PollEvents()       { w.polls++ }
func (w *closingWindow) ShouldClose() bool { return w.polls >= w.closeAt }

func TestLoop(t *testing.T) {
	quietLogger(t)
	timeService := core.NewTime(core.TimeConfiguration{EventPollDelay: 1})
	defer timeService.Stop()

	w := &closingWindow{closeAt: 3}
	core.Loop(w, timeService)
	assert.Equal(t, 3, w.polls)
}

func TestLoopClosedWindow(t *testing.T) {
	quietLogger(t)
	timeService := core.NewTime(core.TimeConfiguration{})
	defer timeService.Stop()

	w := &closingWindow{}
	core.Loop(w, timeService)
	assert.Equal(t, 0, w.polls)
	assert.Equal(t, 0, timeService.EventPollDelay())
}

// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

// Loop polls src on every event tick until it should close.
func Loop(src EventSource, t *Time) {
	log.Info("Main loop started")
	for !src.ShouldClose() {
		<-t.EventTicker().C
		src.PollEvents()
	}
	log.Info("Event loop exited")
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common input elements. Widgets contain
// persistent state and process the events routed to them by an
// input.Context; drawing them is left to the application.
package widget

// Package dispatch classifies the result of a webhook submission.
//
// Classify turns a raw webhook.Result into an Outcome: Sent, or Failed
// with one of Timeout, Rejected (with Discord's status and message) or
// Unreachable. Hint supplies troubleshooting tips for the result screen
// and the send command.
package dispatch

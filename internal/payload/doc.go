// Package payload turns a filled form into the JSON body Discord's
// execute-webhook endpoint expects.
//
// Templates render either as a single embed (title, description, color,
// one embed field per non-empty value, optional footer) or as plain
// markdown content. Mentions are suppressed unless the template opts in,
// so text typed into a field cannot ping @everyone.
package payload

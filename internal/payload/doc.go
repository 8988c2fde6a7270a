// Package payload builds the JSON body sent to the direct payment endpoint
// from a saved profile, the live form values and the global toggles, and
// reads form values back out of a hand-edited body.
//
// Every build yields two objects: Send, which is dispatched as is, and
// Display, which is what the operator sees. They differ only when privacy
// mode masks the card number, the CVV and the integration key.
package payload

package payload

import "github.com/MKhiriev/ptp-tester/models"

// APMVariant tells where the customer fields of an APM payload live.
type APMVariant int

const (
	// APMNested payloads keep customer fields under "payment" and the amount
	// in "amount_total".
	APMNested APMVariant = iota
	// APMFlat payloads keep customer fields at the top level and the amount
	// in "amount".
	APMFlat
)

func (v APMVariant) String() string {
	if v == APMFlat {
		return "flat"
	}
	return "nested"
}

// DetectAPMVariant classifies p. Any payload with a "payment" object is
// nested.
func DetectAPMVariant(p models.Payload) APMVariant {
	if p.Object(KeyPayment) != nil {
		return APMNested
	}
	return APMFlat
}

// AmountKey returns the name of the amount field for the variant.
func (v APMVariant) AmountKey() string {
	if v == APMFlat {
		return KeyAmount
	}
	return KeyAmountTotal
}

// target returns the object of p that holds the customer fields.
func (v APMVariant) target(p models.Payload) models.Payload {
	if v == APMFlat {
		return p
	}
	return p.Object(KeyPayment)
}

package payload

import "github.com/MKhiriev/ptp-tester/models"

// Extraction holds the form values found in a payload.
type Extraction struct {
	// Card is nil when the payload has no payment.card object.
	Card *models.CardFields
	// APM is nil outside APM mode or when the customer object is missing.
	APM *models.APMFields
	// Amount is the amount as written in the payload, "" when absent.
	Amount string

	// IntegrationKey is "" when absent, empty or the placeholder.
	IntegrationKey string

	HasSoftDescriptor bool
	SoftDescriptor    string
}

// Extract reads the form values of mode out of p.
func Extract(mode models.Mode, p models.Payload) Extraction {
	var ex Extraction

	if key := p.String(KeyIntegrationKey); key != IntegrationKeyPlaceholder {
		ex.IntegrationKey = key
	}

	var holder models.Payload
	if mode.IsCard() {
		if payment := p.Object(KeyPayment); payment != nil {
			ex.Amount = payment.String(KeyAmountTotal)
		}
		if card := cardObject(p); card != nil {
			ex.Card = &models.CardFields{
				Number:  card.String(KeyCardNumber),
				Name:    card.String(KeyCardName),
				DueDate: card.String(KeyCardDueDate),
				CVV:     card.String(KeyCardCVV),
			}
			holder = card
		}
	} else {
		variant := DetectAPMVariant(p)
		if target := variant.target(p); target != nil {
			ex.APM = &models.APMFields{
				Name:        target.String(KeyName),
				Email:       target.String(KeyEmail),
				PhoneNumber: target.String(KeyPhoneNumber),
			}
			ex.Amount = target.String(variant.AmountKey())
			holder = target
		}
	}

	if holder != nil {
		if _, ok := holder[KeySoftDescriptor]; ok {
			ex.HasSoftDescriptor = true
			ex.SoftDescriptor = holder.String(KeySoftDescriptor)
		}
	}

	return ex
}

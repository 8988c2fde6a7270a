package payload

// JSON keys of the direct payment request.
const (
	KeyIntegrationKey = "integration_key"
	KeyOperation      = "operation"
	KeyPayment        = "payment"
	KeyCard           = "card"
	KeySoftDescriptor = "soft_descriptor"

	KeyAmountTotal  = "amount_total"
	KeyAmount       = "amount"
	KeyCurrencyCode = "currency_code"
	KeyName         = "name"
	KeyEmail        = "email"
	KeyBirthDate    = "birth_date"
	KeyCountry      = "country"
	KeyPhoneNumber  = "phone_number"

	KeyCardNumber   = "card_number"
	KeyCardName     = "card_name"
	KeyCardDueDate  = "card_due_date"
	KeyCardCVV      = "card_cvv"
	KeyAutoCapture  = "auto_capture"
	KeyThreeDSForce = "threeds_force"
)

// IntegrationKeyPlaceholder is sent in place of an empty integration key.
const IntegrationKeyPlaceholder = "{integration_key}"

const operationRequest = "request"

package formsync

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/MKhiriev/ptp-tester/internal/payload"
	"github.com/MKhiriev/ptp-tester/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard() *models.CardProfile {
	return &models.CardProfile{
		CardNumber:  "4111111111111111",
		CardName:    "Test User",
		CardDueDate: "12/2025",
		CardCVV:     "123",
		Description: "NG visa",
	}
}

func testCustomer() models.CustomerTemplate {
	return models.CustomerTemplate{Name: "Test User", Country: "ng", CurrencyCode: "NGN", DefaultAmount: json.Number("100")}
}

func selected(t *testing.T, toggles models.Toggles) State {
	t.Helper()
	s, eff := Reduce(NewState(models.ModeCard, toggles), ProfileSelected{Card: testCard(), Customer: testCustomer()})
	require.NoError(t, eff.Err)
	require.True(t, eff.Rewrite)
	return s
}

func TestReduce_ProfileSelectedFillsFormAndBuilds(t *testing.T) {
	s := selected(t, models.Toggles{APIKey: "live_key_123456"})

	assert.Equal(t, testCard().Fields(), s.CardFields)
	assert.Contains(t, s.Text(), `"card_number": "4111111111111111"`)
	assert.False(t, s.HasOverride())
}

func TestReduce_FormEditedRebuilds(t *testing.T) {
	s := selected(t, models.Toggles{})

	s, eff := Reduce(s, FormEdited{Field: FieldCardCVV, Value: "999"})
	require.True(t, eff.Rewrite)
	assert.False(t, eff.FormChanged)
	assert.Contains(t, eff.Text, `"card_cvv": "999"`)
	assert.Equal(t, "999", s.CardFields.CVV)
}

func TestReduce_InvalidPayloadIsNoop(t *testing.T) {
	s := selected(t, models.Toggles{})
	before := s

	after, eff := Reduce(s, PayloadEdited{Text: `{"payment": {"card": `})

	assert.True(t, eff.Invalid)
	assert.False(t, eff.Rewrite)
	assert.Equal(t, before, after)
}

func TestReduce_PayloadEditedUpdatesFormWithoutRewrite(t *testing.T) {
	s := selected(t, models.Toggles{APIKey: "old_key_12345678"})

	text := strings.Replace(s.Text(), "4111111111111111", "5555555555554444", 1)
	text = strings.Replace(text, "old_key_12345678", "new_key_87654321", 1)

	s, eff := Reduce(s, PayloadEdited{Text: text})

	assert.False(t, eff.Rewrite, "payload edits never rewrite the editor")
	assert.True(t, eff.FormChanged)
	assert.True(t, eff.KeyChanged)
	assert.Equal(t, "5555555555554444", s.CardFields.Number)
	assert.Equal(t, "new_key_87654321", s.Toggles.APIKey)
	assert.True(t, s.HasOverride())
}

func TestReduce_OverrideIsSentUntilNextFormEdit(t *testing.T) {
	s := selected(t, models.Toggles{APIKey: "live_key_123456"})

	edited := `{"integration_key": "{integration_key}", "operation": "request", "custom": "hand",
		"payment": {"card": {"card_number": "4111111111111111", "card_name": "Test User", "card_due_date": "12/2025", "card_cvv": "123"}}}`
	s, _ = Reduce(s, PayloadEdited{Text: edited})

	out, err := s.Outgoing()
	require.NoError(t, err)
	assert.Equal(t, "hand", out["custom"])
	assert.Equal(t, "live_key_123456", out[payload.KeyIntegrationKey])

	s, eff := Reduce(s, FormEdited{Field: FieldCardName, Value: "Other"})
	require.True(t, eff.Rewrite)
	assert.False(t, s.HasOverride())

	out, err = s.Outgoing()
	require.NoError(t, err)
	assert.NotContains(t, out, "custom")
}

func TestReduce_PrivacyModeKeepsOriginalsForMaskedValues(t *testing.T) {
	s := selected(t, models.Toggles{APIKey: "abcd1234efgh5678", PrivacyMode: true})
	require.Contains(t, s.Text(), "411111**********")
	require.Contains(t, s.Text(), "abcd********5678")

	// the operator changes only the name in the masked view
	text := strings.Replace(s.Text(), `"card_name": "Test User"`, `"card_name": "Renamed"`, 1)
	s, eff := Reduce(s, PayloadEdited{Text: text})
	require.False(t, eff.Invalid)

	assert.Equal(t, "4111111111111111", s.CardFields.Number)
	assert.Equal(t, "123", s.CardFields.CVV)
	assert.Equal(t, "Renamed", s.CardFields.Name)
	assert.Equal(t, "abcd1234efgh5678", s.Toggles.APIKey)
	assert.False(t, eff.KeyChanged)

	out, err := s.Outgoing()
	require.NoError(t, err)
	card := out.Object(payload.KeyPayment).Object(payload.KeyCard)
	assert.Equal(t, "4111111111111111", card[payload.KeyCardNumber])
	assert.Equal(t, "123", card[payload.KeyCardCVV])
	assert.Equal(t, "abcd1234efgh5678", out[payload.KeyIntegrationKey])
}

func TestReduce_PayloadSoftDescriptorDrivesToggle(t *testing.T) {
	s := selected(t, models.Toggles{SoftDescriptor: "OLD", SoftDescriptorEnabled: true})
	require.Contains(t, s.Text(), `"soft_descriptor": "OLD"`)

	removed := strings.Replace(s.Text(), `"soft_descriptor": "OLD",`, "", 1)
	removed = strings.Replace(removed, `,
      "soft_descriptor": "OLD"`, "", 1)
	s, eff := Reduce(s, PayloadEdited{Text: removed})
	require.False(t, eff.Invalid, removed)

	assert.False(t, s.Toggles.SoftDescriptorEnabled)
	assert.Equal(t, "OLD", s.Toggles.SoftDescriptor, "text is kept for the next enable")

	s, _ = Reduce(s, TogglesEdited{SoftDescriptor: "NEW", SoftDescriptorEnabled: true})
	assert.Contains(t, s.Text(), `"soft_descriptor": "NEW"`)
}

func TestReduce_SoftDescriptorOffRemovesKey(t *testing.T) {
	s := selected(t, models.Toggles{SoftDescriptor: "SD", SoftDescriptorEnabled: true})
	require.Contains(t, s.Text(), "soft_descriptor")

	s, _ = Reduce(s, TogglesEdited{SoftDescriptor: "SD", SoftDescriptorEnabled: false})
	assert.NotContains(t, s.Text(), "soft_descriptor")
}

func TestReduce_KeyEdited(t *testing.T) {
	s := selected(t, models.Toggles{})

	s, eff := Reduce(s, KeyEdited{Key: "fresh_key_0000"})
	assert.True(t, eff.KeyChanged)
	assert.Contains(t, s.Text(), `"integration_key": "fresh_key_0000"`)

	_, eff = Reduce(s, KeyEdited{Key: "fresh_key_0000"})
	assert.False(t, eff.KeyChanged)
}

func TestReduce_AmountFromPayloadBecomesOverride(t *testing.T) {
	s := selected(t, models.Toggles{})
	assert.Equal(t, "", s.Amount)

	// unchanged amount does not pin the form
	s, _ = Reduce(s, PayloadEdited{Text: s.Text()})
	assert.Equal(t, "", s.Amount)

	text := strings.Replace(s.Text(), `"amount_total": 100`, `"amount_total": 42.5`, 1)
	s, _ = Reduce(s, PayloadEdited{Text: text})
	assert.Equal(t, "42.5", s.Amount)
}

func TestReduce_InvalidAmountKeepsLastPayload(t *testing.T) {
	s := selected(t, models.Toggles{})
	text := s.Text()

	s, eff := Reduce(s, FormEdited{Field: FieldAmount, Value: "12,00"})
	assert.ErrorIs(t, eff.Err, payload.ErrInvalidAmount)
	assert.False(t, eff.Rewrite)
	assert.Equal(t, text, s.Text())
}

func TestReduce_ModeSelected(t *testing.T) {
	s := selected(t, models.Toggles{})

	s, eff := Reduce(s, ModeSelected{Mode: models.ModeCard3DS})
	require.True(t, eff.Rewrite)
	assert.Contains(t, s.Text(), `"threeds_force": true`)

	s, eff = Reduce(s, ModeSelected{Mode: models.ModeAPM})
	assert.ErrorIs(t, eff.Err, payload.ErrNoProfile)
	assert.Equal(t, "", s.Text())

	_, err := s.Outgoing()
	assert.ErrorIs(t, err, ErrNothingToSend)
}

func TestReduce_APMProfile(t *testing.T) {
	p, err := models.ParsePayload(`{"name": "Saved", "phone_number": "254700000000", "amount": 75}`)
	require.NoError(t, err)

	s, eff := Reduce(NewState(models.ModeAPM, models.Toggles{}), ProfileSelected{APM: &models.APMProfile{Payload: p}})
	require.NoError(t, eff.Err)
	assert.Equal(t, "254700000000", s.APMFields.PhoneNumber)

	s, _ = Reduce(s, FormEdited{Field: FieldAPMName, Value: "Live"})
	out, err := s.Outgoing()
	require.NoError(t, err)
	assert.Equal(t, "Live", out["name"])
}

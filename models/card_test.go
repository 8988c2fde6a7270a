package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryProfile_PreservesUnknownKeys(t *testing.T) {
	in := `{
		"customer_data": {"name": "A", "default_amount": 12.30},
		"debitcard": {"visa": [{"card_number": "4111", "custom_payload": {"payment": {"amount_total": 1.10}}}]},
		"mobile_money": {"mpesa": {"phone_number": "254"}}
	}`

	var cp CountryProfile
	require.NoError(t, json.Unmarshal([]byte(in), &cp))

	assert.Equal(t, json.Number("12.30"), cp.CustomerData.DefaultAmount)
	assert.Equal(t, json.Number("1.10"),
		cp.DebitCard["visa"][0].CustomPayload.Object("payment")["amount_total"])
	require.Contains(t, cp.Extra, "mobile_money")

	out, err := json.Marshal(cp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"mobile_money":{"mpesa":{"phone_number":"254"}}`)
	assert.Contains(t, string(out), `"amount_total":1.10`)
}

func TestCardProfile_CustomPayloadFor(t *testing.T) {
	plain := Payload{"k": "plain"}
	threeDS := Payload{"k": "3ds"}

	assert.Nil(t, CardProfile{}.CustomPayloadFor(ModeCard))
	assert.Equal(t, plain, CardProfile{CustomPayload: plain}.CustomPayloadFor(ModeCard3DS))
	assert.Equal(t, threeDS, CardProfile{CustomPayload: plain, CustomPayload3DS: threeDS}.CustomPayloadFor(ModeCard3DS))
	assert.Equal(t, plain, CardProfile{CustomPayload: plain, CustomPayload3DS: threeDS}.CustomPayloadFor(ModeCard))
}

func TestCardProfile_SetCustomPayload(t *testing.T) {
	var c CardProfile
	c.SetCustomPayload(ModeCard3DS, Payload{"a": "1"})
	c.SetCustomPayload(ModeCard, Payload{"b": "2"})

	assert.Equal(t, Payload{"a": "1"}, c.CustomPayload3DS)
	assert.Equal(t, Payload{"b": "2"}, c.CustomPayload)
}

func TestCardProfile_Fields(t *testing.T) {
	c := CardProfile{CardNumber: "1", CardName: "N", CardDueDate: "12/2030", CardCVV: "123", Description: "d"}
	f := c.Fields()

	assert.Equal(t, CardFields{Number: "1", Name: "N", DueDate: "12/2030", CVV: "123"}, f)

	f.CVV = "000"
	updated := c.WithFields(f)
	assert.Equal(t, "000", updated.CardCVV)
	assert.Equal(t, "d", updated.Description)
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, StatusSuccess, ClassifyStatus(200))
	assert.Equal(t, StatusSuccess, ClassifyStatus(201))
	assert.Equal(t, StatusClientError, ClassifyStatus(404))
	assert.Equal(t, StatusServerError, ClassifyStatus(503))
	assert.Equal(t, StatusOther, ClassifyStatus(302))
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeCard, ModeCard3DS, ModeAPM} {
		assert.Equal(t, m, ParseMode(m.String()))
	}
	assert.Equal(t, ModeCard, ParseMode("garbage"))
}

package razorpay

import (
	"context"
	"strings"

	pkgerrors "github.com/angelmondragon/razorpay-go-client/pkg/errors"
)

// CardNetwork is the scheme that issued a card.
type CardNetwork string

const (
	CardNetworkVisa            CardNetwork = "Visa"
	CardNetworkMasterCard      CardNetwork = "MasterCard"
	CardNetworkRuPay           CardNetwork = "RuPay"
	CardNetworkAmericanExpress CardNetwork = "American Express"
	CardNetworkDinersClub      CardNetwork = "Diners Club"
	CardNetworkBajajFinserv    CardNetwork = "Bajaj Finserv"
	CardNetworkMaestro         CardNetwork = "Maestro"
	CardNetworkJCB             CardNetwork = "JCB"
	CardNetworkUnionPay        CardNetwork = "Union Pay"
	CardNetworkUnknown         CardNetwork = "unknown"
)

// CardType is the funding type of a card.
type CardType string

const (
	CardTypeCredit  CardType = "credit"
	CardTypeDebit   CardType = "debit"
	CardTypePrepaid CardType = "prepaid"
	CardTypeUnknown CardType = "unknown"
)

// CardSubType separates consumer cards from business cards.
type CardSubType string

const (
	CardSubTypeCustomer CardSubType = "customer"
	CardSubTypeBusiness CardSubType = "business"
	CardSubTypeUnknown  CardSubType = "unknown"
)

// Card is the masked card a payment was made with.
type Card struct {
	ID            CardID      `json:"id" decode:"required"`
	Entity        Entity      `json:"entity"`
	Name          string      `json:"name"`
	Last4         string      `json:"last4"`
	Network       CardNetwork `json:"network"`
	Type          CardType    `json:"type"`
	Issuer        string      `json:"issuer,omitempty"`
	International bool        `json:"international"`
	EMI           bool        `json:"emi"`
	SubType       CardSubType `json:"sub_type,omitempty"`
}

// CardService groups the /cards endpoints.
type CardService struct {
	c *Client
}

// Fetch loads one saved card.
func (s *CardService) Fetch(ctx context.Context, id CardID) (*Card, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Card](ctx, s.c, RequestDescriptor{
		Path:      "/cards/" + id.String(),
		Operation: "cards.fetch",
	})
}

// AuthenticationType is a card authentication method an IIN supports.
type AuthenticationType string

const (
	AuthenticationType3DS AuthenticationType = "3ds"
	AuthenticationTypeOTP AuthenticationType = "otp"
)

// Availability flags whether a capability is offered.
type Availability struct {
	Available bool `json:"available"`
}

// IINAuthentication is one supported authentication method.
type IINAuthentication struct {
	Type AuthenticationType `json:"type"`
}

// IIN describes the issuer of a card number prefix.
type IIN struct {
	IIN                 string              `json:"iin" decode:"required"`
	Entity              Entity              `json:"entity"`
	Network             CardNetwork         `json:"network"`
	Type                CardType            `json:"type"`
	SubType             CardSubType         `json:"sub_type"`
	International       bool                `json:"international"`
	IssuerCode          string              `json:"issuer_code"`
	IssuerName          string              `json:"issuer_name"`
	EMI                 Availability        `json:"emi"`
	Recurring           Availability        `json:"recurring"`
	AuthenticationTypes []IINAuthentication `json:"authentication_types"`
}

// IINService groups the /iins endpoints.
type IINService struct {
	c *Client
}

const iinLength = 6

// Fetch looks up the first six digits of a card number.
func (s *IINService) Fetch(ctx context.Context, iin string) (*IIN, error) {
	iin = strings.TrimSpace(iin)
	if !isDigits(iin) || len(iin) != iinLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "iin must be 6 digits").
			WithDetails(map[string]string{"value": iin})
	}
	return Get[IIN](ctx, s.c, RequestDescriptor{
		Path:      "/iins/" + iin,
		Operation: "iins.fetch",
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

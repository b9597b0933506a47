package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// AccountType is the kind of linked account.
type AccountType string

const AccountTypeStandard AccountType = "standard"

// BusinessType is the legal constitution of a linked account's business.
type BusinessType string

const (
	BusinessTypeProprietorship   BusinessType = "proprietorship"
	BusinessTypePartnership      BusinessType = "partnership"
	BusinessTypePrivateLimited   BusinessType = "private_limited"
	BusinessTypePublicLimited    BusinessType = "public_limited"
	BusinessTypeLLP              BusinessType = "llp"
	BusinessTypeNGO              BusinessType = "ngo"
	BusinessTypeTrust            BusinessType = "trust"
	BusinessTypeSociety          BusinessType = "society"
	BusinessTypeNotYetRegistered BusinessType = "not_yet_registered"
	BusinessTypeHUF              BusinessType = "huf"
)

// BusinessCategory is the top-level industry of an account.
type BusinessCategory string

const (
	BusinessCategoryFinancialServices     BusinessCategory = "financial_services"
	BusinessCategoryEducation             BusinessCategory = "education"
	BusinessCategoryHealthcare            BusinessCategory = "healthcare"
	BusinessCategoryUtilities             BusinessCategory = "utilities"
	BusinessCategoryGovernment            BusinessCategory = "government"
	BusinessCategoryLogistics             BusinessCategory = "logistics"
	BusinessCategoryToursAndTravel        BusinessCategory = "tours_and_travel"
	BusinessCategoryTransport             BusinessCategory = "transport"
	BusinessCategoryEcommerce             BusinessCategory = "ecommerce"
	BusinessCategoryFood                  BusinessCategory = "food"
	BusinessCategoryITAndSoftware         BusinessCategory = "it_and_software"
	BusinessCategoryGaming                BusinessCategory = "gaming"
	BusinessCategoryMediaAndEntertainment BusinessCategory = "media_and_entertainment"
	BusinessCategoryServices              BusinessCategory = "services"
	BusinessCategoryHousing               BusinessCategory = "housing"
	BusinessCategoryNotForProfit          BusinessCategory = "not_for_profit"
	BusinessCategorySocial                BusinessCategory = "social"
	BusinessCategoryOthers                BusinessCategory = "others"
)

// AccountAddress is a postal address on an account profile.
type AccountAddress struct {
	Street1    string `json:"street1" validate:"required"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// AccountAddresses holds the registered and operating addresses.
type AccountAddresses struct {
	Registered AccountAddress  `json:"registered"`
	Operation  *AccountAddress `json:"operation,omitempty"`
}

// AccountProfile classifies the business.
type AccountProfile struct {
	Category      BusinessCategory `json:"category" validate:"required"`
	Subcategory   string           `json:"subcategory" validate:"required"`
	Description   string           `json:"description,omitempty"`
	BusinessModel string           `json:"business_model,omitempty"`
	Addresses     AccountAddresses `json:"addresses"`
}

// AccountLegalInfo carries tax registrations.
type AccountLegalInfo struct {
	PAN string `json:"pan,omitempty"`
	GST string `json:"gst,omitempty"`
	CIN string `json:"cin,omitempty"`
}

// AccountBrand customises Checkout for the account.
type AccountBrand struct {
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// SupportContact is one customer-facing contact channel.
type SupportContact struct {
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	PolicyURL string `json:"policy_url,omitempty" validate:"omitempty,url"`
}

// AccountContactInfo lists the contacts shown to customers.
type AccountContactInfo struct {
	Chargeback *SupportContact `json:"chargeback,omitempty"`
	Refund     *SupportContact `json:"refund,omitempty"`
	Support    *SupportContact `json:"support,omitempty"`
}

// AccountApp is a mobile app the account accepts payments in.
type AccountApp struct {
	Name string `json:"name"`
	URL  string `json:"url" validate:"omitempty,url"`
}

// AccountApps lists where the account accepts payments.
type AccountApps struct {
	Websites []string     `json:"websites,omitempty"`
	Android  []AccountApp `json:"android,omitempty" validate:"dive"`
	IOS      []AccountApp `json:"ios,omitempty" validate:"dive"`
}

// Account is a linked account (route or partner sub-merchant).
type Account struct {
	ID                         AccountID           `json:"id" decode:"required"`
	Entity                     Entity              `json:"entity,omitempty"`
	Type                       AccountType         `json:"type"`
	Status                     enums.AccountStatus `json:"status"`
	Email                      string              `json:"email"`
	Phone                      string              `json:"phone"`
	LegalBusinessName          string              `json:"legal_business_name"`
	CustomerFacingBusinessName string              `json:"customer_facing_business_name,omitempty"`
	BusinessType               BusinessType        `json:"business_type"`
	ReferenceID                string              `json:"reference_id,omitempty"`
	Profile                    *AccountProfile     `json:"profile,omitempty"`
	LegalInfo                  *AccountLegalInfo   `json:"legal_info,omitempty"`
	Brand                      *AccountBrand       `json:"brand,omitempty"`
	Notes                      Notes               `json:"notes"`
	ContactName                string              `json:"contact_name"`
	ContactInfo                *AccountContactInfo `json:"contact_info,omitempty"`
	Apps                       *AccountApps        `json:"apps,omitempty"`
	ActivatedAt                UnixTime            `json:"activated_at,omitzero"`
	Live                       bool                `json:"live"`
	HoldFunds                  bool                `json:"hold_funds"`
	CreatedAt                  UnixTime            `json:"created_at,omitzero"`
}

// CreateAccountParams is the body of POST /v2/accounts.
type CreateAccountParams struct {
	Email                      string              `json:"email" validate:"required,email"`
	Phone                      string              `json:"phone" validate:"required,min=8,max=15"`
	LegalBusinessName          string              `json:"legal_business_name" validate:"required,max=200"`
	CustomerFacingBusinessName string              `json:"customer_facing_business_name,omitempty"`
	BusinessType               BusinessType        `json:"business_type" validate:"required"`
	ReferenceID                string              `json:"reference_id,omitempty" validate:"max=512"`
	Profile                    *AccountProfile     `json:"profile,omitempty"`
	LegalInfo                  *AccountLegalInfo   `json:"legal_info,omitempty"`
	Brand                      *AccountBrand       `json:"brand,omitempty"`
	Notes                      Notes               `json:"notes,omitempty" validate:"max=15"`
	ContactName                string              `json:"contact_name" validate:"required"`
	ContactInfo                *AccountContactInfo `json:"contact_info,omitempty"`
	Apps                       *AccountApps        `json:"apps,omitempty"`
}

// AccountService groups the v2 /accounts endpoints.
type AccountService struct {
	c *Client
}

// Create registers a linked account.
func (s *AccountService) Create(ctx context.Context, params CreateAccountParams) (*Account, error) {
	return Post[Account](ctx, s.c, RequestDescriptor{
		Path:      "/accounts",
		Version:   versionV2,
		Payload:   params,
		Operation: "accounts.create",
	})
}

// Fetch loads one linked account.
func (s *AccountService) Fetch(ctx context.Context, id AccountID) (*Account, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Account](ctx, s.c, RequestDescriptor{
		Path:      "/accounts/" + id.String(),
		Version:   versionV2,
		Operation: "accounts.fetch",
	})
}

// Delete removes a linked account.
func (s *AccountService) Delete(ctx context.Context, id AccountID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := Delete[Deleted](ctx, s.c, RequestDescriptor{
		Path:      "/accounts/" + id.String(),
		Version:   versionV2,
		Operation: "accounts.delete",
	})
	return err
}

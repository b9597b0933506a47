package razorpay

import (
	"context"

	"github.com/angelmondragon/razorpay-go-client/pkg/enums"
)

// DisputePhase is the stage of the card network dispute process.
type DisputePhase string

const (
	DisputePhaseFraud          DisputePhase = "fraud"
	DisputePhaseRetrieval      DisputePhase = "retrieval"
	DisputePhaseChargeback     DisputePhase = "chargeback"
	DisputePhasePreArbitration DisputePhase = "pre_arbitration"
	DisputePhaseArbitration    DisputePhase = "arbitration"
)

// ContestAction says whether contest evidence is saved or submitted.
type ContestAction string

const (
	ContestActionDraft  ContestAction = "draft"
	ContestActionSubmit ContestAction = "submit"
)

// OtherEvidence groups documents that fit none of the named evidence slots.
type OtherEvidence struct {
	Type        string       `json:"type" validate:"required"`
	DocumentIDs []DocumentID `json:"document_ids" validate:"required,min=1"`
}

// DisputeEvidence is the evidence attached to a dispute. Each slot lists
// document ids uploaded beforehand.
type DisputeEvidence struct {
	Amount                   Amount          `json:"amount"`
	Summary                  string          `json:"summary,omitempty"`
	ShippingProof            []DocumentID    `json:"shipping_proof,omitempty"`
	BillingProof             []DocumentID    `json:"billing_proof,omitempty"`
	CancellationProof        []DocumentID    `json:"cancellation_proof,omitempty"`
	CustomerCommunication    []DocumentID    `json:"customer_communication,omitempty"`
	ProofOfService           []DocumentID    `json:"proof_of_service,omitempty"`
	ExplanationLetter        []DocumentID    `json:"explanation_letter,omitempty"`
	RefundConfirmation       []DocumentID    `json:"refund_confirmation,omitempty"`
	AccessActivityLog        []DocumentID    `json:"access_activity_log,omitempty"`
	RefundCancellationPolicy []DocumentID    `json:"refund_cancellation_policy,omitempty"`
	TermAndConditions        []DocumentID    `json:"term_and_conditions,omitempty"`
	Others                   []OtherEvidence `json:"others,omitempty"`
	SubmittedAt              UnixTime        `json:"submitted_at,omitzero"`
}

// Dispute is a chargeback or inquiry raised against a payment.
type Dispute struct {
	ID                DisputeID           `json:"id" decode:"required"`
	Entity            Entity              `json:"entity"`
	PaymentID         PaymentID           `json:"payment_id"`
	Amount            Amount              `json:"amount"`
	Currency          Currency            `json:"currency"`
	AmountDeducted    Amount              `json:"amount_deducted"`
	ReasonCode        string              `json:"reason_code"`
	ReasonDescription string              `json:"reason_description,omitempty"`
	RespondBy         UnixTime            `json:"respond_by,omitzero"`
	Status            enums.DisputeStatus `json:"status"`
	Phase             DisputePhase        `json:"phase"`
	CreatedAt         UnixTime            `json:"created_at"`
	Evidence          *DisputeEvidence    `json:"evidence,omitempty"`
}

// ContestDisputeParams is the body of PATCH /disputes/{id}/contest.
type ContestDisputeParams struct {
	Amount                   Amount          `json:"amount,omitempty" validate:"gte=0"`
	Summary                  string          `json:"summary,omitempty" validate:"max=1000"`
	ShippingProof            []DocumentID    `json:"shipping_proof,omitempty"`
	BillingProof             []DocumentID    `json:"billing_proof,omitempty"`
	CancellationProof        []DocumentID    `json:"cancellation_proof,omitempty"`
	CustomerCommunication    []DocumentID    `json:"customer_communication,omitempty"`
	ProofOfService           []DocumentID    `json:"proof_of_service,omitempty"`
	ExplanationLetter        []DocumentID    `json:"explanation_letter,omitempty"`
	RefundConfirmation       []DocumentID    `json:"refund_confirmation,omitempty"`
	AccessActivityLog        []DocumentID    `json:"access_activity_log,omitempty"`
	RefundCancellationPolicy []DocumentID    `json:"refund_cancellation_policy,omitempty"`
	TermAndConditions        []DocumentID    `json:"term_and_conditions,omitempty"`
	Others                   []OtherEvidence `json:"others,omitempty" validate:"dive"`
	Action                   ContestAction   `json:"action" validate:"required,oneof=draft submit"`
}

// DisputeService groups the /disputes endpoints.
type DisputeService struct {
	c *Client
}

// List returns a page of disputes. filter may be nil.
func (s *DisputeService) List(ctx context.Context, filter *Filter) (*Collection[Dispute], error) {
	return Get[Collection[Dispute]](ctx, s.c, RequestDescriptor{
		Path:      "/disputes",
		Payload:   filter,
		Operation: "disputes.list",
	})
}

// Fetch loads one dispute.
func (s *DisputeService) Fetch(ctx context.Context, id DisputeID) (*Dispute, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Dispute](ctx, s.c, RequestDescriptor{
		Path:      "/disputes/" + id.String(),
		Operation: "disputes.fetch",
	})
}

// Accept concedes a dispute; the disputed amount is debited.
func (s *DisputeService) Accept(ctx context.Context, id DisputeID) (*Dispute, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Post[Dispute](ctx, s.c, RequestDescriptor{
		Path:      "/disputes/" + id.String() + "/accept",
		Operation: "disputes.accept",
	})
}

// Contest saves or submits evidence against a dispute.
func (s *DisputeService) Contest(ctx context.Context, id DisputeID, params ContestDisputeParams) (*Dispute, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Patch[Dispute](ctx, s.c, RequestDescriptor{
		Path:      "/disputes/" + id.String() + "/contest",
		Payload:   params,
		Operation: "disputes.contest",
	})
}

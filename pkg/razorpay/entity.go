package razorpay

// Entity is the value of the "entity" discriminator Razorpay stamps on objects.
type Entity string

const (
	EntityCollection               Entity = "collection"
	EntityOrder                    Entity = "order"
	EntityPayment                  Entity = "payment"
	EntityPaymentDowntime          Entity = "payment.downtime"
	EntityRefund                   Entity = "refund"
	EntityCustomer                 Entity = "customer"
	EntityItem                     Entity = "item"
	EntityPlan                     Entity = "plan"
	EntityAddon                    Entity = "addon"
	EntitySubscription             Entity = "subscription"
	EntityInvoice                  Entity = "invoice"
	EntityLineItem                 Entity = "line_item"
	EntityAddress                  Entity = "address"
	EntitySettlement               Entity = "settlement"
	EntitySettlementOndemand       Entity = "settlement.ondemand"
	EntitySettlementOndemandPayout Entity = "settlement.ondemand_payout"
	EntityDispute                  Entity = "dispute"
	EntityDocument                 Entity = "document"
	EntityCard                     Entity = "card"
	EntityIIN                      Entity = "iin"
	EntityAccount                  Entity = "account"
	EntityWebhook                  Entity = "webhook"
	EntityEvent                    Entity = "event"
	EntityOffer                    Entity = "offer"
	EntityTransfer                 Entity = "transfer"
)

func (e Entity) String() string {
	return string(e)
}

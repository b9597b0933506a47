package razorpay

import "context"

// Customer is the Razorpay customer entity.
type Customer struct {
	ID        CustomerID `json:"id" decode:"required"`
	Entity    Entity     `json:"entity"`
	Name      string     `json:"name"`
	Contact   string     `json:"contact,omitempty"`
	Email     string     `json:"email,omitempty"`
	GSTIN     string     `json:"gstin,omitempty"`
	Notes     Notes      `json:"notes"`
	CreatedAt UnixTime   `json:"created_at"`
}

// CreateCustomerParams is the body of POST /customers. With FailExisting set
// to 0 Razorpay returns the existing customer instead of an error when the
// contact and email already exist.
type CreateCustomerParams struct {
	Name         string   `json:"name" validate:"required,max=50"`
	Contact      string   `json:"contact,omitempty" validate:"omitempty,min=8,max=15"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	FailExisting *IntBool `json:"fail_existing,omitempty"`
	GSTIN        string   `json:"gstin,omitempty" validate:"omitempty,len=15"`
	Notes        Notes    `json:"notes,omitempty" validate:"max=15"`
}

// UpdateCustomerParams is the body of PUT /customers/{id}.
type UpdateCustomerParams struct {
	Name    string `json:"name,omitempty" validate:"max=50"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Contact string `json:"contact,omitempty" validate:"omitempty,min=8,max=15"`
}

// ListCustomersParams pages GET /customers. The endpoint ignores from/to.
type ListCustomersParams struct {
	Count int `json:"count,omitempty" validate:"gte=0,lte=100"`
	Skip  int `json:"skip,omitempty" validate:"gte=0"`
}

// CustomerService groups the /customers endpoints.
type CustomerService struct {
	c *Client
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, params CreateCustomerParams) (*Customer, error) {
	return Post[Customer](ctx, s.c, RequestDescriptor{
		Path:      "/customers",
		Payload:   params,
		Operation: "customers.create",
	})
}

// Update edits a customer's name, email or contact.
func (s *CustomerService) Update(ctx context.Context, id CustomerID, params UpdateCustomerParams) (*Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Put[Customer](ctx, s.c, RequestDescriptor{
		Path:      "/customers/" + id.String(),
		Payload:   params,
		Operation: "customers.update",
	})
}

// List returns a page of customers. params may be nil.
func (s *CustomerService) List(ctx context.Context, params *ListCustomersParams) (*Collection[Customer], error) {
	return Get[Collection[Customer]](ctx, s.c, RequestDescriptor{
		Path:      "/customers",
		Payload:   params,
		Operation: "customers.list",
	})
}

// Fetch loads one customer.
func (s *CustomerService) Fetch(ctx context.Context, id CustomerID) (*Customer, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return Get[Customer](ctx, s.c, RequestDescriptor{
		Path:      "/customers/" + id.String(),
		Operation: "customers.fetch",
	})
}

package accesses

type listQuery struct {
	Q      string `form:"q"`
	Filter string `form:"filter" binding:"omitempty,oneof=active scheduled expired revoked"`
	Sort   string `form:"sort"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

type grantFlowResponse struct {
	FlowID         string `json:"flow_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

// grantBody carries selection sets as the table widgets produce them; the
// lifecycle service rejects anything but one user and one product.
type grantBody struct {
	UserIDs        []string `json:"user_ids"`
	ProductIDs     []string `json:"product_ids"`
	DiscountAmount *int64   `json:"discount_amount"`
	UserTimezone   string   `json:"user_timezone"`
	ProductType    string   `json:"product_type"`
	TypeAccess     string   `json:"type_access"`
}

type changePlanBody struct {
	ProductIDs   []string `json:"product_ids"`
	UserTimezone string   `json:"user_timezone"`
}

type revokeBody struct {
	Reason string `json:"reason"`
}

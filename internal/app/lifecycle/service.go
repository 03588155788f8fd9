package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ruangobat-admin/internal/domain/access"
	"ruangobat-admin/internal/domain/audit"
	"ruangobat-admin/internal/domain/idempotency"
	"ruangobat-admin/internal/domain/plans"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

// Backend is the slice of the Ruangobat API the lifecycle drives.
type Backend interface {
	GetAccess(ctx context.Context, token, accessID string) (*access.Access, error)
	ListProducts(ctx context.Context, token, productType string) ([]plans.Product, error)
	GrantAccess(ctx context.Context, token string, req ruangobat.GrantRequest) (*ruangobat.GrantResult, error)
	RevokeAccess(ctx context.Context, token string, req ruangobat.RevokeRequest) error
	ChangePlan(ctx context.Context, token, accessID string, req ruangobat.ChangePlanRequest) error
}

type KeyStore interface {
	Current(ctx context.Context, flowID, adminID string) (idempotency.Key, error)
	Discard(ctx context.Context, flowID string, key idempotency.Key) error
	Retire(ctx context.Context, flowID string) error
}

type Invalidator interface {
	Invalidate()
}

type Auditor interface {
	Record(ctx context.Context, adminID, action, target, targetID string, details interface{}) error
}

// Actor is the authenticated admin on whose behalf a call is made.
type Actor struct {
	AdminID string
	Token   string
}

const defaultTypeAccess = "manual"

type GrantInput struct {
	UserIDs        []string
	ProductIDs     []string
	DiscountAmount *int64
	UserTimezone   string
	ProductType    string
	TypeAccess     string
}

type ChangePlanInput struct {
	AccessID     string
	ProductIDs   []string
	UserTimezone string
}

type Result struct {
	AccessID     string       `json:"access_id,omitempty"`
	Notification Notification `json:"notification"`
	// FlowClosed means the grant flow cannot take further submissions and
	// the client must start a new one.
	FlowClosed bool `json:"flow_closed,omitempty"`
}

// Service orchestrates grant, change-plan and revoke. It never edits a
// local copy of an access: success invalidates the read model and the
// next fetch is the source of truth.
type Service struct {
	backend     Backend
	keys        KeyStore
	cache       Invalidator
	audit       Auditor
	log         logger.Logger
	defaultZone string
	guard       *inFlight

	closedMu sync.Mutex
	closed   map[string]struct{}
}

func NewService(backend Backend, keys KeyStore, cache Invalidator, auditor Auditor, log logger.Logger, defaultZone string) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Service{
		backend:     backend,
		keys:        keys,
		cache:       cache,
		audit:       auditor,
		log:         log,
		defaultZone: defaultZone,
		guard:       newInFlight(),
		closed:      make(map[string]struct{}),
	}
}

// Grant creates one access for one user and one product within a grant flow.
// The flow's key is reused until a submission succeeds.
func (s *Service) Grant(ctx context.Context, actor Actor, flowID string, in GrantInput) (Result, error) {
	userID, ok := singleton(in.UserIDs)
	if !ok {
		return Result{}, ErrUserSelection
	}
	productID, ok := singleton(in.ProductIDs)
	if !ok {
		return Result{}, ErrProductSelection
	}
	productType, err := plans.NormalizeType(in.ProductType)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var discount int64
	if in.DiscountAmount != nil {
		discount = *in.DiscountAmount
		if discount < 0 {
			return Result{}, ErrInvalidDiscount
		}
	}

	release, err := s.guard.acquire("flow:" + flowID)
	if err != nil {
		return Result{}, err
	}
	defer release()

	if s.isClosed(flowID) {
		return Result{}, idempotency.ErrFlowNotFound
	}

	if discount > 0 {
		if err := s.checkDiscount(ctx, actor.Token, productType, productID, discount); err != nil {
			return Result{}, err
		}
	}

	key, err := s.keys.Current(ctx, flowID, actor.AdminID)
	if err != nil {
		return Result{}, err
	}

	typeAccess := strings.TrimSpace(in.TypeAccess)
	if typeAccess == "" {
		typeAccess = defaultTypeAccess
	}
	req := ruangobat.GrantRequest{
		UserID:         userID,
		ProductID:      productID,
		IdempotencyKey: string(key),
		TypeAccess:     typeAccess,
		ProductType:    productType,
		DiscountAmount: discount,
		UserTimezone:   s.zone(in.UserTimezone),
	}
	res, err := s.backend.GrantAccess(ctx, actor.Token, req)
	if err != nil {
		s.log.Warn("grant access failed; key kept for retry", err, map[string]interface{}{
			"flow_id": flowID,
			"user_id": userID,
		})
		return Result{}, err
	}

	// A key the backend has already accepted must never be sent again, so a
	// flow whose key cannot be discarded is closed instead.
	flowClosed := false
	if err := s.keys.Discard(ctx, flowID, key); err != nil {
		s.log.Error("failed to discard idempotency key; closing flow", err, map[string]interface{}{"flow_id": flowID})
		s.closeFlow(ctx, flowID)
		flowClosed = true
	}
	s.cache.Invalidate()
	s.record(ctx, actor, audit.ActionGrant, res.AccessID, map[string]interface{}{
		"user_id":         userID,
		"product_id":      productID,
		"product_type":    productType,
		"discount_amount": discount,
		"flow_id":         flowID,
	})

	return Result{
		AccessID:     res.AccessID,
		Notification: Notification{Kind: NotifySuccess, Message: "Akses berhasil ditambahkan"},
		FlowClosed:   flowClosed,
	}, nil
}

// ChangePlan moves a live access onto another product.
func (s *Service) ChangePlan(ctx context.Context, actor Actor, in ChangePlanInput) (Result, error) {
	accessID := strings.TrimSpace(in.AccessID)
	if accessID == "" {
		return Result{}, ErrMissingAccess
	}
	productID, ok := singleton(in.ProductIDs)
	if !ok {
		return Result{}, ErrProductSelection
	}

	release, err := s.guard.acquire("access:" + accessID)
	if err != nil {
		return Result{}, err
	}
	defer release()

	if err := s.requireAction(ctx, actor.Token, accessID, access.ActionChangePlan); err != nil {
		return Result{}, err
	}

	err = s.backend.ChangePlan(ctx, actor.Token, accessID, ruangobat.ChangePlanRequest{
		ProductID:    productID,
		UserTimezone: s.zone(in.UserTimezone),
	})
	if err != nil {
		return Result{}, err
	}

	s.cache.Invalidate()
	s.record(ctx, actor, audit.ActionChangePlan, accessID, map[string]interface{}{"product_id": productID})

	return Result{
		AccessID:     accessID,
		Notification: Notification{Kind: NotifySuccess, Message: "Paket akses berhasil diubah"},
	}, nil
}

// Revoke suspends a live access. There is no way back from revoked.
func (s *Service) Revoke(ctx context.Context, actor Actor, accessID, reason string) (Result, error) {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return Result{}, ErrMissingAccess
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Result{}, ErrEmptyReason
	}

	release, err := s.guard.acquire("access:" + accessID)
	if err != nil {
		return Result{}, err
	}
	defer release()

	if err := s.requireAction(ctx, actor.Token, accessID, access.ActionRevoke); err != nil {
		return Result{}, err
	}

	if err := s.backend.RevokeAccess(ctx, actor.Token, ruangobat.RevokeRequest{AccessID: accessID, Reason: reason}); err != nil {
		return Result{}, err
	}

	s.cache.Invalidate()
	s.record(ctx, actor, audit.ActionRevoke, accessID, map[string]interface{}{"reason": reason})

	return Result{
		AccessID:     accessID,
		Notification: Notification{Kind: NotifySuccess, Message: "Akses berhasil ditangguhkan"},
	}, nil
}

// requireAction re-reads the access and refuses unless its current status
// offers action.
func (s *Service) requireAction(ctx context.Context, token, accessID string, action access.Action) error {
	a, err := s.backend.GetAccess(ctx, token, accessID)
	if err != nil {
		return err
	}
	status, err := access.ParseStatus(string(a.Status))
	if err != nil {
		s.log.Error("unexpected access status from backend", err, map[string]interface{}{"access_id": accessID})
		return err
	}
	if !access.Allows(status, action) {
		return fmt.Errorf("%w: %s on %s access", ErrActionNotAllowed, action, status)
	}
	return nil
}

func (s *Service) checkDiscount(ctx context.Context, token, productType, productID string, discount int64) error {
	products, err := s.backend.ListProducts(ctx, token, productType)
	if err != nil {
		return err
	}
	p, ok := plans.Find(products, productID)
	if !ok {
		return ErrProductSelection
	}
	if discount > p.Price {
		return ErrInvalidDiscount
	}
	return nil
}

func (s *Service) closeFlow(ctx context.Context, flowID string) {
	s.closedMu.Lock()
	s.closed[flowID] = struct{}{}
	s.closedMu.Unlock()

	if err := s.keys.Retire(context.WithoutCancel(ctx), flowID); err != nil {
		s.log.Error("failed to retire grant flow", err, map[string]interface{}{"flow_id": flowID})
	}
}

func (s *Service) isClosed(flowID string) bool {
	s.closedMu.Lock()
	defer s.closedMu.Unlock()
	_, ok := s.closed[flowID]
	return ok
}

func (s *Service) record(ctx context.Context, actor Actor, action, targetID string, details map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, actor.AdminID, action, "access", targetID, details); err != nil {
		s.log.Error("failed to write audit log", err, map[string]interface{}{"action": action, "target_id": targetID})
	}
}

func (s *Service) zone(tz string) string {
	if strings.TrimSpace(tz) != "" {
		return tz
	}
	return s.defaultZone
}

func singleton(ids []string) (string, bool) {
	if len(ids) != 1 {
		return "", false
	}
	id := strings.TrimSpace(ids[0])
	return id, id != ""
}

package orderstore

import (
	"errors"
	"time"

	"fitchef-backend/models/admin"
	"fitchef-backend/models/agent"
	"fitchef-backend/models/chef"
	"fitchef-backend/models/dish"
	"fitchef-backend/models/order"
	"fitchef-backend/models/user"
	"fitchef-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Store owns order persistence: atomic creation and the guarded status
// transitions every role handler funnels through. It is injected into the
// controllers; nothing reaches for a package-global handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ItemInput is one cart line of a creation request.
type ItemInput struct {
	DishID   uint
	Quantity int
}

// CreateOrder validates the cart, captures the unit price of every dish at
// this instant and writes header, items and total as one transaction. Any
// invalid or unavailable dish aborts the whole creation.
func (s *Store) CreateOrder(userID uint, items []ItemInput, requestedDeliveryDate string) (*order.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	requested, err := time.ParseInLocation("2006-01-02", requestedDeliveryDate, time.Local)
	if err != nil {
		return nil, ErrInvalidDeliveryDate
	}
	if err := ValidateDeliveryDate(requested, time.Now()); err != nil {
		return nil, err
	}

	var created order.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		created = order.Order{
			UserID:                userID,
			Status:                order.StatusOpen,
			AdminApproved:         false,
			PaymentStatus:         "pending",
			TotalAmount:           decimal.Zero,
			RequestedDeliveryDate: requested,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for _, it := range items {
			var d dish.Dish
			if err := tx.Where("id = ? AND available = ?", it.DishID, true).First(&d).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &DishError{DishID: it.DishID}
				}
				return err
			}
			price := d.EffectivePrice()
			item := order.OrderItem{
				OrderID:  created.ID,
				DishID:   d.ID,
				Quantity: it.Quantity,
				Price:    price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		return tx.Model(&order.Order{}).Where("id = ?", created.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}

	var result order.Order
	if err := s.db.Preload("Items.Dish").First(&result, "id = ?", created.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Transition applies the guarded-transition pattern: the expected-status
// filter and the new-status write are one UPDATE statement, so two racing
// actors resolve to exactly one winner. Zero rows affected means either a
// missing order or a wrong current status; the two are told apart with a
// follow-up existence check.
func (s *Store) Transition(tx *gorm.DB, orderID string, from, to order.Status, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to

	res := tx.Model(&order.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&order.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return &StateError{Expected: from}
	}
	return nil
}

// ConfirmOrder moves an Open order to Confirmed: snapshots the customer's
// delivery address and instructions from the profile, assigns the given
// chef (or the first active one), and sets admin_approved. The snapshot is
// a copy; profile edits after this point never change the order.
func (s *Store) ConfirmOrder(orderID string, chefID *uint, deliveryTimeSlot string) (*order.Order, error) {
	var o order.Order
	if err := s.db.First(&o, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.Status != order.StatusOpen {
		return nil, &StateError{Expected: order.StatusOpen}
	}

	var customer user.User
	if err := s.db.First(&customer, o.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var assigned chef.Chef
	if chefID != nil {
		if err := s.db.First(&assigned, *chefID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrChefNotFound
			}
			return nil, err
		}
	} else {
		err := s.db.Where("status = ?", chef.StatusActive).Order("id").First(&assigned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNoChefAvailable
			}
			return nil, err
		}
	}

	address := utils.JoinAddress(
		customer.AddressLine1,
		customer.AddressLine2,
		customer.City,
		customer.State,
		customer.Pincode,
	)

	updates := map[string]interface{}{
		"chef_id":          assigned.ID,
		"admin_approved":   true,
		"delivery_address": address,
	}
	if customer.DeliveryInstructions != nil {
		updates["delivery_instructions"] = *customer.DeliveryInstructions
	}
	if assigned.KitchenLocation != nil {
		updates["kitchen_location"] = *assigned.KitchenLocation
	}
	if deliveryTimeSlot != "" {
		updates["delivery_time_slot"] = deliveryTimeSlot
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.Transition(tx, orderID, order.StatusOpen, order.StatusConfirmed, updates)
	})
	if err != nil {
		return nil, err
	}

	var result order.Order
	if err := s.db.Preload("Items.Dish").Preload("Chef").First(&result, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// AssignChef reassigns the chef on a Confirmed order, before the chef has
// acted on it.
func (s *Store) AssignChef(orderID string, chefID uint) error {
	var count int64
	if err := s.db.Model(&chef.Chef{}).Where("id = ?", chefID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrChefNotFound
	}

	return s.Transition(s.db, orderID, order.StatusConfirmed, order.StatusConfirmed,
		map[string]interface{}{"chef_id": chefID})
}

// MarkReady moves a Confirmed order to Ready for Dispatch and records the
// completion time. The lookup filters on both order id and chef id: a
// chef acting on someone else's order gets a not-found, never a hint that
// the order exists.
func (s *Store) MarkReady(orderID string, chefID uint) (*order.Order, error) {
	var o order.Order
	err := s.db.Where("id = ? AND chef_id = ?", orderID, chefID).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.Status != order.StatusConfirmed {
		return nil, &StateError{Expected: order.StatusConfirmed}
	}

	err = s.Transition(s.db, orderID, order.StatusConfirmed, order.StatusReadyForDispatch,
		map[string]interface{}{"completed_at": time.Now()})
	if err != nil {
		return nil, err
	}

	var result order.Order
	if err := s.db.Preload("Items.Dish").First(&result, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// AssignAgent sets the delivery agent on a Ready for Dispatch order. The
// status does not change.
func (s *Store) AssignAgent(orderID string, agentID uint) error {
	var count int64
	if err := s.db.Model(&agent.Agent{}).Where("id = ?", agentID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAgentNotFound
	}

	err := s.Transition(s.db, orderID, order.StatusReadyForDispatch, order.StatusReadyForDispatch,
		map[string]interface{}{"assigned_agent_id": agentID})
	var stateErr *StateError
	if errors.As(err, &stateErr) {
		stateErr.Message = "Order must be Ready for Dispatch to assign agent"
	}
	return err
}

// OutForDelivery moves a Ready for Dispatch order with an assigned agent
// to Out for Delivery and records the dispatch time. The two preconditions
// fail with distinct errors.
func (s *Store) OutForDelivery(orderID string) (*order.Order, *agent.Agent, error) {
	var o order.Order
	if err := s.db.First(&o, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}
	if o.Status != order.StatusReadyForDispatch {
		return nil, nil, &StateError{Expected: order.StatusReadyForDispatch, Message: "Order must be Ready for Dispatch"}
	}
	if o.AssignedAgentID == nil {
		return nil, nil, ErrNoAgentAssigned
	}

	var assigned agent.Agent
	if err := s.db.First(&assigned, *o.AssignedAgentID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	err := s.Transition(s.db, orderID, order.StatusReadyForDispatch, order.StatusOutForDelivery,
		map[string]interface{}{"dispatch_time": time.Now()})
	if err != nil {
		return nil, nil, err
	}

	var result order.Order
	if err := s.db.First(&result, "id = ?", orderID).Error; err != nil {
		return nil, nil, err
	}
	return &result, &assigned, nil
}

// MarkDelivered moves an Out for Delivery order to the terminal Delivered
// status and records the delivered time.
func (s *Store) MarkDelivered(orderID string) error {
	err := s.Transition(s.db, orderID, order.StatusOutForDelivery, order.StatusDelivered,
		map[string]interface{}{"delivered_time": time.Now()})
	var stateErr *StateError
	if errors.As(err, &stateErr) {
		stateErr.Message = "Order must be Out for Delivery to mark delivered"
	}
	return err
}

// FirstAdminID returns the first admin on record, the recipient of the
// admin copy of milestone notifications.
func (s *Store) FirstAdminID() (uint, error) {
	var a admin.Admin
	if err := s.db.Order("id").First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return a.ID, nil
}

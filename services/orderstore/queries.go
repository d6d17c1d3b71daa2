package orderstore

import (
	"errors"
	"strings"
	"time"

	"fitchef-backend/models/agent"
	"fitchef-backend/models/order"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// ChefOrderItemView is one line of a chef's worksheet: what to cook, for
// how many, and what the eater must not be served.
type ChefOrderItemView struct {
	DishID      uint     `json:"dish_id"`
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	PortionSize *string  `json:"portion_size,omitempty"`
	Calories    *int     `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fats        *float64 `json:"fats,omitempty"`
	Allergens   *string  `json:"allergens,omitempty"`
}

// ChefOrderView is what a chef sees of an order. It carries no phone, no
// email and no payment data; the customer appears as a first name only.
type ChefOrderView struct {
	ID                    string              `json:"id"`
	Status                order.Status        `json:"status"`
	CustomerFirstName     string              `json:"customer_first_name"`
	DeliveryAddress       *string             `json:"delivery_address,omitempty"`
	DeliveryInstructions  *string             `json:"delivery_instructions,omitempty"`
	DeliveryTimeSlot      *string             `json:"delivery_time_slot,omitempty"`
	RequestedDeliveryDate string              `json:"requested_delivery_date"`
	CustomerAllergies     []string            `json:"customer_allergies"`
	Items                 []ChefOrderItemView `json:"items"`
	CreatedAt             time.Time           `json:"created_at"`
	CompletedAt           *time.Time          `json:"completed_at,omitempty"`
}

// LogisticsOrderView is the delivery-side projection: who to hand the bag
// to and where, never what is in it or what was paid.
type LogisticsOrderView struct {
	ID                    string       `json:"id"`
	Status                order.Status `json:"status"`
	CustomerName          string       `json:"customer_name"`
	CustomerMobile        string       `json:"customer_mobile"`
	DeliveryAddress       *string      `json:"delivery_address,omitempty"`
	DeliveryInstructions  *string      `json:"delivery_instructions,omitempty"`
	DeliveryTimeSlot      *string      `json:"delivery_time_slot,omitempty"`
	KitchenLocation       *string      `json:"kitchen_location,omitempty"`
	RequestedDeliveryDate string       `json:"requested_delivery_date"`
	AgentName             *string      `json:"agent_name,omitempty"`
	DispatchTime          *time.Time   `json:"dispatch_time,omitempty"`
	DeliveredTime         *time.Time   `json:"delivered_time,omitempty"`
	CompletedAt           *time.Time   `json:"completed_at,omitempty"`
}

// OverviewStats is the logistics dashboard snapshot.
type OverviewStats struct {
	OpenCount            int64    `json:"open_count"`
	ReadyCount           int64    `json:"ready_count"`
	OutForDeliveryCount  int64    `json:"out_for_delivery_count"`
	DeliveredTodayCount  int64    `json:"delivered_today_count"`
	AvgDeliveryMinutes   *float64 `json:"avg_delivery_minutes,omitempty"`
	TotalDeliveredOrders int64    `json:"total_delivered_orders"`
}

// UserOrders returns the customer's own orders, newest first, optionally
// filtered to one status.
func (s *Store) UserOrders(userID uint, status string, limit, offset int) ([]order.Order, int64, error) {
	q := s.db.Model(&order.Order{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	err := q.Preload("Items.Dish").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// UserOrderDetail returns one order, scoped to its owner.
func (s *Store) UserOrderDetail(userID uint, orderID string) (*order.Order, error) {
	var o order.Order
	err := s.db.Preload("Items.Dish").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UserDeliveredOrders is the customer's order history for reordering and
// feedback.
func (s *Store) UserDeliveredOrders(userID uint, limit, offset int) ([]order.Order, int64, error) {
	q := s.db.Model(&order.Order{}).
		Where("user_id = ? AND status = ?", userID, order.StatusDelivered)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	err := q.Preload("Items.Dish").
		Order("delivered_time DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// AdminOrders returns the back-office order queue. The admin sees the full
// record including customer contact, so no projection applies here.
func (s *Store) AdminOrders(status string, limit, offset int) ([]order.Order, int64, error) {
	q := s.db.Model(&order.Order{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	err := q.Preload("User").Preload("Items.Dish").Preload("Chef").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

// AdminOrderDetail returns one order with every association loaded.
func (s *Store) AdminOrderDetail(orderID string) (*order.Order, error) {
	var o order.Order
	err := s.db.Preload("User").Preload("Items.Dish").Preload("Chef").Preload("AssignedAgent").
		First(&o, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// ChefOpenOrders is the chef's cooking queue: their Confirmed,
// admin-approved orders.
func (s *Store) ChefOpenOrders(chefID uint) ([]ChefOrderView, error) {
	var orders []order.Order
	err := s.db.Preload("User").Preload("Items.Dish").
		Where("chef_id = ? AND status = ? AND admin_approved = ?",
			chefID, order.StatusConfirmed, true).
		Order("requested_delivery_date, created_at").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return chefViews(orders), nil
}

// ChefCompletedOrders lists what the chef already prepared, windowed on
// completed_at.
func (s *Store) ChefCompletedOrders(chefID uint, w Window) ([]ChefOrderView, error) {
	q := s.db.Preload("User").Preload("Items.Dish").
		Where("chef_id = ? AND status IN ?", chefID,
			[]order.Status{order.StatusReadyForDispatch, order.StatusDelivered})
	if since, ok := w.Since(time.Now()); ok {
		q = q.Where("completed_at >= ?", since)
	}

	var orders []order.Order
	if err := q.Order("completed_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return chefViews(orders), nil
}

func chefViews(orders []order.Order) []ChefOrderView {
	views := make([]ChefOrderView, 0, len(orders))
	for i := range orders {
		views = append(views, chefView(&orders[i]))
	}
	return views
}

func chefView(o *order.Order) ChefOrderView {
	v := ChefOrderView{
		ID:                    o.ID,
		Status:                o.Status,
		CustomerFirstName:     o.User.FirstName(),
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryInstructions:  o.DeliveryInstructions,
		DeliveryTimeSlot:      o.DeliveryTimeSlot,
		RequestedDeliveryDate: o.RequestedDeliveryDate.Format("2006-01-02"),
		CustomerAllergies:     splitAllergies(o.User.Allergies),
		Items:                 make([]ChefOrderItemView, 0, len(o.Items)),
		CreatedAt:             o.CreatedAt,
		CompletedAt:           o.CompletedAt,
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, ChefOrderItemView{
			DishID:      it.DishID,
			Name:        it.Dish.Name,
			Quantity:    it.Quantity,
			PortionSize: it.Dish.PortionSize,
			Calories:    it.Dish.Calories,
			Protein:     it.Dish.Protein,
			Carbs:       it.Dish.Carbs,
			Fats:        it.Dish.Fats,
			Allergens:   it.Dish.Allergens,
		})
	}
	return v
}

func splitAllergies(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	parts := strings.Split(*raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// LogisticsOpenOrders lists confirmed orders still in the kitchen, so
// dispatch can see what is coming.
func (s *Store) LogisticsOpenOrders() ([]LogisticsOrderView, error) {
	return s.logisticsOrders(s.db.Where("status = ?", order.StatusConfirmed), "requested_delivery_date, created_at")
}

// LogisticsReadyOrders lists orders waiting for an agent and dispatch.
func (s *Store) LogisticsReadyOrders() ([]LogisticsOrderView, error) {
	return s.logisticsOrders(s.db.Where("status = ?", order.StatusReadyForDispatch), "completed_at")
}

// LogisticsOutOrders lists orders currently on the road.
func (s *Store) LogisticsOutOrders() ([]LogisticsOrderView, error) {
	return s.logisticsOrders(s.db.Where("status = ?", order.StatusOutForDelivery), "dispatch_time")
}

// LogisticsDeliveredOrders lists completed deliveries within the window.
func (s *Store) LogisticsDeliveredOrders(w Window) ([]LogisticsOrderView, error) {
	q := s.db.Where("status = ?", order.StatusDelivered)
	if since, ok := w.Since(time.Now()); ok {
		q = q.Where("delivered_time >= ?", since)
	}
	return s.logisticsOrders(q, "delivered_time DESC")
}

func (s *Store) logisticsOrders(q *gorm.DB, orderBy string) ([]LogisticsOrderView, error) {
	var orders []order.Order
	err := q.Preload("User").Preload("AssignedAgent").
		Order(orderBy).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	views := make([]LogisticsOrderView, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		v := LogisticsOrderView{
			ID:                    o.ID,
			Status:                o.Status,
			CustomerName:          o.User.FullName,
			CustomerMobile:        o.User.Phone,
			DeliveryAddress:       o.DeliveryAddress,
			DeliveryInstructions:  o.DeliveryInstructions,
			DeliveryTimeSlot:      o.DeliveryTimeSlot,
			KitchenLocation:       o.KitchenLocation,
			RequestedDeliveryDate: o.RequestedDeliveryDate.Format("2006-01-02"),
			DispatchTime:          o.DispatchTime,
			DeliveredTime:         o.DeliveredTime,
			CompletedAt:           o.CompletedAt,
		}
		if o.AssignedAgent != nil {
			name := o.AssignedAgent.Name
			v.AgentName = &name
		}
		views = append(views, v)
	}
	return views, nil
}

// Overview computes the logistics dashboard counters plus the average
// dispatch-to-delivered duration across all delivered orders.
func (s *Store) Overview() (*OverviewStats, error) {
	stats := &OverviewStats{}

	counts := []struct {
		status order.Status
		dest   *int64
	}{
		{order.StatusConfirmed, &stats.OpenCount},
		{order.StatusReadyForDispatch, &stats.ReadyCount},
		{order.StatusOutForDelivery, &stats.OutForDeliveryCount},
	}
	for _, c := range counts {
		if err := s.db.Model(&order.Order{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	todayStart := now.BeginningOfDay()
	err := s.db.Model(&order.Order{}).
		Where("status = ? AND delivered_time >= ?", order.StatusDelivered, todayStart).
		Count(&stats.DeliveredTodayCount).Error
	if err != nil {
		return nil, err
	}

	var delivered []order.Order
	err = s.db.Select("dispatch_time", "delivered_time").
		Where("status = ?", order.StatusDelivered).
		Find(&delivered).Error
	if err != nil {
		return nil, err
	}
	stats.TotalDeliveredOrders = int64(len(delivered))

	var totalMinutes float64
	var measured int64
	for i := range delivered {
		o := &delivered[i]
		if o.DispatchTime == nil || o.DeliveredTime == nil {
			continue
		}
		totalMinutes += o.DeliveredTime.Sub(*o.DispatchTime).Minutes()
		measured++
	}
	if measured > 0 {
		avg := totalMinutes / float64(measured)
		stats.AvgDeliveryMinutes = &avg
	}
	return stats, nil
}

// ListAgents feeds the assignment dropdown.
func (s *Store) ListAgents() ([]agent.Agent, error) {
	var agents []agent.Agent
	err := s.db.Order("name").Find(&agents).Error
	return agents, err
}

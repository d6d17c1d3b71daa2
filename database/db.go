package database

import (
	"fmt"
	"os"

	"fitchef-backend/logger"
	"fitchef-backend/models/admin"
	"fitchef-backend/models/agent"
	"fitchef-backend/models/apilog"
	"fitchef-backend/models/chef"
	"fitchef-backend/models/dish"
	"fitchef-backend/models/feedback"
	"fitchef-backend/models/lead"
	"fitchef-backend/models/notification"
	"fitchef-backend/models/order"
	"fitchef-backend/models/payment"
	"fitchef-backend/models/support"
	"fitchef-backend/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	username := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE") // Optional: "disable", "require", etc.

	// Set default sslmode if not provided
	if sslmode == "" {
		sslmode = "disable"
	}

	// Build PostgreSQL DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, username, password, database, sslmode)

	var err error
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey, so
	// duplicate inserts can be reported as conflicts instead of 500s.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// Handle foreign key constraints after migrations
	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	// Create indexes for better performance
	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency stages.
func autoMigrate() error {
	// Stage 1: actors and catalog, no cross-table references
	stage1Models := []interface{}{
		&user.User{},
		&admin.Admin{},
		&chef.Chef{},
		&agent.Agent{},
		&dish.Dish{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: the order pipeline, referencing stage 1
	stage2Models := []interface{}{
		&order.Order{},
		&order.OrderItem{},
		&order.AdminOrder{},
		&notification.Notification{},
		&feedback.Feedback{},
		&support.Ticket{},
		&payment.Payment{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: marketing capture and logging
	remainingModels := []interface{}{
		&lead.Lead{},
		&lead.EarlyAccess{},
		&lead.Consultation{},
		&apilog.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_site_users_email", "CREATE INDEX IF NOT EXISTS idx_site_users_email ON site_users(email)"},
		{"idx_site_users_status", "CREATE INDEX IF NOT EXISTS idx_site_users_status ON site_users(status)"},
		{"idx_user_orders_status", "CREATE INDEX IF NOT EXISTS idx_user_orders_status ON user_orders(status)"},
		{"idx_user_orders_user_status", "CREATE INDEX IF NOT EXISTS idx_user_orders_user_status ON user_orders(user_id, status)"},
		{"idx_user_orders_chef_status", "CREATE INDEX IF NOT EXISTS idx_user_orders_chef_status ON user_orders(chef_id, status)"},
		{"idx_user_orders_created_at", "CREATE INDEX IF NOT EXISTS idx_user_orders_created_at ON user_orders(created_at)"},
		{"idx_user_orders_delivered_time", "CREATE INDEX IF NOT EXISTS idx_user_orders_delivered_time ON user_orders(delivered_time)"},
		{"idx_user_order_items_order_id", "CREATE INDEX IF NOT EXISTS idx_user_order_items_order_id ON user_order_items(order_id)"},
		{"idx_notifications_user_created", "CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications(user_id, created_at)"},
		{"idx_dishes_available", "CREATE INDEX IF NOT EXISTS idx_dishes_available ON dishes(available)"},
		{"idx_admin_orders_order_number", "CREATE INDEX IF NOT EXISTS idx_admin_orders_order_number ON admin_orders(order_number)"},
		{"idx_api_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_api_logs_created_at ON api_logs(created_at)"},
	}

	for _, index := range indexes {
		if err := DB.Exec(index.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", index.name, err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	// Define constraints with their names for checking existence
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_user_orders_user",
			sql: `ALTER TABLE user_orders ADD CONSTRAINT fk_user_orders_user
				  FOREIGN KEY (user_id) REFERENCES site_users(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_user_orders_chef",
			sql: `ALTER TABLE user_orders ADD CONSTRAINT fk_user_orders_chef
				  FOREIGN KEY (chef_id) REFERENCES chefs(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_user_orders_agent",
			sql: `ALTER TABLE user_orders ADD CONSTRAINT fk_user_orders_agent
				  FOREIGN KEY (assigned_agent_id) REFERENCES delivery_agents(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_user_order_items_order",
			sql: `ALTER TABLE user_order_items ADD CONSTRAINT fk_user_order_items_order
				  FOREIGN KEY (order_id) REFERENCES user_orders(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_user_order_items_dish",
			sql: `ALTER TABLE user_order_items ADD CONSTRAINT fk_user_order_items_dish
				  FOREIGN KEY (dish_id) REFERENCES dishes(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_notifications_order",
			sql: `ALTER TABLE notifications ADD CONSTRAINT fk_notifications_order
				  FOREIGN KEY (order_id) REFERENCES user_orders(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

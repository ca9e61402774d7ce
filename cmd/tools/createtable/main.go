package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/pitaya_store?parseTime=true&multiStatements=true&loc=Local"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARCHAR(255) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  phone VARCHAR(32) NULL,
	  address TEXT NULL,
	  role VARCHAR(16) NOT NULL DEFAULT 'customer',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS categories (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  name VARCHAR(255) NOT NULL,
	  slug VARCHAR(255) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_categories_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS products (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  name VARCHAR(255) NOT NULL,
	  slug VARCHAR(255) NOT NULL,
	  description TEXT NOT NULL,
	  sku VARCHAR(64) NOT NULL,
	  cost_price DOUBLE NOT NULL DEFAULT 0,
	  cost_basis DOUBLE NOT NULL DEFAULT 0,
	  selling_price DOUBLE NOT NULL DEFAULT 0,
	  weight DOUBLE NOT NULL DEFAULT 0,
	  stock_quantity INT NOT NULL DEFAULT 0,
	  status VARCHAR(16) NOT NULL DEFAULT 'active',
	  images JSON NULL,
	  length DOUBLE NULL,
	  width DOUBLE NULL,
	  height DOUBLE NULL,
	  category_id INT UNSIGNED NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_slug (slug),
	  KEY ix_products_category_id (category_id),
	  CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_variants (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  product_id INT UNSIGNED NOT NULL,
	  sku VARCHAR(64) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  attributes JSON NULL,
	  cost_price DOUBLE NOT NULL DEFAULT 0,
	  cost_basis DOUBLE NOT NULL DEFAULT 0,
	  selling_price DOUBLE NOT NULL DEFAULT 0,
	  stock_quantity INT NOT NULL DEFAULT 0,
	  weight DOUBLE NOT NULL DEFAULT 0,
	  images JSON NULL,
	  is_active TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_product_variants_sku (sku),
	  KEY ix_product_variants_product_id (product_id),
	  CONSTRAINT fk_product_variants_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS hero_banners (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  title VARCHAR(255) NOT NULL,
	  subtitle VARCHAR(255) NULL,
	  image_url VARCHAR(512) NOT NULL,
	  link_url VARCHAR(512) NULL,
	  position INT NOT NULL DEFAULT 0,
	  is_active TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_hero_banners_position (position)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS testimonials (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  customer_name VARCHAR(255) NOT NULL,
	  content TEXT NOT NULL,
	  rating INT NOT NULL DEFAULT 5,
	  avatar_url VARCHAR(512) NULL,
	  is_active TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS payment_methods (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  bank_name VARCHAR(128) NOT NULL,
	  account_number VARCHAR(64) NOT NULL,
	  account_holder VARCHAR(255) NOT NULL,
	  logo_url VARCHAR(512) NULL,
	  is_active TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS shipping_couriers (
	  id INT UNSIGNED NOT NULL AUTO_INCREMENT,
	  code VARCHAR(32) NOT NULL,
	  name VARCHAR(128) NOT NULL,
	  is_active TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_shipping_couriers_code (code)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("all tables created successfully")
}

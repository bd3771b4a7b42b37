package database

import (
	"fmt"
	"time"
)

// schemaStatements creates the full schema. Every statement is idempotent
// so Initialize can run on every boot.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    customer_name TEXT NOT NULL,
	    phone_no TEXT,
	    area TEXT,
	    address TEXT,
	    email TEXT,
	    company_name TEXT,
	    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS service_calls (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    customer_id INTEGER,
	    area VARCHAR(255),
	    issue_description TEXT,
	    status VARCHAR(50) DEFAULT 'Open',
	    priority VARCHAR(50) DEFAULT 'Medium',
	    technician_name VARCHAR(100),
	    scheduled_date DATETIME,
	    resolution_details TEXT,
	    service_charge DECIMAL(10, 2) DEFAULT 0,
	    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE SET NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS repair_records (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    customer_id INTEGER NOT NULL,
	    machine_description TEXT,
	    repair_description TEXT,
	    repair_date DATE,
	    amount_charged DECIMAL(10, 2) DEFAULT 0,
	    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS amc_records (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    customer_id INTEGER NOT NULL,
	    start_date DATE NOT NULL,
	    end_date DATE NOT NULL,
	    amount DECIMAL(10, 2) DEFAULT 0,
	    machine_details TEXT,
	    status VARCHAR(50) DEFAULT 'Active',
	    notes TEXT,
	    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS settings (
	    key_name VARCHAR(100) PRIMARY KEY NOT NULL,
	    value_data TEXT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS areas (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL UNIQUE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    username VARCHAR(100) NOT NULL UNIQUE,
	    password VARCHAR(100) NOT NULL,
	    role VARCHAR(50) DEFAULT 'admin'
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS products (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(255),
	    price DECIMAL(10,2) DEFAULT 0
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS common_issues (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    issue_text VARCHAR(255) NOT NULL UNIQUE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS common_resolutions (
	    id INTEGER PRIMARY KEY AUTO_INCREMENT,
	    resolution_text VARCHAR(255) NOT NULL UNIQUE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Initialize creates all tables, then runs the two startup maintenance
// tasks: expiring overdue AMC contracts and seeding the default user.
// It must run before the pool serves request traffic.
func (db *DB) Initialize() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if _, err := db.ExpireOverdueAmcs(time.Now()); err != nil {
		return fmt.Errorf("failed to update AMC statuses: %w", err)
	}
	if err := db.SeedDefaultUser(); err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}

	return nil
}

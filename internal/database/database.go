package database

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const pingTimeout = 3 * time.Second

// DB bundles the gorm handle with the connectivity tracker that guards it.
type DB struct {
	Gorm    *gorm.DB
	Tracker *Tracker

	migrateOnce sync.Once
	stop        chan struct{}
	stopOnce    sync.Once
}

// Connect opens the connection pool lazily and starts the monitor goroutine.
// It does not fail when the backend is unreachable: the server starts in a
// degraded state and the tracker flips to Connected once the first ping
// succeeds. Only a malformed DSN is a hard error.
func Connect(databaseURL string, pingInterval time.Duration) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	db := &DB{
		Gorm:    gormDB,
		Tracker: NewTracker(),
		stop:    make(chan struct{}),
	}

	go db.monitor(pingInterval)

	return db, nil
}

// monitor drives the state machine: it pings the backend on an interval,
// promotes Disconnected -> Connecting -> Connected, and demotes to
// Disconnected when the link drops. Schema migration runs once, on the first
// successful ping.
func (db *DB) monitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	db.check()
	for {
		select {
		case <-db.stop:
			return
		case <-ticker.C:
			db.check()
		}
	}
}

func (db *DB) check() {
	if db.Tracker.State() == StateDisconnected {
		db.Tracker.Set(StateConnecting)
	}

	sqlDB, err := db.Gorm.DB()
	if err != nil {
		db.Tracker.Set(StateDisconnected)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		if db.Tracker.State() != StateDisconnected {
			log.Printf("WARN [database.monitor] backend unreachable: %v", err)
		}
		db.Tracker.Set(StateDisconnected)
		return
	}

	db.migrateOnce.Do(func() {
		if err := db.Gorm.AutoMigrate(&domain.User{}, &domain.CollectionEntry{}); err != nil {
			log.Printf("ERROR [database.monitor] migration failed: %v", err)
		}
	})

	db.Tracker.Set(StateConnected)
}

// Close walks the machine through Disconnecting and releases the pool.
func (db *DB) Close() error {
	db.stopOnce.Do(func() { close(db.stop) })

	db.Tracker.Set(StateDisconnecting)
	defer db.Tracker.Set(StateDisconnected)

	sqlDB, err := db.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
